package order

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status represents the fulfillment status of an order
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// IsValid checks if the status is a known order status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal returns true for statuses that admit no further transitions
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusProcessing || target == StatusCancelled
	case StatusProcessing:
		return target == StatusShipped || target == StatusCancelled
	case StatusShipped:
		return target == StatusDelivered
	case StatusDelivered, StatusCancelled:
		return false // Terminal states
	}
	return false
}

// TrackingMessage returns the human-readable tracking update for the status
func (s Status) TrackingMessage() string {
	switch s {
	case StatusPending:
		return "Order received, payment pending"
	case StatusProcessing:
		return "Order confirmed, preparing for shipment"
	case StatusShipped:
		return "Package in transit from Newberg, OR"
	case StatusDelivered:
		return "Package delivered to destination"
	case StatusCancelled:
		return "Order cancelled"
	}
	return ""
}

// PaymentStatus represents the payment state recorded on an order
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentCompleted  PaymentStatus = "COMPLETED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

// Item is a snapshot of a cart line at the moment of checkout
type Item struct {
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// Amount returns the line total for the item
func (i Item) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShippingDetails is the address and method snapshot stored on an order
type ShippingDetails struct {
	Street        string
	City          string
	State         string
	ZipCode       string
	Country       string
	Method        string
	EstimatedDays string
}

// Summary holds the priced totals of an order.
// Total must equal Subtotal + Shipping + Tax to the cent.
type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// TrackingInfo is the tracking projection served for an order
type TrackingInfo struct {
	Status            Status
	Message           string
	EstimatedDelivery time.Time
	TrackingNumber    string
}

// Order is the aggregate root for a placed order. Items, shipping, summary
// and the generated identifiers are immutable after creation; only the
// fulfillment status may change, through UpdateStatus.
type Order struct {
	shared.BaseEntity
	UserID            uuid.UUID
	OrderNumber       string
	Items             []Item
	Shipping          ShippingDetails
	Summary           Summary
	Status            Status
	TrackingNumber    string
	EstimatedDelivery time.Time
	PaymentStatus     PaymentStatus
}

// NewOrder creates a new order in PENDING status, generating the order
// number, tracking number and estimated delivery date. The ledger performs
// no validation of items or summary; callers are responsible for pricing
// consistency.
func NewOrder(userID uuid.UUID, items []Item, shipping ShippingDetails, summary Summary, paymentStatus PaymentStatus) *Order {
	base := shared.NewBaseEntity()
	return &Order{
		BaseEntity:        base,
		UserID:            userID,
		OrderNumber:       generateOrderNumber(base.CreatedAt),
		Items:             items,
		Shipping:          shipping,
		Summary:           summary,
		Status:            StatusPending,
		TrackingNumber:    generateTrackingNumber(),
		EstimatedDelivery: estimatedDelivery(base.CreatedAt, shipping.EstimatedDays),
		PaymentStatus:     paymentStatus,
	}
}

// UpdateStatus transitions the order to the target status. Transitions out
// of DELIVERED or CANCELLED, and jumps the lifecycle graph does not allow,
// are rejected.
func (o *Order) UpdateStatus(target Status) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot move order from %s to %s", o.Status, target))
	}
	o.Status = target
	o.Touch()
	return nil
}

// Tracking returns the tracking projection for the order
func (o *Order) Tracking() TrackingInfo {
	return TrackingInfo{
		Status:            o.Status,
		Message:           o.Status.TrackingMessage(),
		EstimatedDelivery: o.EstimatedDelivery,
		TrackingNumber:    o.TrackingNumber,
	}
}

// ItemCount returns the total quantity across all items
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// generateOrderNumber builds a human-readable order number:
// "EJ" prefix, creation date, 4-digit random sequence, e.g. EJ-20240315-0042
func generateOrderNumber(createdAt time.Time) string {
	return fmt.Sprintf("EJ-%s-%04d", createdAt.Format("20060102"), rand.Intn(10000))
}

// trackingPrefix mimics a carrier-style tracking number prefix
const trackingPrefix = "1Z999AA"

// generateTrackingNumber builds a carrier-style tracking number with an
// 11-digit numeric suffix
func generateTrackingNumber() string {
	return fmt.Sprintf("%s%011d", trackingPrefix, rand.Int63n(100_000_000_000))
}

// estimatedDelivery derives the delivery date from an estimated-days range
// such as "2-3" or "7-10", using the upper bound of the range.
func estimatedDelivery(createdAt time.Time, estimatedDays string) time.Time {
	days := 0
	parts := strings.Split(estimatedDays, "-")
	if len(parts) > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			days = n
		}
	}
	return createdAt.AddDate(0, 0, days)
}
