package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/order"
	"github.com/opalessence/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderModel is the database model for orders
type OrderModel struct {
	ID                string `gorm:"primaryKey;type:varchar(36)"`
	UserID            string `gorm:"index;type:varchar(36);not null"`
	OrderNumber       string `gorm:"uniqueIndex;not null"`
	Status            string `gorm:"not null"`
	PaymentStatus     string `gorm:"not null"`
	Street            string
	City              string
	State             string
	ZipCode           string
	Country           string
	ShippingMethod    string
	EstimatedDays     string
	Subtotal          decimal.Decimal `gorm:"type:decimal(10,2)"`
	Shipping          decimal.Decimal `gorm:"type:decimal(10,2)"`
	Tax               decimal.Decimal `gorm:"type:decimal(10,2)"`
	Total             decimal.Decimal `gorm:"type:decimal(10,2)"`
	TrackingNumber    string
	EstimatedDelivery time.Time
	Items             []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the database model for order line items
type OrderItemModel struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	OrderID     string `gorm:"index;type:varchar(36);not null"`
	ProductID   string `gorm:"type:varchar(36);not null"`
	ProductName string
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2)"`
	Quantity    int
}

// TableName specifies the table name
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the model to a domain entity
func (m *OrderModel) ToDomain() (*order.Order, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(m.Items))
	for _, im := range m.Items {
		productID, err := uuid.Parse(im.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, order.Item{
			ProductID:   productID,
			ProductName: im.ProductName,
			UnitPrice:   im.UnitPrice,
			Quantity:    im.Quantity,
		})
	}

	return &order.Order{
		BaseEntity: shared.BaseEntity{
			ID:        id,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		UserID:      userID,
		OrderNumber: m.OrderNumber,
		Items:       items,
		Shipping: order.ShippingDetails{
			Street:        m.Street,
			City:          m.City,
			State:         m.State,
			ZipCode:       m.ZipCode,
			Country:       m.Country,
			Method:        m.ShippingMethod,
			EstimatedDays: m.EstimatedDays,
		},
		Summary: order.Summary{
			Subtotal: m.Subtotal,
			Shipping: m.Shipping,
			Tax:      m.Tax,
			Total:    m.Total,
		},
		Status:            order.Status(m.Status),
		TrackingNumber:    m.TrackingNumber,
		EstimatedDelivery: m.EstimatedDelivery,
		PaymentStatus:     order.PaymentStatus(m.PaymentStatus),
	}, nil
}

// OrderModelFromDomain converts a domain entity to the database model
func OrderModelFromDomain(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemModel{
			ID:          uuid.New().String(),
			OrderID:     o.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	return &OrderModel{
		ID:                o.ID.String(),
		UserID:            o.UserID.String(),
		OrderNumber:       o.OrderNumber,
		Status:            o.Status.String(),
		PaymentStatus:     string(o.PaymentStatus),
		Street:            o.Shipping.Street,
		City:              o.Shipping.City,
		State:             o.Shipping.State,
		ZipCode:           o.Shipping.ZipCode,
		Country:           o.Shipping.Country,
		ShippingMethod:    o.Shipping.Method,
		EstimatedDays:     o.Shipping.EstimatedDays,
		Subtotal:          o.Summary.Subtotal,
		Shipping:          o.Summary.Shipping,
		Tax:               o.Summary.Tax,
		Total:             o.Summary.Total,
		TrackingNumber:    o.TrackingNumber,
		EstimatedDelivery: o.EstimatedDelivery,
		Items:             items,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}
