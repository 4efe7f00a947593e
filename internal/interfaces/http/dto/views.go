package dto

import (
	"time"

	appcheckout "github.com/opalessence/backend/internal/application/checkout"
	appwishlist "github.com/opalessence/backend/internal/application/wishlist"
	"github.com/opalessence/backend/internal/domain/catalog"
	"github.com/opalessence/backend/internal/domain/identity"
	"github.com/opalessence/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// UserResponse is the public view of a user account
type UserResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	EmailVerified bool   `json:"emailVerified"`
}

// NewUserResponse converts a user to its response view
func NewUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:            u.ID.String(),
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		EmailVerified: u.EmailVerified,
	}
}

// LoginResponse carries the access token and user after login
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProductResponse is the public view of a catalog product
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	InStock     bool            `json:"inStock"`
}

// NewProductResponse converts a product to its response view
func NewProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		InStock:     p.InStock,
	}
}

// ShippingOptionResponse is one priced shipping method in a quote
type ShippingOptionResponse struct {
	Method        string          `json:"method"`
	DisplayName   string          `json:"displayName"`
	Cost          decimal.Decimal `json:"cost"`
	EstimatedDays string          `json:"estimatedDays"`
}

// QuoteResponse is the priced cart before payment
type QuoteResponse struct {
	Subtotal        decimal.Decimal          `json:"subtotal"`
	ShippingOptions []ShippingOptionResponse `json:"shippingOptions"`
	Tax             decimal.Decimal          `json:"tax"`
	ItemCount       int                      `json:"itemCount"`
}

// NewQuoteResponse converts a quote to its response view
func NewQuoteResponse(q *appcheckout.QuoteResponse) QuoteResponse {
	options := make([]ShippingOptionResponse, 0, len(q.ShippingOptions))
	for _, opt := range q.ShippingOptions {
		options = append(options, ShippingOptionResponse{
			Method:        string(opt.Method),
			DisplayName:   opt.DisplayName,
			Cost:          opt.Cost,
			EstimatedDays: opt.EstimatedDays,
		})
	}
	return QuoteResponse{
		Subtotal:        q.Subtotal,
		ShippingOptions: options,
		Tax:             q.Tax,
		ItemCount:       q.ItemCount,
	}
}

// OrderItemResponse is one line of an order
type OrderItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

// OrderResponse is the public view of an order
type OrderResponse struct {
	ID                string              `json:"id"`
	OrderNumber       string              `json:"orderNumber"`
	Status            string              `json:"status"`
	PaymentStatus     string              `json:"paymentStatus"`
	Items             []OrderItemResponse `json:"items"`
	Street            string              `json:"street"`
	City              string              `json:"city"`
	State             string              `json:"state"`
	ZipCode           string              `json:"zipCode"`
	Country           string              `json:"country"`
	ShippingMethod    string              `json:"shippingMethod"`
	EstimatedDays     string              `json:"estimatedDays"`
	Subtotal          decimal.Decimal     `json:"subtotal"`
	Shipping          decimal.Decimal     `json:"shipping"`
	Tax               decimal.Decimal     `json:"tax"`
	Total             decimal.Decimal     `json:"total"`
	TrackingNumber    string              `json:"trackingNumber"`
	EstimatedDelivery time.Time           `json:"estimatedDelivery"`
	CreatedAt         time.Time           `json:"createdAt"`
}

// NewOrderResponse converts an order to its response view
func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}
	return OrderResponse{
		ID:                o.ID.String(),
		OrderNumber:       o.OrderNumber,
		Status:            o.Status.String(),
		PaymentStatus:     string(o.PaymentStatus),
		Items:             items,
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
		CreatedAt:         o.CreatedAt,
	}
}

// TrackingResponse is the tracking view of an order
type TrackingResponse struct {
	Status            string    `json:"status"`
	Message           string    `json:"message"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	TrackingNumber    string    `json:"trackingNumber"`
}

// NewTrackingResponse converts tracking info to its response view
func NewTrackingResponse(info *order.TrackingInfo) TrackingResponse {
	return TrackingResponse{
		Status:            info.Status.String(),
		Message:           info.Message,
		EstimatedDelivery: info.EstimatedDelivery,
		TrackingNumber:    info.TrackingNumber,
	}
}

// WishlistEntryResponse is one wishlist entry with its product
type WishlistEntryResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	InStock   bool            `json:"inStock"`
	AddedAt   time.Time       `json:"addedAt"`
}

// NewWishlistEntryResponse converts a wishlist entry to its response view
func NewWishlistEntryResponse(e appwishlist.Entry) WishlistEntryResponse {
	return WishlistEntryResponse{
		ProductID: e.Product.ID.String(),
		Name:      e.Product.Name,
		Price:     e.Product.Price,
		InStock:   e.Product.InStock,
		AddedAt:   e.Item.CreatedAt,
	}
}
