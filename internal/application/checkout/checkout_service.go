package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/opalessence/backend/internal/domain/catalog"
	"github.com/opalessence/backend/internal/domain/identity"
	"github.com/opalessence/backend/internal/domain/order"
	"github.com/opalessence/backend/internal/domain/pricing"
	"github.com/opalessence/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderMailer sends the order confirmation email
type OrderMailer interface {
	SendOrderConfirmation(ctx context.Context, to, orderNumber string) error
}

// LineInput identifies a product and quantity in a cart
type LineInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// Address is the shipping destination for a quote or order
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// QuoteRequest asks for shipping options and tax for a cart
type QuoteRequest struct {
	Items   []LineInput
	Address Address
}

// QuoteResponse carries the priced cart before payment
type QuoteResponse struct {
	Subtotal        decimal.Decimal
	ShippingOptions []ShippingOption
	Tax             decimal.Decimal
	ItemCount       int
}

// PlaceOrderRequest submits a cart for payment and order creation
type PlaceOrderRequest struct {
	Items   []LineInput
	Address Address
	Method  pricing.Method
	Card    CardDetails
}

// Service orchestrates checkout: it prices the cart, charges the payment
// and records the resulting order.
type Service struct {
	shipping *ShippingService
	tax      *TaxService
	payment  *PaymentService
	products catalog.Repository
	orders   order.Repository
	users    identity.Repository
	mailer   OrderMailer
	logger   *zap.Logger
}

// NewService creates a new checkout service
func NewService(
	shipping *ShippingService,
	tax *TaxService,
	payment *PaymentService,
	products catalog.Repository,
	orders order.Repository,
	users identity.Repository,
	mailer OrderMailer,
	logger *zap.Logger,
) *Service {
	return &Service{
		shipping: shipping,
		tax:      tax,
		payment:  payment,
		products: products,
		orders:   orders,
		users:    users,
		mailer:   mailer,
		logger:   logger,
	}
}

// Quote prices a cart for a destination without charging anything
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	_, subtotal, itemCount, err := s.resolveCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	dest := pricing.Destination{State: req.Address.State, ZipCode: req.Address.ZipCode}
	return &QuoteResponse{
		Subtotal:        subtotal,
		ShippingOptions: s.shipping.Options(dest, subtotal, itemCount),
		Tax:             s.tax.Calculate(subtotal, dest),
		ItemCount:       itemCount,
	}, nil
}

// PlaceOrder prices the cart, charges the card and records the order.
// A declined or timed-out payment aborts the order; no order is created.
func (s *Service) PlaceOrder(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest) (*order.Order, error) {
	if !req.Method.IsValid() {
		return nil, shared.NewDomainError("INVALID_SHIPPING_METHOD", fmt.Sprintf("Unknown shipping method %q", req.Method))
	}

	items, subtotal, itemCount, err := s.resolveCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	dest := pricing.Destination{State: req.Address.State, ZipCode: req.Address.ZipCode}
	shippingCost := s.shipping.Calculate(req.Method, dest, subtotal, itemCount)
	tax := s.tax.Calculate(subtotal, dest)
	total := subtotal.Add(shippingCost).Add(tax)

	payment, err := s.payment.Process(ctx, req.Card, total)
	if err != nil {
		return nil, err
	}
	if payment.Status != order.PaymentCompleted {
		s.logger.Info("payment declined",
			zap.String("user_id", userID.String()),
			zap.String("reason", payment.Message))
		return nil, shared.NewDomainError("PAYMENT_DECLINED", payment.Message)
	}

	o := order.NewOrder(userID, items, order.ShippingDetails{
		Street:        req.Address.Street,
		City:          req.Address.City,
		State:         req.Address.State,
		ZipCode:       req.Address.ZipCode,
		Country:       req.Address.Country,
		Method:        string(req.Method),
		EstimatedDays: s.shipping.EstimatedDays(req.Method, dest),
	}, order.Summary{
		Subtotal: subtotal,
		Shipping: shippingCost,
		Tax:      tax,
		Total:    total,
	}, payment.Status)

	if err := s.orders.Save(ctx, o); err != nil {
		// The charge went through but the order was not recorded. This
		// needs manual reconciliation, so it gets its own log signature.
		s.logger.Error("payment captured but order creation failed",
			zap.String("user_id", userID.String()),
			zap.String("transaction_id", payment.TransactionID),
			zap.String("amount", total.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("ORDER_CREATION_FAILED",
			"Payment was captured but the order could not be recorded; support has been notified")
	}

	// Best effort; the order stands even if the confirmation cannot be sent
	if user, err := s.users.FindByID(ctx, userID); err == nil {
		if err := s.mailer.SendOrderConfirmation(ctx, user.Email, o.OrderNumber); err != nil {
			s.logger.Warn("order confirmation email failed",
				zap.String("order_number", o.OrderNumber),
				zap.Error(err))
		}
	}

	s.logger.Info("order placed",
		zap.String("order_number", o.OrderNumber),
		zap.String("user_id", userID.String()),
		zap.String("total", total.String()))
	return o, nil
}

// resolveCart loads the cart's products and computes the subtotal and
// total item count. Unknown or out-of-stock products fail the cart.
func (s *Service) resolveCart(ctx context.Context, lines []LineInput) ([]order.Item, decimal.Decimal, int, error) {
	if len(lines) == 0 {
		return nil, decimal.Zero, 0, shared.NewDomainError("INVALID_INPUT", "Cart is empty")
	}

	items := make([]order.Item, 0, len(lines))
	subtotal := decimal.Zero
	itemCount := 0
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, decimal.Zero, 0, shared.NewDomainError("INVALID_INPUT", "Item quantity must be at least 1")
		}
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, decimal.Zero, 0, err
		}
		if !product.InStock {
			return nil, decimal.Zero, 0, shared.NewDomainError("OUT_OF_STOCK", fmt.Sprintf("%s is out of stock", product.Name))
		}
		item := order.Item{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    line.Quantity,
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.Amount())
		itemCount += line.Quantity
	}
	return items, subtotal, itemCount, nil
}
