package checkout

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/opalessence/backend/internal/domain/order"
	"github.com/opalessence/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CardDetails carries the raw card input for a payment attempt.
// Card data is validated and forwarded to the gateway, never persisted.
type CardDetails struct {
	Number      string
	ExpiryMonth string
	ExpiryYear  string
	CVC         string
}

// ChargeRequest is the gateway charge input
type ChargeRequest struct {
	Amount     decimal.Decimal
	CardNumber string
}

// ChargeResult is the gateway charge outcome
type ChargeResult struct {
	Success       bool
	TransactionID string
	Message       string
}

// PaymentGateway abstracts the upstream payment provider so the simulated
// gateway can be swapped for a real one without touching checkout.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// PaymentResult is the outcome of a payment attempt
type PaymentResult struct {
	Status        order.PaymentStatus
	TransactionID string
	Message       string
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cvcPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// PaymentService validates card details and charges payments through the
// configured gateway, bounding each attempt with a timeout.
type PaymentService struct {
	gateway PaymentGateway
	timeout time.Duration
	logger  *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(gateway PaymentGateway, timeout time.Duration, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		gateway: gateway,
		timeout: timeout,
		logger:  logger,
	}
}

// ValidateCard checks the card details, failing on the first problem:
// number, then expiry month, then expiry year, then CVC.
func (s *PaymentService) ValidateCard(card CardDetails) error {
	number := strings.NewReplacer(" ", "", "-", "").Replace(card.Number)
	if !cardNumberPattern.MatchString(number) {
		return shared.NewDomainError("INVALID_CARD", "Invalid card number")
	}

	month, err := strconv.Atoi(strings.TrimSpace(card.ExpiryMonth))
	if err != nil || month < 1 || month > 12 {
		return shared.NewDomainError("INVALID_CARD", "Invalid expiration month")
	}

	year, err := strconv.Atoi(strings.TrimSpace(card.ExpiryYear))
	if err != nil || len(strings.TrimSpace(card.ExpiryYear)) != 2 {
		return shared.NewDomainError("INVALID_CARD", "Card has expired")
	}
	// Year-only comparison; a card expiring any month of the current year
	// is accepted.
	if year < time.Now().Year()%100 {
		return shared.NewDomainError("INVALID_CARD", "Card has expired")
	}

	if !cvcPattern.MatchString(strings.TrimSpace(card.CVC)) {
		return shared.NewDomainError("INVALID_CARD", "Invalid CVC")
	}
	return nil
}

// Process validates the card and charges the amount through the gateway.
// A gateway timeout yields a FAILED payment rather than an error so the
// caller can report the outcome uniformly.
func (s *PaymentService) Process(ctx context.Context, card CardDetails, amount decimal.Decimal) (*PaymentResult, error) {
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payment amount must be positive")
	}
	if err := s.ValidateCard(card); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.gateway.Charge(ctx, ChargeRequest{
		Amount:     amount,
		CardNumber: strings.NewReplacer(" ", "", "-", "").Replace(card.Number),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.logger.Warn("payment gateway timed out",
				zap.Duration("timeout", s.timeout),
				zap.String("amount", amount.String()))
			return &PaymentResult{
				Status:  order.PaymentFailed,
				Message: "Payment processing timed out",
			}, nil
		}
		return nil, err
	}

	if !result.Success {
		return &PaymentResult{
			Status:  order.PaymentFailed,
			Message: result.Message,
		}, nil
	}
	return &PaymentResult{
		Status:        order.PaymentCompleted,
		TransactionID: result.TransactionID,
		Message:       result.Message,
	}, nil
}
