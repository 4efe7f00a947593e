package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	mathrand "math/rand"
	"time"

	"github.com/opalessence/backend/internal/application/checkout"
	"go.uber.org/zap"
)

// SimulatedGateway stands in for a real payment provider. It sleeps for a
// configured latency and then approves a configurable fraction of charges.
type SimulatedGateway struct {
	latency     time.Duration
	successRate float64
	rng         func() float64
	logger      *zap.Logger
}

// NewSimulatedGateway creates a gateway with the given artificial latency
// and approval rate (0 to 1).
func NewSimulatedGateway(latency time.Duration, successRate float64, logger *zap.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		latency:     latency,
		successRate: successRate,
		rng:         mathrand.Float64,
		logger:      logger,
	}
}

// WithRNG overrides the random source, used to make outcomes deterministic
// in tests
func (g *SimulatedGateway) WithRNG(rng func() float64) *SimulatedGateway {
	g.rng = rng
	return g
}

// Charge simulates a charge against the card. The latency sleep respects
// context cancellation so a caller-imposed deadline cuts it short.
func (g *SimulatedGateway) Charge(ctx context.Context, req checkout.ChargeRequest) (*checkout.ChargeResult, error) {
	select {
	case <-time.After(g.latency):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if g.rng() >= g.successRate {
		g.logger.Info("simulated charge declined",
			zap.String("amount", req.Amount.String()))
		return &checkout.ChargeResult{
			Success: false,
			Message: "Payment declined",
		}, nil
	}

	txn := transactionID()
	g.logger.Info("simulated charge approved",
		zap.String("transaction_id", txn),
		zap.String("amount", req.Amount.String()))
	return &checkout.ChargeResult{
		Success:       true,
		TransactionID: txn,
		Message:       "Payment processed successfully",
	}, nil
}

// transactionID builds a provider-style transaction reference such as
// tr_4f3a2b1c9
func transactionID() string {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return "tr_" + hex.EncodeToString(buf)[:9]
}
