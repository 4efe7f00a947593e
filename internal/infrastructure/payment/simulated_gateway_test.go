package payment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/opalessence/backend/internal/application/checkout"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCharge_Approved(t *testing.T) {
	gateway := NewSimulatedGateway(0, 0.9, zap.NewNop()).
		WithRNG(func() float64 { return 0.5 })

	result, err := gateway.Charge(context.Background(), checkout.ChargeRequest{
		Amount: decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Payment processed successfully", result.Message)
	assert.Regexp(t, regexp.MustCompile(`^tr_[0-9a-f]{9}$`), result.TransactionID)
}

func TestCharge_Declined(t *testing.T) {
	gateway := NewSimulatedGateway(0, 0.9, zap.NewNop()).
		WithRNG(func() float64 { return 0.95 })

	result, err := gateway.Charge(context.Background(), checkout.ChargeRequest{
		Amount: decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Payment declined", result.Message)
	assert.Empty(t, result.TransactionID)
}

func TestCharge_ContextDeadlineCutsLatencyShort(t *testing.T) {
	gateway := NewSimulatedGateway(5*time.Second, 1.0, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := gateway.Charge(ctx, checkout.ChargeRequest{Amount: decimal.NewFromInt(100)})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
