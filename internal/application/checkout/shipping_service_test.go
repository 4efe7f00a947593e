package checkout

import (
	"testing"

	"github.com/opalessence/backend/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShippingCalculate_BaseRates(t *testing.T) {
	svc := NewShippingService(pricing.DefaultRateTable())
	subtotal := decimal.NewFromInt(100)

	tests := []struct {
		method   pricing.Method
		state    string
		expected int64
	}{
		{pricing.MethodGround, "OR", 15},
		{pricing.MethodGround, "CA", 20},
		{pricing.MethodGround, "AZ", 25},
		{pricing.MethodGround, "NY", 30},
		{pricing.MethodTwoDay, "OR", 25},
		{pricing.MethodOvernight, "CA", 60},
	}

	for _, tt := range tests {
		cost := svc.Calculate(tt.method, pricing.Destination{State: tt.state}, subtotal, 1)
		assert.True(t, decimal.NewFromInt(tt.expected).Equal(cost),
			"%s to %s expected %d got %s", tt.method, tt.state, tt.expected, cost)
	}
}

func TestShippingCalculate_WeightFactor(t *testing.T) {
	svc := NewShippingService(pricing.DefaultRateTable())
	dest := pricing.Destination{State: "OR"}
	subtotal := decimal.NewFromInt(100)

	// 5 items applies a 1.1x factor to the $15 zone 1 ground rate,
	// rounded to whole dollars: 16.5 -> 17
	cost := svc.Calculate(pricing.MethodGround, dest, subtotal, 5)
	assert.True(t, decimal.NewFromInt(17).Equal(cost), "got %s", cost)

	// 10 items: 15 * 1.2 = 18
	cost = svc.Calculate(pricing.MethodGround, dest, subtotal, 10)
	assert.True(t, decimal.NewFromInt(18).Equal(cost), "got %s", cost)
}

func TestShippingCalculate_FreeGroundOverThreshold(t *testing.T) {
	svc := NewShippingService(pricing.DefaultRateTable())
	dest := pricing.Destination{State: "CA"}

	cost := svc.Calculate(pricing.MethodGround, dest, decimal.NewFromInt(150), 2)
	assert.True(t, cost.IsZero())

	// Just under the threshold still charges
	cost = svc.Calculate(pricing.MethodGround, dest, decimal.NewFromFloat(149.99), 2)
	assert.True(t, decimal.NewFromInt(20).Equal(cost))
}

func TestShippingCalculate_ExpressNeverFree(t *testing.T) {
	svc := NewShippingService(pricing.DefaultRateTable())
	dest := pricing.Destination{State: "OR"}
	subtotal := decimal.NewFromInt(500)

	assert.True(t, decimal.NewFromInt(25).Equal(svc.Calculate(pricing.MethodTwoDay, dest, subtotal, 1)))
	assert.True(t, decimal.NewFromInt(45).Equal(svc.Calculate(pricing.MethodOvernight, dest, subtotal, 1)))
}

func TestShippingOptions(t *testing.T) {
	svc := NewShippingService(pricing.DefaultRateTable())
	dest := pricing.Destination{State: "WA", ZipCode: "98101"}

	options := svc.Options(dest, decimal.NewFromInt(100), 1)

	assert.Len(t, options, 3)
	assert.Equal(t, pricing.MethodGround, options[0].Method)
	assert.Equal(t, "Ground Shipping", options[0].DisplayName)
	assert.Equal(t, "2-3", options[0].EstimatedDays)
	assert.Equal(t, pricing.MethodTwoDay, options[1].Method)
	assert.Equal(t, "2", options[1].EstimatedDays)
	assert.Equal(t, pricing.MethodOvernight, options[2].Method)
	assert.Equal(t, "1", options[2].EstimatedDays)
}
