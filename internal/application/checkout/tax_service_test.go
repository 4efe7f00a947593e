package checkout

import (
	"testing"

	"github.com/opalessence/backend/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTaxCalculate_OregonIsTaxFree(t *testing.T) {
	svc := NewTaxService(pricing.DefaultRateTable())

	tax := svc.Calculate(decimal.NewFromInt(100), pricing.Destination{State: "OR", ZipCode: "97132"})
	assert.True(t, tax.IsZero())
}

func TestTaxCalculate_StateRate(t *testing.T) {
	svc := NewTaxService(pricing.DefaultRateTable())

	// CA at 7.25% on $100
	tax := svc.Calculate(decimal.NewFromInt(100), pricing.Destination{State: "CA", ZipCode: "95014"})
	assert.True(t, decimal.NewFromFloat(7.25).Equal(tax), "got %s", tax)
}

func TestTaxCalculate_LocalSurcharge(t *testing.T) {
	svc := NewTaxService(pricing.DefaultRateTable())

	// Seattle: 6.5% state + 3.6% local on $100
	tax := svc.Calculate(decimal.NewFromInt(100), pricing.Destination{State: "WA", ZipCode: "98101"})
	assert.True(t, decimal.NewFromFloat(10.10).Equal(tax), "got %s", tax)

	// Los Angeles: 7.25% + 2.75% on $200
	tax = svc.Calculate(decimal.NewFromInt(200), pricing.Destination{State: "CA", ZipCode: "90001"})
	assert.True(t, decimal.NewFromInt(20).Equal(tax), "got %s", tax)
}

func TestTaxCalculate_UnknownStateUsesMaxRate(t *testing.T) {
	svc := NewTaxService(pricing.DefaultRateTable())

	tax := svc.Calculate(decimal.NewFromInt(100), pricing.Destination{State: "TX", ZipCode: "75001"})
	assert.True(t, decimal.NewFromFloat(7.25).Equal(tax), "got %s", tax)
}

func TestTaxCalculate_RoundsToCents(t *testing.T) {
	svc := NewTaxService(pricing.DefaultRateTable())

	// 33.33 * 0.065 = 2.16645 -> 2.17
	tax := svc.Calculate(decimal.NewFromFloat(33.33), pricing.Destination{State: "WA", ZipCode: "99201"})
	assert.True(t, decimal.NewFromFloat(2.17).Equal(tax), "got %s", tax)
}
