package checkout

import (
	"github.com/opalessence/backend/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// TaxService computes sales tax against the rate table
type TaxService struct {
	rates *pricing.RateTable
}

// NewTaxService creates a new tax service
func NewTaxService(rates *pricing.RateTable) *TaxService {
	return &TaxService{rates: rates}
}

// Calculate returns the sales tax on a subtotal for a destination, rounded
// to cents. The rate is the state rate plus any local surcharge for the
// ZIP code. Unknown states are taxed at the highest known rate rather than
// treated as tax-free.
func (s *TaxService) Calculate(subtotal decimal.Decimal, dest pricing.Destination) decimal.Decimal {
	rate := s.rates.StateTaxRate(dest.State).Add(s.rates.LocalTaxRate(dest.ZipCode))
	return subtotal.Mul(rate).Round(2)
}

// Rate returns the combined tax rate for a destination
func (s *TaxService) Rate(dest pricing.Destination) decimal.Decimal {
	return s.rates.StateTaxRate(dest.State).Add(s.rates.LocalTaxRate(dest.ZipCode))
}
