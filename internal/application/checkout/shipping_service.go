package checkout

import (
	"github.com/opalessence/backend/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// ShippingOption is a priced shipping method for a destination
type ShippingOption struct {
	Method        pricing.Method  `json:"method"`
	DisplayName   string          `json:"displayName"`
	Cost          decimal.Decimal `json:"cost"`
	EstimatedDays string          `json:"estimatedDays"`
}

// ShippingService prices shipping methods against the rate table
type ShippingService struct {
	rates *pricing.RateTable
}

// NewShippingService creates a new shipping service
func NewShippingService(rates *pricing.RateTable) *ShippingService {
	return &ShippingService{rates: rates}
}

// Calculate prices a single shipping method for a destination.
// The base rate is scaled by the item-count weight factor and rounded to
// whole dollars. Ground shipping is free once the subtotal reaches the
// free-shipping threshold; express methods always charge.
func (s *ShippingService) Calculate(method pricing.Method, dest pricing.Destination, subtotal decimal.Decimal, itemCount int) decimal.Decimal {
	if method == pricing.MethodGround && subtotal.GreaterThanOrEqual(s.rates.FreeShippingThreshold) {
		return decimal.Zero
	}
	zone := s.rates.ZoneFor(dest.State)
	base := s.rates.BaseRate(method, zone)
	return base.Mul(pricing.WeightFactor(itemCount)).Round(0)
}

// Options prices every shipping method for a destination, cheapest first
func (s *ShippingService) Options(dest pricing.Destination, subtotal decimal.Decimal, itemCount int) []ShippingOption {
	zone := s.rates.ZoneFor(dest.State)
	methods := s.rates.Methods()
	options := make([]ShippingOption, 0, len(methods))
	for _, method := range methods {
		options = append(options, ShippingOption{
			Method:        method,
			DisplayName:   method.DisplayName(),
			Cost:          s.Calculate(method, dest, subtotal, itemCount),
			EstimatedDays: s.rates.EstimatedDaysFor(method, zone),
		})
	}
	return options
}

// EstimatedDays returns the delivery estimate for a method and destination
func (s *ShippingService) EstimatedDays(method pricing.Method, dest pricing.Destination) string {
	return s.rates.EstimatedDaysFor(method, s.rates.ZoneFor(dest.State))
}
