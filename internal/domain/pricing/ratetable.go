package pricing

import (
	"github.com/shopspring/decimal"
)

// Zone is a bucket of states sharing the same shipping base rates.
// Zones are measured by distance from the warehouse in Newberg, OR.
type Zone string

const (
	Zone1       Zone = "ZONE1"
	Zone2       Zone = "ZONE2"
	Zone3       Zone = "ZONE3"
	ZoneDefault Zone = "DEFAULT"
)

// Method identifies a shipping method
type Method string

const (
	MethodGround    Method = "ground"
	MethodTwoDay    Method = "twoDay"
	MethodOvernight Method = "overnight"
)

// DisplayName returns the customer-facing name of the method
func (m Method) DisplayName() string {
	switch m {
	case MethodGround:
		return "Ground Shipping"
	case MethodTwoDay:
		return "2-Day Express"
	case MethodOvernight:
		return "Overnight Delivery"
	}
	return string(m)
}

// IsValid checks if the method is a known shipping method
func (m Method) IsValid() bool {
	switch m {
	case MethodGround, MethodTwoDay, MethodOvernight:
		return true
	}
	return false
}

// Destination is the rate-lookup key for a shipping address.
// It carries no lifecycle; it is a pure input to the calculators.
type Destination struct {
	State   string
	ZipCode string
}

// RateTable holds the static shipping and tax rate data. It is injected as
// configuration rather than referenced as package globals so tables can be
// updated without code changes.
type RateTable struct {
	ZoneStates            map[Zone][]string
	BaseRates             map[Method]map[Zone]decimal.Decimal
	EstimatedDays         map[Method]map[Zone]string
	StateTaxRates         map[string]decimal.Decimal
	LocalTaxRates         map[string]decimal.Decimal
	FreeShippingThreshold decimal.Decimal
}

// Methods returns the shipping methods in quoting order (cheapest first)
func (t *RateTable) Methods() []Method {
	return []Method{MethodGround, MethodTwoDay, MethodOvernight}
}

// ZoneFor resolves the shipping zone for a state code.
// Unknown states fall back to the default (most expensive) zone so an
// unmapped destination is never quoted cheaper than a mapped one.
func (t *RateTable) ZoneFor(state string) Zone {
	for zone, states := range t.ZoneStates {
		for _, s := range states {
			if s == state {
				return zone
			}
		}
	}
	return ZoneDefault
}

// BaseRate returns the base rate for a method in a zone.
// Missing entries fall back to the default zone rate.
func (t *RateTable) BaseRate(method Method, zone Zone) decimal.Decimal {
	rates, ok := t.BaseRates[method]
	if !ok {
		return decimal.Zero
	}
	if rate, ok := rates[zone]; ok {
		return rate
	}
	return rates[ZoneDefault]
}

// EstimatedDaysFor returns the estimated delivery range (e.g. "2-3") for a
// method in a zone, falling back to the default zone entry.
func (t *RateTable) EstimatedDaysFor(method Method, zone Zone) string {
	days, ok := t.EstimatedDays[method]
	if !ok {
		return ""
	}
	if d, ok := days[zone]; ok {
		return d
	}
	return days[ZoneDefault]
}

// StateTaxRate returns the sales tax rate for a state. Unknown states fall
// back to the maximum known rate; an unmapped destination is never treated
// as tax-free.
func (t *RateTable) StateTaxRate(state string) decimal.Decimal {
	if rate, ok := t.StateTaxRates[state]; ok {
		return rate
	}
	return t.MaxStateTaxRate()
}

// LocalTaxRate returns the additional local tax rate for a ZIP code,
// zero when the ZIP is unmapped.
func (t *RateTable) LocalTaxRate(zipCode string) decimal.Decimal {
	if rate, ok := t.LocalTaxRates[zipCode]; ok {
		return rate
	}
	return decimal.Zero
}

// MaxStateTaxRate returns the highest state tax rate in the table
func (t *RateTable) MaxStateTaxRate() decimal.Decimal {
	max := decimal.Zero
	for _, rate := range t.StateTaxRates {
		if rate.GreaterThan(max) {
			max = rate
		}
	}
	return max
}

// WeightFactor returns the shipping weight multiplier for an item count:
// +10% for every full group of 5 items.
func WeightFactor(itemCount int) decimal.Decimal {
	step := decimal.NewFromInt(int64(itemCount / 5))
	return decimal.NewFromInt(1).Add(step.Mul(decimal.NewFromFloat(0.1)))
}

// DefaultRateTable returns the built-in rate data for the storefront
func DefaultRateTable() *RateTable {
	return &RateTable{
		ZoneStates: map[Zone][]string{
			Zone1: {"OR", "WA", "ID"},
			Zone2: {"CA", "NV", "MT", "WY"},
			Zone3: {"AZ", "UT", "NM", "CO"},
		},
		BaseRates: map[Method]map[Zone]decimal.Decimal{
			MethodGround: {
				Zone1:       decimal.NewFromInt(15),
				Zone2:       decimal.NewFromInt(20),
				Zone3:       decimal.NewFromInt(25),
				ZoneDefault: decimal.NewFromInt(30),
			},
			MethodTwoDay: {
				Zone1:       decimal.NewFromInt(25),
				Zone2:       decimal.NewFromInt(35),
				Zone3:       decimal.NewFromInt(45),
				ZoneDefault: decimal.NewFromInt(50),
			},
			MethodOvernight: {
				Zone1:       decimal.NewFromInt(45),
				Zone2:       decimal.NewFromInt(60),
				Zone3:       decimal.NewFromInt(75),
				ZoneDefault: decimal.NewFromInt(90),
			},
		},
		EstimatedDays: map[Method]map[Zone]string{
			MethodGround: {
				Zone1:       "2-3",
				Zone2:       "3-5",
				Zone3:       "5-7",
				ZoneDefault: "7-10",
			},
			MethodTwoDay: {
				Zone1:       "2",
				Zone2:       "2",
				Zone3:       "2",
				ZoneDefault: "2",
			},
			MethodOvernight: {
				Zone1:       "1",
				Zone2:       "1",
				Zone3:       "1",
				ZoneDefault: "1",
			},
		},
		StateTaxRates: map[string]decimal.Decimal{
			"OR": decimal.Zero, // Oregon has no sales tax
			"WA": decimal.NewFromFloat(0.065),
			"CA": decimal.NewFromFloat(0.0725),
			"NV": decimal.NewFromFloat(0.0685),
			"ID": decimal.NewFromFloat(0.06),
			"AZ": decimal.NewFromFloat(0.056),
			"UT": decimal.NewFromFloat(0.0485),
			"CO": decimal.NewFromFloat(0.029),
		},
		LocalTaxRates: map[string]decimal.Decimal{
			"97132": decimal.Zero,                 // Newberg, OR
			"98101": decimal.NewFromFloat(0.036),  // Seattle, WA
			"90001": decimal.NewFromFloat(0.0275), // Los Angeles, CA
		},
		FreeShippingThreshold: decimal.NewFromInt(150),
	}
}
