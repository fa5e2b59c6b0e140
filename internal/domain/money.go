package domain

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers, the same as the storefront UI sends them.
	decimal.MarshalJSONWithoutQuotes = true
}

var hundred = decimal.NewFromInt(100)

// ClampPercent bounds a percentage to [0, 100].
func ClampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}

	return p
}
