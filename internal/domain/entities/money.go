package entities

import "math"

// Cents is the canonical money unit for every stored amount.
//
// Monetary representation:
//   - All persistence and arithmetic happens in integer minor units (cents).
//   - Decimal dollars exist only at the HTTP boundary; conversion happens
//     exactly once per direction via CentsFromDollars / Dollars.

type Cents int64

// CentsFromDollars converts a decimal dollar amount to cents, rounding
// half away from zero on the second decimal.
func CentsFromDollars(d float64) Cents {
	return Cents(math.Round(d * 100))
}

func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// MulHundredths multiplies a per-unit price by a quantity expressed in
// hundredths of a unit (e.g. 24.33 roofing squares => 2433), rounding
// half up. Used to derive a job total from price-per-square.
func (c Cents) MulHundredths(qtyHundredths int64) Cents {
	raw := int64(c) * qtyHundredths
	if raw >= 0 {
		return Cents((raw + 50) / 100)
	}
	return Cents((raw - 50) / 100)
}
