// Package pricing derives cart totals. Everything here is a pure function of
// its arguments and is recomputed on every read; nothing is cached.
package pricing

import (
	"math"
	"math/big"

	"suite46-pickup/models"

	"github.com/shopspring/decimal"
)

// Totals are the four money fields shown in the cart and written to the order.
// Subtotal is left unrounded; Tax, Tip and Total are each rounded from their
// own formula.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Tip      float64 `json:"tip"`
	Total    float64 `json:"total"`
}

// Calculate applies, in this order:
//
//	subtotal = Σ unitPrice × qty
//	tax      = round2(subtotal × taxRate)
//	tip      = round2((subtotal + tax) × tipRate)
//	total    = round2(subtotal + tax + tip)
//
// The order of operations is load-bearing: totals must agree to the cent with
// receipts already issued by the storefront.
func Calculate(lines []models.CartLine, taxRate, tipRate float64) Totals {
	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.UnitPrice * float64(l.Qty)
	}
	tax := Round2(subtotal * taxRate)
	tip := Round2((subtotal + tax) * tipRate)
	total := Round2(subtotal + tax + tip)

	return Totals{Subtotal: subtotal, Tax: tax, Tip: tip, Total: total}
}

// LineTotal is the rounded extended price of one line
func LineTotal(l models.CartLine) float64 {
	return Round2(float64(l.Qty) * l.UnitPrice)
}

var (
	hundred = big.NewRat(100, 1)
	half    = big.NewRat(1, 2)
)

// Round2 rounds to two decimals using the exact binary value of x, with ties
// going away from zero. 1.005 is stored just below 1.005 and so rounds to 1.00;
// 0.125 is exact and rounds to 0.13.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
		return x
	}
	r := new(big.Rat).SetFloat64(math.Abs(x))
	r.Mul(r, hundred)
	r.Add(r, half)
	cents := new(big.Int).Quo(r.Num(), r.Denom())

	out, _ := new(big.Rat).SetFrac(cents, big.NewInt(100)).Float64()
	if x < 0 {
		return -out
	}
	return out
}

// MinorUnits converts a dollar amount into cents, rounding half up.
func MinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount * 100).Round(0).IntPart()
}

// FormatUSD renders an amount as "$12.34", rounding the way Round2 does.
func FormatUSD(amount float64) string {
	return "$" + decimal.NewFromFloat(Round2(amount)).StringFixed(2)
}

// ValidTip reports whether rate is one of the configured presets. Free-form
// tips are not accepted.
func ValidTip(presets []float64, rate float64) bool {
	for _, p := range presets {
		if p == rate {
			return true
		}
	}
	return false
}
