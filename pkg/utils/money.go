package utils

import (
	"fmt"
	"math"
)

// RoundCents rounds an amount to two decimal places, half away from zero.
// Fares are computed unrounded; rounding happens only at the presentation
// boundary (JSON responses).
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatMoney renders an amount as dollars with exactly two decimals.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
