package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundMoney arredonda um valor monetário para centavos (half away from zero)
func RoundMoney(amount float64) float64 {
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return rounded
}

// Clip limita value ao intervalo [lower, upper]
func Clip(value, lower, upper float64) float64 {
	return math.Max(lower, math.Min(value, upper))
}
