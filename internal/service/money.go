package service

import "github.com/shopspring/decimal"

// roundTwo rounds a monetary amount to 2 decimal places, half away from zero.
// Going through decimal avoids the float64 artifacts of rounding values like
// 150.005 directly.
func roundTwo(v float64) float64 {
	rounded, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return rounded
}
