package dto

import "math"

// Reais renders integer cents as a decimal amount for JSON.
func Reais(cents int64) float64 {
	return float64(cents) / 100
}

// Cents converts a decimal amount from a request into integer cents.
func Cents(reais float64) int64 {
	return int64(math.Round(reais * 100))
}
