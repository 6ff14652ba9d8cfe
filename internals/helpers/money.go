package helper

import "math"

// MoneyTolerance absorbs float drift when comparing derived amounts
// (allocation sums, balances, totals).
const MoneyTolerance = 0.01

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func MoneyEquals(a, b float64) bool {
	return math.Abs(a-b) <= MoneyTolerance
}
