package eatstreet

import "math"

const centsPerUnit = 100

// RoundUp rounds a monetary amount to two decimal places, rounding away from
// zero on any remainder (10.001 becomes 10.01, never 10.00).
//
// Order pricing applies this independently at three stages: the subtotal is
// rounded before the tax is computed, the tax is rounded before the total is
// summed, and the total is rounded again. The staging is observable: it
// generally produces a different result than rounding once at the end.
func RoundUp(amount float64) float64 {
	if amount < 0 {
		return math.Floor(amount*centsPerUnit) / centsPerUnit
	}

	return math.Ceil(amount*centsPerUnit) / centsPerUnit
}
