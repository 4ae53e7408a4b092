package math

import "golang.org/x/exp/constraints"

func DivCeil[T constraints.Integer](dividend, divisor T) T {
	base := dividend / divisor
	if dividend%divisor == 0 {
		return base
	} else {
		return base + 1
	}
}

func DivFloor[T constraints.Integer](dividend, divisor T) T {
	base := dividend / divisor
	return base
}

// CapacityFor returns the smallest table size that holds expected entries
// without exceeding maxLoadPercent. maxLoadPercent outside (0, 100] is treated as 100.
func CapacityFor(expected, maxLoadPercent int) int {
	if maxLoadPercent <= 0 || maxLoadPercent > 100 {
		maxLoadPercent = 100
	}
	if expected <= 0 {
		return 1
	}
	return DivCeil(expected*100, maxLoadPercent)
}
