// Package utils implements various helper functions and generic types.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum between to comparable values.
func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum between to comparable values.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// Abs returns the absolute value of a signed value.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
