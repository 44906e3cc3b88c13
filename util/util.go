package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DivRemainder returns q, r such that q*y + r == x and 0 <= r < y.
// Panics when y is not positive.
func DivRemainder[A constraints.Signed](x, y A) (A, A) {
	if y <= 0 {
		panic("DivRemainder used with nonpositive denominator")
	}
	q := x / y
	r := x % y
	if r < 0 {
		return q - 1, r + y
	}
	return q, r
}

// Mod is the remainder half of DivRemainder.
func Mod[A constraints.Signed](x, y A) A {
	_, r := DivRemainder(x, y)
	return r
}

func Abs[A constraints.Signed](x A) A {
	if x < 0 {
		return -x
	}
	return x
}

// GetKeys returns the keys of m in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
