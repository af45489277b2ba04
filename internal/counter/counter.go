// Package counter implements the wrapping digit shown on the matrix.
package counter

import "github.com/fkcurrie/digit-matrix-golang/internal/types"

// Max is the largest digit
const Max = 9

// Digit is a value in [0,9]
type Digit uint8

// Inc returns the next digit, wrapping 9 to 0
func (d Digit) Inc() Digit {
	return (d + 1) % (Max + 1)
}

// Dec returns the previous digit, wrapping 0 to 9
func (d Digit) Dec() Digit {
	if d == 0 {
		return Max
	}
	return d - 1
}

// Apply returns the digit after action a. ActionNone leaves it unchanged.
func (d Digit) Apply(a types.Action) Digit {
	switch a {
	case types.ActionIncrement:
		return d.Inc()
	case types.ActionDecrement:
		return d.Dec()
	}
	return d
}

// Int returns the digit as an int for table lookups
func (d Digit) Int() int {
	return int(d)
}
