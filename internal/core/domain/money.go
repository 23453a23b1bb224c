package domain

import (
	"errors"
	"fmt"
	"math"
)

// Money is an amount in minor currency units (cents). It is never
// represented as a floating point value anywhere in the system and is
// serialized as a plain integer.
type Money int64

var (
	// ErrMoneyOverflow is returned when an arithmetic operation would
	// exceed the int64 range.
	ErrMoneyOverflow = errors.New("money arithmetic overflow")
	// ErrNegativeMoney is returned when an operation would produce a
	// negative amount.
	ErrNegativeMoney = errors.New("negative money amount")
)

// Cents returns the raw integer value.
func (m Money) Cents() int64 { return int64(m) }

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m == 0 }

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m > 0 }

// Add returns m+other or ErrMoneyOverflow when the sum does not fit in
// an int64. Both operands must be non-negative.
func (m Money) Add(other Money) (Money, error) {
	if m < 0 || other < 0 {
		return 0, ErrNegativeMoney
	}
	if int64(m) > math.MaxInt64-int64(other) {
		return 0, ErrMoneyOverflow
	}
	return m + other, nil
}

// Sub returns m-other or ErrNegativeMoney when the result would be
// negative. Balances are never allowed below zero.
func (m Money) Sub(other Money) (Money, error) {
	if other > m {
		return 0, fmt.Errorf("%w: %d - %d", ErrNegativeMoney, m, other)
	}
	return m - other, nil
}

// SubClamped returns m-other, saturating at zero.
func (m Money) SubClamped(other Money) Money {
	if other >= m {
		return 0
	}
	return m - other
}

// MulDiv returns m*mul/div with an overflow check. It is the building
// block for rate computations such as cpv * views / 100.
func (m Money) MulDiv(mul, div int64) (Money, error) {
	if div <= 0 {
		return 0, fmt.Errorf("money MulDiv: non-positive divisor %d", div)
	}
	if m < 0 || mul < 0 {
		return 0, ErrNegativeMoney
	}
	if mul != 0 && int64(m) > math.MaxInt64/mul {
		return 0, ErrMoneyOverflow
	}
	return Money(int64(m) * mul / div), nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", int64(m)/100, int64(m)%100)
}
