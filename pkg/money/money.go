// Package money provides a value object for Philippine peso amounts.
//
// Invariants:
//   - Amounts are stored as int64 centavos, never as floating point.
//   - Arithmetic operations fail instead of silently overflowing.
package money

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidAmount is returned when a peso amount cannot be represented
	// exactly in centavos.
	ErrInvalidAmount = errors.New("invalid peso amount")

	// ErrOverflow is returned when an arithmetic operation would exceed the
	// int64 centavo range.
	ErrOverflow = errors.New("amount overflows centavo range")
)

// centavosPerPeso is the smallest-unit scale for PHP.
const centavosPerPeso = 100

// Money is a peso amount in centavos.
type Money struct {
	centavos int64
}

// Zero is the zero peso amount.
var Zero = Money{}

// NewFromPesos converts a float peso amount to Money, rejecting values that
// are not finite or exceed the centavo range.
func NewFromPesos(pesos float64) (Money, error) {
	if math.IsNaN(pesos) || math.IsInf(pesos, 0) {
		return Money{}, ErrInvalidAmount
	}
	scaled := pesos * centavosPerPeso
	if scaled > math.MaxInt64 || scaled < math.MinInt64 {
		return Money{}, ErrOverflow
	}
	return Money{centavos: int64(math.Round(scaled))}, nil
}

// FromCentavos wraps a raw centavo count. Used when hydrating from storage.
func FromCentavos(centavos int64) Money {
	return Money{centavos: centavos}
}

// Centavos returns the raw centavo count.
func (m Money) Centavos() int64 { return m.centavos }

// Pesos returns the amount as float pesos, for display only.
func (m Money) Pesos() float64 { return float64(m.centavos) / centavosPerPeso }

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m.centavos == 0 }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.centavos < 0 }

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool { return m.centavos > 0 }

// LessThan reports whether m is strictly less than other.
func (m Money) LessThan(other Money) bool { return m.centavos < other.centavos }

// Equals reports whether the two amounts are identical.
func (m Money) Equals(other Money) bool { return m.centavos == other.centavos }

// Add returns m + other, failing on int64 overflow.
func (m Money) Add(other Money) (Money, error) {
	sum := m.centavos + other.centavos
	if (other.centavos > 0 && sum < m.centavos) || (other.centavos < 0 && sum > m.centavos) {
		return Money{}, ErrOverflow
	}
	return Money{centavos: sum}, nil
}

// Sub returns m - other, failing on int64 overflow.
func (m Money) Sub(other Money) (Money, error) {
	if other.centavos == math.MinInt64 {
		return Money{}, ErrOverflow
	}
	return m.Add(Money{centavos: -other.centavos})
}

// Negate returns the additive inverse.
func (m Money) Negate() Money {
	return Money{centavos: -m.centavos}
}

// String renders the amount as "₱1234.50".
func (m Money) String() string {
	sign := ""
	c := m.centavos
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s₱%d.%02d", sign, c/centavosPerPeso, c%centavosPerPeso)
}
