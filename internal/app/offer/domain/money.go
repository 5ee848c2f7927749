package domain

import (
	"fmt"
	"math"
	"math/big"
)

// Money represents a monetary amount with precise decimal arithmetic using big.Rat.
// Amounts are stored as a rational number (numerator/denominator) to avoid
// floating-point precision issues in negotiation amounts.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a new Money instance from numerator and denominator.
// Example: NewMoney(1000000, 100) represents $10,000.00
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}

	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// NewMoneyFromFloat creates a Money instance from a float64 amount.
// Intended for request payloads where amounts arrive as JSON numbers.
func NewMoneyFromFloat(amount float64) (*Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("amount is not a finite number")
	}

	rat := new(big.Rat).SetFloat64(amount)
	if rat == nil {
		return nil, fmt.Errorf("amount cannot be represented")
	}
	return &Money{rat: rat}, nil
}

// Numerator returns the numerator of the rational number.
func (m *Money) Numerator() int64 {
	return m.rat.Num().Int64()
}

// Denominator returns the denominator of the rational number.
func (m *Money) Denominator() int64 {
	return m.rat.Denom().Int64()
}

// IsZero returns true if the amount is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the amount is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// LessThan returns true if this amount is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// Equals returns true if this amount equals another.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (for display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns a string representation with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}

// IsSafeForStorage reports whether numerator and denominator fit in int64 columns.
func (m *Money) IsSafeForStorage() bool {
	return m.rat.Num().IsInt64() && m.rat.Denom().IsInt64()
}
