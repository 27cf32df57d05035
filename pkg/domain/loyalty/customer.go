// Package loyalty models the counter's points program: customers identified
// by a card number earn points for purchases run through the counter.
package loyalty

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrCardNumberRequired is returned when a customer is registered
	// without a card number.
	ErrCardNumberRequired = errors.New("card number is required")

	// ErrNameRequired is returned when a customer is registered without a
	// name.
	ErrNameRequired = errors.New("customer name is required")

	// ErrAccrualAmountMustBePositive is returned when points are accrued
	// for a non-positive purchase amount.
	ErrAccrualAmountMustBePositive = errors.New("accrual amount must be positive")

	// ErrCustomerNotFound is returned when no member matches a card number.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCardNumberTaken is returned when registering a card number that is
	// already in use.
	ErrCardNumberTaken = errors.New("card number already registered")
)

// Customer is a loyalty program member.
type Customer struct {
	ID          uuid.UUID
	CardNumber  string
	Name        string
	Phone       string
	Points      decimal.Decimal
	TotalAmount decimal.Decimal // lifetime peso spend run through the counter
	CreatedAt   time.Time
}

// NewCustomer registers a member with zero points.
func NewCustomer(cardNumber, name, phone string) (*Customer, error) {
	if cardNumber == "" {
		return nil, ErrCardNumberRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	return &Customer{
		ID:         uuid.New(),
		CardNumber: cardNumber,
		Name:       name,
		Phone:      phone,
		Points:     decimal.Zero,
		CreatedAt:  time.Now(),
	}, nil
}

var (
	pointsPerPeso  = decimal.NewFromInt(1000) // 1 point per ₱1,000
	bonusThreshold = decimal.NewFromInt(25000)
	bonusRate      = decimal.RequireFromString("1.25")
)

// PointsFor computes the points a single purchase earns: one point per
// ₱1,000, with a 1.25x multiplier when the purchase is ₱25,000 or more.
// Fractional points are kept exactly.
func PointsFor(amount decimal.Decimal) decimal.Decimal {
	points := amount.Div(pointsPerPeso)
	if amount.GreaterThanOrEqual(bonusThreshold) {
		points = points.Mul(bonusRate)
	}
	return points
}

// Accrue adds the points for one purchase and tracks the lifetime spend.
func (c *Customer) Accrue(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrAccrualAmountMustBePositive
	}
	earned := PointsFor(amount)
	c.Points = c.Points.Add(earned)
	c.TotalAmount = c.TotalAmount.Add(amount)
	return earned, nil
}
