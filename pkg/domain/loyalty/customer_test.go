package loyalty_test

import (
	"testing"

	"github.com/rmercado/kahera/pkg/domain/loyalty"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsFor(t *testing.T) {
	cases := []struct {
		amount string
		points string
	}{
		{"1000", "1"},
		{"500", "0.5"},
		{"24999", "24.999"},
		{"25000", "31.25"}, // 25 * 1.25
		{"40000", "50"},    // 40 * 1.25
	}
	for _, tc := range cases {
		amount := decimal.RequireFromString(tc.amount)
		expect := decimal.RequireFromString(tc.points)
		assert.True(t, loyalty.PointsFor(amount).Equal(expect),
			"amount %s: got %s want %s", tc.amount, loyalty.PointsFor(amount), expect)
	}
}

func TestNewCustomerValidation(t *testing.T) {
	_, err := loyalty.NewCustomer("", "Nena", "")
	assert.ErrorIs(t, err, loyalty.ErrCardNumberRequired)

	_, err = loyalty.NewCustomer("CARD-001", "", "")
	assert.ErrorIs(t, err, loyalty.ErrNameRequired)
}

func TestAccrue(t *testing.T) {
	c, err := loyalty.NewCustomer("CARD-001", "Nena", "09171234567")
	require.NoError(t, err)

	earned, err := c.Accrue(decimal.RequireFromString("3000"))
	require.NoError(t, err)
	assert.True(t, earned.Equal(decimal.NewFromInt(3)))

	earned, err = c.Accrue(decimal.RequireFromString("25000"))
	require.NoError(t, err)
	assert.True(t, earned.Equal(decimal.RequireFromString("31.25")))

	assert.True(t, c.Points.Equal(decimal.RequireFromString("34.25")))
	assert.True(t, c.TotalAmount.Equal(decimal.NewFromInt(28000)))

	_, err = c.Accrue(decimal.Zero)
	assert.ErrorIs(t, err, loyalty.ErrAccrualAmountMustBePositive)
}
