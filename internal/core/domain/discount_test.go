package domain_test

import (
	"testing"

	"github.com/MikeRez0/ypdiscount/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name           string
		total          string
		tier           domain.CustomerTier
		wantDiscount   string
		wantDiscounted string
	}{
		{name: "standard", total: "100.00", tier: domain.TierStandard, wantDiscount: "5.00", wantDiscounted: "95.00"},
		{name: "card holder", total: "100.00", tier: domain.TierCardHolder, wantDiscount: "10.00", wantDiscounted: "90.00"},
		{name: "gold", total: "200.00", tier: domain.TierGold, wantDiscount: "50.00", wantDiscounted: "150.00"},
		{name: "unknown", total: "50.00", tier: domain.CustomerTier("UNKNOWN"), wantDiscount: "0.00", wantDiscounted: "50.00"},
		{name: "zero total", total: "0", tier: domain.TierGold, wantDiscount: "0", wantDiscounted: "0"},
		{name: "cents", total: "19.99", tier: domain.TierStandard, wantDiscount: "0.9995", wantDiscounted: "18.9905"},
		{name: "widest total", total: "99999999999999999", tier: domain.TierGold,
			wantDiscount: "24999999999999999.75", wantDiscounted: "74999999999999999.25"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			total := usd(test.total)

			res, err := domain.ApplyDiscount(total, test.tier)
			require.NoError(t, err)

			assert.Equal(t, 0, res.Discount.Cmp(usd(test.wantDiscount)))
			assert.Equal(t, 0, res.DiscountedTotal.Cmp(usd(test.wantDiscounted)))
			assert.True(t, res.DiscountedTotal.Cmp(total) <= 0)
			assert.False(t, res.DiscountedTotal.IsNeg())
		})
	}
}

func TestComputeDiscount_Idempotent(t *testing.T) {
	total := usd("123.45")

	first, err := domain.ComputeDiscount(total, domain.TierGold)
	require.NoError(t, err)
	second, err := domain.ComputeDiscount(total, domain.TierGold)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "30.8625", first.Amount.String())
}

func TestComputeDiscount_PrecisionExceeded(t *testing.T) {
	_, err := domain.ComputeDiscount(usd("1234567890123456789"), domain.TierGold)
	assert.ErrorIs(t, err, domain.ErrMath)
}

func TestComputeDiscount_UnknownTier(t *testing.T) {
	total := usd("50.00")

	discount, err := domain.ComputeDiscount(total, domain.CustomerTier("SILVER"))
	require.NoError(t, err)
	assert.True(t, discount.IsZero())

	line, err := domain.FormatTotal("Ann", total, discount)
	require.NoError(t, err)
	assert.Equal(t, "Total for Ann is $50.00with discount $0.00", line)
}

func TestFormatTotal(t *testing.T) {
	total := usd("19.99")
	discount, err := domain.ComputeDiscount(total, domain.TierStandard)
	require.NoError(t, err)

	line, err := domain.FormatTotal("Bob", total, discount)
	require.NoError(t, err)
	assert.Equal(t, "Total for Bob is $18.99with discount $1.00", line)

	_, err = domain.FormatTotal("Bob", total, domain.MustParseMoney("1", currency.EUR))
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)

	_, err = domain.FormatTotal("Bob", usd("1234567890123456789"), usd("0"))
	assert.ErrorIs(t, err, domain.ErrMath)
}

func TestFormatTax(t *testing.T) {
	assert.Equal(t, "Total tax is $25.00", domain.FormatTax(usd("25.00")))
	assert.Equal(t, "Total tax is $1,000.10", domain.FormatTax(usd("1000.1")))
}
