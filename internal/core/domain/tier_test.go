package domain_test

import (
	"testing"

	"github.com/MikeRez0/ypdiscount/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCustomerTier_Rate(t *testing.T) {
	tests := []struct {
		tier domain.CustomerTier
		want string
	}{
		{tier: domain.TierStandard, want: "0.05"},
		{tier: domain.TierCardHolder, want: "0.10"},
		{tier: domain.TierGold, want: "0.25"},
		{tier: domain.CustomerTier("PLATINUM"), want: "0"},
		{tier: domain.CustomerTier(""), want: "0"},
	}

	for _, test := range tests {
		t.Run(string(test.tier), func(t *testing.T) {
			rate := test.tier.Rate()
			assert.Equal(t, 0, rate.Cmp(decimal.MustParse(test.want)))
			assert.True(t, rate.Cmp(decimal.Zero) >= 0 && rate.Cmp(decimal.One) <= 0)
		})
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.CustomerTier
		wantErr error
	}{
		{in: "STANDARD", want: domain.TierStandard},
		{in: "gold", want: domain.TierGold},
		{in: "card-holder", want: domain.TierCardHolder},
		{in: " Card Holder ", want: domain.TierCardHolder},
		{in: "platinum", wantErr: domain.ErrUnknownTier},
		{in: "", wantErr: domain.ErrUnknownTier},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			tier, err := domain.ParseTier(test.in)
			assert.Equal(t, test.wantErr, err)
			assert.Equal(t, test.want, tier)
		})
	}
}
