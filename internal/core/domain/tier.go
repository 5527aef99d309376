package domain

import (
	"strings"

	"github.com/govalues/decimal"
)

type CustomerTier string

const (
	TierStandard   CustomerTier = "STANDARD"
	TierCardHolder CustomerTier = "CARD_HOLDER"
	TierGold       CustomerTier = "GOLD"
)

// Rate returns the discount rate of the tier. Unrecognized tiers get zero.
func (t CustomerTier) Rate() decimal.Decimal {
	switch t {
	case TierStandard:
		return decimal.MustNew(5, 2)
	case TierCardHolder:
		return decimal.MustNew(10, 2)
	case TierGold:
		return decimal.MustNew(25, 2)
	default:
		return decimal.Zero
	}
}

func (t CustomerTier) Valid() bool {
	switch t {
	case TierStandard, TierCardHolder, TierGold:
		return true
	}
	return false
}

// ParseTier accepts the tier name in any case, with "-" or " " in place of "_".
func ParseTier(s string) (CustomerTier, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)

	t := CustomerTier(norm)
	if !t.Valid() {
		return "", ErrUnknownTier
	}
	return t, nil
}
