package domain

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
	"golang.org/x/text/currency"
)

// MoneyScale is the number of fractional digits money is rounded and rendered to.
const MoneyScale = 2

// MaxAmountPrec is the number of significant digits an incoming amount may carry.
// A rate of at most MoneyScale digits applied to it stays within decimal.MaxPrec.
const MaxAmountPrec = decimal.MaxPrec - MoneyScale

var currencySymbols = map[currency.Unit]string{
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
	currency.JPY: "¥",
}

// Money is an exact decimal amount in a currency. Operations return new values.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

func ParseMoney(s string, unit currency.Unit) (Money, error) {
	d, err := decimal.Parse(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return NewMoney(d, unit), nil
}

func MustParseMoney(s string, unit currency.Unit) Money {
	m, err := ParseMoney(s, unit)
	if err != nil {
		panic(err)
	}
	return m
}

// CheckAmount strips trailing zeros past MoneyScale and rejects amounts
// that are negative or too long to be priced exactly.
func CheckAmount(d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsNeg() {
		return decimal.Decimal{}, ErrNegativeAmount
	}
	d = d.Trim(MoneyScale)
	if d.Prec() > MaxAmountPrec {
		return decimal.Decimal{}, ErrAmountOutOfRange
	}
	return d, nil
}

func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, ErrCurrencyMismatch
	}
	d, err := m.Amount.Sub(other.Amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrMath, err)
	}
	return NewMoney(d, m.Currency), nil
}

// Percentage scales the amount by rate, e.g. 0.05 for five percent.
func (m Money) Percentage(rate decimal.Decimal) (Money, error) {
	if m.Amount.Prec()+rate.Prec() > decimal.MaxPrec {
		return Money{}, fmt.Errorf("%w: %s × %s exceeds decimal precision", ErrMath, m.Amount, rate)
	}
	d, err := m.Amount.Mul(rate)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrMath, err)
	}
	return NewMoney(d, m.Currency), nil
}

// Round rounds to MoneyScale digits, half away from zero.
func (m Money) Round() (Money, error) {
	d := m.Amount
	r := d
	if d.Scale() > MoneyScale {
		var err error
		r, err = d.Abs().Add(decimal.MustNew(5, MoneyScale+1))
		if err != nil {
			return Money{}, fmt.Errorf("%w: %w", ErrMath, err)
		}
		r = r.Trunc(MoneyScale)
		if d.IsNeg() && !r.IsZero() {
			r = r.Neg()
		}
	}

	r = r.Pad(MoneyScale)
	if r.Scale() != MoneyScale {
		return Money{}, fmt.Errorf("%w: %s has no room for %d fractional digits", ErrMath, d, MoneyScale)
	}
	return NewMoney(r, m.Currency), nil
}

func (m Money) Cmp(other Money) int {
	return m.Amount.Cmp(other.Amount)
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) IsNeg() bool {
	return m.Amount.IsNeg()
}

// String renders the amount as currency, e.g. "$1,234.50" or "-$5.00".
// Amounts past CheckAmount's range cannot be rounded and print as their plain digits;
// FormatTotal reports that case as an error instead.
func (m Money) String() string {
	r, err := m.Round()
	if err != nil {
		return m.symbol() + m.Amount.String()
	}

	digits := r.Amount.Abs().String()
	whole, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if r.IsNeg() {
		b.WriteByte('-')
	}
	b.WriteString(m.symbol())
	b.WriteString(groupThousands(whole))
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

func (m Money) symbol() string {
	if s, ok := currencySymbols[m.Currency]; ok {
		return s
	}
	return m.Currency.String() + " "
}

func groupThousands(whole string) string {
	if len(whole) <= 3 {
		return whole
	}

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}
	return b.String()
}
