package domain

import "fmt"

type DiscountResult struct {
	Discount        Money
	DiscountedTotal Money
}

// ComputeDiscount returns total scaled by the tier rate. The sign of total is not checked.
func ComputeDiscount(total Money, tier CustomerTier) (Money, error) {
	return total.Percentage(tier.Rate())
}

func ApplyDiscount(total Money, tier CustomerTier) (DiscountResult, error) {
	discount, err := ComputeDiscount(total, tier)
	if err != nil {
		return DiscountResult{}, err
	}
	discounted, err := total.Sub(discount)
	if err != nil {
		return DiscountResult{}, err
	}
	return DiscountResult{Discount: discount, DiscountedTotal: discounted}, nil
}

// FormatTotal renders the receipt line for a discounted purchase.
// There is no separator before "with": existing receipts are matched byte for byte.
func FormatTotal(customerName string, total Money, discount Money) (string, error) {
	discounted, err := total.Sub(discount)
	if err != nil {
		return "", err
	}
	discounted, err = discounted.Round()
	if err != nil {
		return "", err
	}
	discount, err = discount.Round()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Total for %s is %s", customerName, discounted) +
		fmt.Sprintf("with discount %s", discount), nil
}

func FormatTax(amount Money) string {
	return fmt.Sprintf("Total tax is %s", amount)
}
