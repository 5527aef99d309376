package domain

import "time"

type Quote struct {
	ID              uint64
	CustomerID      uint64
	CustomerName    string
	Tier            CustomerTier
	Total           Money
	Discount        Money
	DiscountedTotal Money
	Summary         string
	CreatedAt       time.Time
}
