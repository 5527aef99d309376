package domain

import "time"

type Customer struct {
	ID        uint64
	Name      string
	Tier      CustomerTier
	CreatedAt time.Time
}
