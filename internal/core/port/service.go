package port

import (
	"context"

	"github.com/MikeRez0/ypdiscount/internal/core/domain"
	"github.com/govalues/decimal"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	Quote(ctx context.Context, name string, tier domain.CustomerTier, total decimal.Decimal) (*domain.Quote, error)
	TaxSummary(ctx context.Context, amount decimal.Decimal) (string, error)

	RegisterCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	IssueToken(ctx context.Context, customerID uint64) (string, error)
	GetCustomer(ctx context.Context, customerID uint64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)

	QuoteForCustomer(ctx context.Context, customerID uint64, total decimal.Decimal) (*domain.Quote, error)
	ListQuotesByCustomer(ctx context.Context, customerID uint64) ([]*domain.Quote, error)
}
