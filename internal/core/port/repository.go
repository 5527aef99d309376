package port

import (
	"context"

	"github.com/MikeRez0/ypdiscount/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Customer
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	ReadCustomer(ctx context.Context, customerID uint64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)

	// Quote
	CreateQuote(ctx context.Context, quote *domain.Quote) (*domain.Quote, error)
	ListQuotesByCustomer(ctx context.Context, customerID uint64) ([]*domain.Quote, error)
}
