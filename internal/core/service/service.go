package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MikeRez0/ypdiscount/internal/core/domain"
	"github.com/MikeRez0/ypdiscount/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	currency     currency.Unit
	logger       *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService,
	unit currency.Unit, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		currency:     unit,
		logger:       logger,
	}, nil
}

func (s *Service) Quote(ctx context.Context,
	name string,
	tier domain.CustomerTier,
	total decimal.Decimal,
) (*domain.Quote, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyCustomerName
	}

	return s.buildQuote(name, tier, total)
}

func (s *Service) TaxSummary(ctx context.Context, amount decimal.Decimal) (string, error) {
	amount, err := domain.CheckAmount(amount)
	if err != nil {
		return "", err
	}
	return domain.FormatTax(domain.NewMoney(amount, s.currency)), nil
}

func (s *Service) RegisterCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return nil, domain.ErrEmptyCustomerName
	}
	if !customer.Tier.Valid() {
		return nil, domain.ErrUnknownTier
	}

	customer.CreatedAt = time.Now()

	newCustomer, err := s.repo.CreateCustomer(ctx, customer)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Create customer", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newCustomer, nil
}

func (s *Service) IssueToken(ctx context.Context, customerID uint64) (string, error) {
	customer, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return "", err
	}

	token, err := s.tokenService.CreateToken(customer)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *Service) GetCustomer(ctx context.Context, customerID uint64) (*domain.Customer, error) {
	customer, err := s.repo.ReadCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Get customer", zap.Uint64("customer", customerID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	return customer, nil
}

func (s *Service) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	list, err := s.repo.ListCustomers(ctx)
	if err != nil {
		s.logger.Error("List customers", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) QuoteForCustomer(ctx context.Context,
	customerID uint64,
	total decimal.Decimal,
) (*domain.Quote, error) {
	customer, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	quote, err := s.buildQuote(customer.Name, customer.Tier, total)
	if err != nil {
		return nil, err
	}
	quote.CustomerID = customer.ID
	quote.CreatedAt = time.Now()

	saved, err := s.repo.CreateQuote(ctx, quote)
	if err != nil {
		s.logger.Error("Create quote", zap.Uint64("customer", customerID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	return saved, nil
}

func (s *Service) ListQuotesByCustomer(ctx context.Context, customerID uint64) ([]*domain.Quote, error) {
	list, err := s.repo.ListQuotesByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("List quotes for customer", zap.Uint64("customer", customerID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) buildQuote(name string, tier domain.CustomerTier, total decimal.Decimal) (*domain.Quote, error) {
	total, err := domain.CheckAmount(total)
	if err != nil {
		return nil, err
	}

	totalMoney := domain.NewMoney(total, s.currency)
	res, err := domain.ApplyDiscount(totalMoney, tier)
	if err != nil {
		s.logger.Error("Apply discount", zap.String("total", total.String()), zap.Error(err))
		return nil, domain.ErrMath
	}

	summary, err := domain.FormatTotal(name, totalMoney, res.Discount)
	if err != nil {
		s.logger.Error("Format total", zap.Error(err))
		return nil, domain.ErrMath
	}

	s.logger.Debug("Quote computed",
		zap.String("customer", name),
		zap.String("tier", string(tier)),
		zap.String("total", totalMoney.String()),
		zap.String("discount", res.Discount.String()))

	return &domain.Quote{
		CustomerName:    name,
		Tier:            tier,
		Total:           totalMoney,
		Discount:        res.Discount,
		DiscountedTotal: res.DiscountedTotal,
		Summary:         summary,
	}, nil
}
