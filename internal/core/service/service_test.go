package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MikeRez0/ypdiscount/internal/core/domain"
	"github.com/MikeRez0/ypdiscount/internal/core/port/mock"
	"github.com/MikeRez0/ypdiscount/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type prepareMocks func(repo *mock.MockRepository, ts *mock.MockTokenService)

func newService(t *testing.T, mockCtrl *gomock.Controller, prepare prepareMocks) *service.Service {
	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	if prepare != nil {
		prepare(repo, ts)
	}

	s, err := service.NewService(repo, ts, currency.USD, zap.NewNop())
	assert.NoError(t, err)
	return s
}

func TestService_Quote(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type quoteTest struct {
		name          string
		customer      string
		tier          domain.CustomerTier
		total         decimal.Decimal
		expError      error
		expDiscount   string
		expDiscounted string
		expSummary    string
	}

	tests := []quoteTest{
		{
			name:          "standard",
			customer:      "Alice",
			tier:          domain.TierStandard,
			total:         decimal.MustParse("100.00"),
			expDiscount:   "5.00",
			expDiscounted: "95.00",
			expSummary:    "Total for Alice is $95.00with discount $5.00",
		},
		{
			name:          "card holder",
			customer:      "Alice",
			tier:          domain.TierCardHolder,
			total:         decimal.MustParse("100.00"),
			expDiscount:   "10.00",
			expDiscounted: "90.00",
			expSummary:    "Total for Alice is $90.00with discount $10.00",
		},
		{
			name:          "gold",
			customer:      "Alice",
			tier:          domain.TierGold,
			total:         decimal.MustParse("200.00"),
			expDiscount:   "50.00",
			expDiscounted: "150.00",
			expSummary:    "Total for Alice is $150.00with discount $50.00",
		},
		{
			name:          "unknown tier",
			customer:      "Alice",
			tier:          domain.CustomerTier("BRONZE"),
			total:         decimal.MustParse("50.00"),
			expDiscount:   "0.00",
			expDiscounted: "50.00",
			expSummary:    "Total for Alice is $50.00with discount $0.00",
		},
		{
			name:     "negative total",
			customer: "Alice",
			tier:     domain.TierGold,
			total:    decimal.MustParse("-1"),
			expError: domain.ErrNegativeAmount,
		},
		{
			name:          "widest total",
			customer:      "Alice",
			tier:          domain.TierGold,
			total:         decimal.MustParse("99999999999999999"),
			expDiscount:   "24999999999999999.75",
			expDiscounted: "74999999999999999.25",
			expSummary:    "Total for Alice is $74,999,999,999,999,999.25with discount $24,999,999,999,999,999.75",
		},
		{
			name:          "trailing zeros",
			customer:      "Alice",
			tier:          domain.TierStandard,
			total:         decimal.MustParse("1.000000000000000000"),
			expDiscount:   "0.05",
			expDiscounted: "0.95",
			expSummary:    "Total for Alice is $0.95with discount $0.05",
		},
		{
			name:     "total too long",
			customer: "Alice",
			tier:     domain.TierGold,
			total:    decimal.MustParse("1234567890123456789"),
			expError: domain.ErrAmountOutOfRange,
		},
		{
			name:     "unknown tier total too long",
			customer: "Alice",
			tier:     domain.CustomerTier("BRONZE"),
			total:    decimal.MustParse("123456789012345678.9"),
			expError: domain.ErrAmountOutOfRange,
		},
		{
			name:     "empty name",
			customer: "  ",
			tier:     domain.TierGold,
			total:    decimal.Hundred,
			expError: domain.ErrEmptyCustomerName,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newService(t, mockCtrl, nil)

			result, err := s.Quote(context.Background(), test.customer, test.tier, test.total)
			assert.Equal(t, test.expError, err)
			if test.expError != nil {
				assert.Nil(t, result)
				return
			}

			assert.Equal(t, 0, result.Discount.Amount.Cmp(decimal.MustParse(test.expDiscount)))
			assert.Equal(t, 0, result.DiscountedTotal.Amount.Cmp(decimal.MustParse(test.expDiscounted)))
			assert.Equal(t, test.expSummary, result.Summary)
			assert.Equal(t, currency.USD, result.Total.Currency)
		})
	}
}

func TestService_TaxSummary(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s := newService(t, mockCtrl, nil)

	summary, err := s.TaxSummary(context.Background(), decimal.MustParse("25.00"))
	assert.NoError(t, err)
	assert.Equal(t, "Total tax is $25.00", summary)

	_, err = s.TaxSummary(context.Background(), decimal.MustParse("-0.01"))
	assert.Equal(t, domain.ErrNegativeAmount, err)

	_, err = s.TaxSummary(context.Background(), decimal.MustParse("123456789012345678"))
	assert.Equal(t, domain.ErrAmountOutOfRange, err)
}

func TestService_RegisterCustomer(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type registerTest struct {
		name      string
		customer  domain.Customer
		mock      prepareMocks
		expError  error
		expResult *domain.Customer
	}

	customer := domain.Customer{ID: 1, Name: "Alice", Tier: domain.TierGold, CreatedAt: time.Now()}

	tests := []registerTest{
		{
			name:     "Register good",
			customer: domain.Customer{Name: " Alice ", Tier: domain.TierGold},
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
						assert.Equal(t, "Alice", c.Name)
						assert.False(t, c.CreatedAt.IsZero())
						return &customer, nil
					})
			},
			expResult: &customer,
		},
		{
			name:     "Register already exists",
			customer: domain.Customer{Name: "Alice", Tier: domain.TierGold},
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConflictingData)
			},
			expError: domain.ErrConflictingData,
		},
		{
			name:     "Register storage failure",
			customer: domain.Customer{Name: "Alice", Tier: domain.TierGold},
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			expError: domain.ErrInternal,
		},
		{
			name:     "Unknown tier",
			customer: domain.Customer{Name: "Alice", Tier: domain.CustomerTier("PLATINUM")},
			expError: domain.ErrUnknownTier,
		},
		{
			name:     "Empty name",
			customer: domain.Customer{Tier: domain.TierStandard},
			expError: domain.ErrEmptyCustomerName,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newService(t, mockCtrl, test.mock)

			result, err := s.RegisterCustomer(context.Background(), &test.customer)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_IssueToken(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	customer := domain.Customer{ID: 7, Name: "Bob", Tier: domain.TierStandard}

	type issueTokenTest struct {
		name     string
		mock     prepareMocks
		expToken string
		expError error
	}

	tests := []issueTokenTest{
		{
			name: "Issue good",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().ReadCustomer(gomock.Any(), uint64(7)).Return(&customer, nil)
				ts.EXPECT().CreateToken(&customer).Return("token", nil)
			},
			expToken: "token",
		},
		{
			name: "Customer not found",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().ReadCustomer(gomock.Any(), uint64(7)).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
		{
			name: "Token failure",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().ReadCustomer(gomock.Any(), uint64(7)).Return(&customer, nil)
				ts.EXPECT().CreateToken(&customer).Return("", errors.New("boom"))
			},
			expError: domain.ErrTokenCreation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newService(t, mockCtrl, test.mock)

			token, err := s.IssueToken(context.Background(), 7)
			assert.Equal(t, test.expToken, token)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_QuoteForCustomer(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	customer := domain.Customer{ID: 3, Name: "Carol", Tier: domain.TierCardHolder}

	type quoteForCustomerTest struct {
		name     string
		total    decimal.Decimal
		mock     prepareMocks
		expError error
	}

	tests := []quoteForCustomerTest{
		{
			name:  "Quote recorded",
			total: decimal.MustParse("100.00"),
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().ReadCustomer(gomock.Any(), uint64(3)).Return(&customer, nil)
				repo.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, q *domain.Quote) (*domain.Quote, error) {
						q.ID = 11
						return q, nil
					})
			},
		},
		{
			name:  "Customer missing",
			total: decimal.MustParse("100.00"),
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().ReadCustomer(gomock.Any(), uint64(3)).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
		{
			name:  "Negative total",
			total: decimal.MustParse("-100.00"),
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().ReadCustomer(gomock.Any(), uint64(3)).Return(&customer, nil)
			},
			expError: domain.ErrNegativeAmount,
		},
		{
			name:  "Storage failure",
			total: decimal.MustParse("100.00"),
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().ReadCustomer(gomock.Any(), uint64(3)).Return(&customer, nil)
				repo.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newService(t, mockCtrl, test.mock)

			result, err := s.QuoteForCustomer(context.Background(), 3, test.total)
			assert.Equal(t, test.expError, err)
			if test.expError != nil {
				assert.Nil(t, result)
				return
			}

			assert.Equal(t, uint64(11), result.ID)
			assert.Equal(t, customer.ID, result.CustomerID)
			assert.Equal(t, domain.TierCardHolder, result.Tier)
			assert.Equal(t, "Total for Carol is $90.00with discount $10.00", result.Summary)
			assert.False(t, result.CreatedAt.IsZero())
		})
	}
}

func TestService_ListQuotesByCustomer(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	quotes := []*domain.Quote{{ID: 1, CustomerID: 3}, {ID: 2, CustomerID: 3}}

	s := newService(t, mockCtrl, func(repo *mock.MockRepository, ts *mock.MockTokenService) {
		repo.EXPECT().ListQuotesByCustomer(gomock.Any(), uint64(3)).Return(quotes, nil)
		repo.EXPECT().ListQuotesByCustomer(gomock.Any(), uint64(4)).Return(nil, errors.New("gone"))
	})

	result, err := s.ListQuotesByCustomer(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, quotes, result)

	result, err = s.ListQuotesByCustomer(context.Background(), 4)
	assert.Equal(t, domain.ErrInternal, err)
	assert.Nil(t, result)
}
