package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MikeRez0/ypdiscount/internal/core/domain"
	"github.com/MikeRez0/ypdiscount/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuoteHandler struct {
	Handler
	service port.Service
}

func NewQuoteHandler(service port.Service, logger *zap.Logger) (*QuoteHandler, error) {
	return &QuoteHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type quoteRequest struct {
	Name  string      `json:"name" binding:"required"`
	Tier  string      `json:"tier"`
	Total json.Number `json:"total" binding:"required"`
}

type customerQuoteRequest struct {
	Total json.Number `json:"total" binding:"required"`
}

type taxRequest struct {
	Amount json.Number `json:"amount" binding:"required"`
}

type taxResponse struct {
	Summary string `json:"summary"`
}

type quoteResponse struct {
	ID              uint64     `json:"id,omitempty"`
	Customer        string     `json:"customer"`
	Tier            string     `json:"tier"`
	Currency        string     `json:"currency"`
	Total           string     `json:"total"`
	Discount        string     `json:"discount"`
	DiscountedTotal string     `json:"discounted_total"`
	Summary         string     `json:"summary"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

func newQuoteResponse(q *domain.Quote) quoteResponse {
	r := quoteResponse{
		ID:              q.ID,
		Customer:        q.CustomerName,
		Tier:            string(q.Tier),
		Currency:        q.Total.Currency.String(),
		Total:           amountString(q.Total),
		Discount:        amountString(q.Discount),
		DiscountedTotal: amountString(q.DiscountedTotal),
		Summary:         q.Summary,
	}
	if !q.CreatedAt.IsZero() {
		createdAt := q.CreatedAt
		r.CreatedAt = &createdAt
	}
	return r
}

// Quote prices an ad-hoc purchase. Unrecognized tiers are priced with no discount.
func (qh *QuoteHandler) Quote(ctx *gin.Context) {
	req := quoteRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		qh.handleValidationError(ctx, err)
		return
	}

	total, err := parseAmount(req.Total)
	if err != nil {
		qh.handleValidationError(ctx, err)
		return
	}

	tier, err := domain.ParseTier(req.Tier)
	if err != nil {
		tier = domain.CustomerTier(req.Tier)
	}

	quote, err := qh.service.Quote(ctx, req.Name, tier, total)
	if err != nil {
		qh.handleError(ctx, err)
		return
	}

	qh.handleSuccess(ctx, newQuoteResponse(quote))
}

func (qh *QuoteHandler) Tax(ctx *gin.Context) {
	req := taxRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		qh.handleValidationError(ctx, err)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		qh.handleValidationError(ctx, err)
		return
	}

	summary, err := qh.service.TaxSummary(ctx, amount)
	if err != nil {
		qh.handleError(ctx, err)
		return
	}

	qh.handleSuccess(ctx, taxResponse{Summary: summary})
}

func (qh *QuoteHandler) CreateCustomerQuote(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).CustomerID

	req := customerQuoteRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		qh.handleValidationError(ctx, err)
		return
	}

	total, err := parseAmount(req.Total)
	if err != nil {
		qh.handleValidationError(ctx, err)
		return
	}

	quote, err := qh.service.QuoteForCustomer(ctx, customerID, total)
	if err != nil {
		qh.handleError(ctx, err)
		return
	}

	qh.handleSuccessWithStatus(ctx, newQuoteResponse(quote), http.StatusCreated)
}

func (qh *QuoteHandler) ListCustomerQuotes(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).CustomerID

	list, err := qh.service.ListQuotesByCustomer(ctx, customerID)
	if err != nil {
		qh.handleError(ctx, err)
		return
	}

	if len(list) == 0 {
		qh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
		return
	}

	result := make([]quoteResponse, 0, len(list))
	for _, q := range list {
		result = append(result, newQuoteResponse(q))
	}

	qh.handleSuccess(ctx, result)
}
