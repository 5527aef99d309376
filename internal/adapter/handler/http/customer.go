package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MikeRez0/ypdiscount/internal/core/domain"
	"github.com/MikeRez0/ypdiscount/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	Handler
	service port.Service
}

func NewCustomerHandler(service port.Service, logger *zap.Logger) (*CustomerHandler, error) {
	return &CustomerHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type customerRequest struct {
	Name string `json:"name" binding:"required"`
	Tier string `json:"tier" binding:"required"`
}

type customerResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Tier      string    `json:"tier"`
	CreatedAt time.Time `json:"created_at"`
}

type registerResponse struct {
	customerResponse
	Token string `json:"token"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func newCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Tier:      string(c.Tier),
		CreatedAt: c.CreatedAt,
	}
}

func (ch *CustomerHandler) RegisterCustomer(ctx *gin.Context) {
	req := customerRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	tier, err := domain.ParseTier(req.Tier)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	customer, err := ch.service.RegisterCustomer(ctx, &domain.Customer{Name: req.Name, Tier: tier})
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	token, err := ch.service.IssueToken(ctx, customer.ID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, registerResponse{
		customerResponse: newCustomerResponse(customer),
		Token:            token,
	}, http.StatusCreated)
}

func (ch *CustomerHandler) IssueToken(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	token, err := ch.service.IssueToken(ctx, id)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, tokenResponse{Token: token})
}

func (ch *CustomerHandler) ListCustomers(ctx *gin.Context) {
	list, err := ch.service.ListCustomers(ctx)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]customerResponse, 0, len(list))
	for _, c := range list {
		result = append(result, newCustomerResponse(c))
	}

	ch.handleSuccess(ctx, result)
}

func (ch *CustomerHandler) CurrentCustomer(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).CustomerID

	customer, err := ch.service.GetCustomer(ctx, customerID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCustomerResponse(customer))
}
