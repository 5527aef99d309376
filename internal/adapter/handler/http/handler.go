package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MikeRez0/ypdiscount/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrMath:            http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrTokenCreation:              http.StatusInternalServerError,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,

	domain.ErrBadRequest:        http.StatusBadRequest,
	domain.ErrUnknownTier:       http.StatusBadRequest,
	domain.ErrEmptyCustomerName: http.StatusBadRequest,
	domain.ErrAmountOutOfRange:  http.StatusBadRequest,

	domain.ErrNegativeAmount:   http.StatusUnprocessableEntity,
	domain.ErrCurrencyMismatch: http.StatusUnprocessableEntity,
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("request validation failed", zap.Error(err))
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrBadRequest.Error()})
}

// handleAbort sends an error response and aborts the request with the status mapped to err
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode := h.statusFor(err)
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode := h.statusFor(err)
	ctx.JSON(statusCode, errorResponse{Error: err.Error()})
}

func (h *Handler) statusFor(err error) int {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		h.logger.Error("error processing request", zap.Error(err))
		return http.StatusInternalServerError
	}
	return statusCode
}

// handleSuccessWithStatus sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

// parseAmount reads a JSON number or numeric string without a float64 round trip.
func parseAmount(n json.Number) (decimal.Decimal, error) {
	d, err := decimal.Parse(n.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %q: %w", domain.ErrBadRequest, n, err)
	}
	return d, nil
}

// amountString renders money rounded to cents, e.g. "95.00".
func amountString(m domain.Money) string {
	r, err := m.Round()
	if err != nil {
		return m.Amount.String()
	}
	return r.Amount.String()
}
