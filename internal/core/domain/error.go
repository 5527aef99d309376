package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")

	// * Business errors.
	ErrUnknownTier       = errors.New("customer tier is not recognized")
	ErrCurrencyMismatch  = errors.New("money amounts have different currencies")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrAmountOutOfRange  = errors.New("amount has too many digits")
	ErrEmptyCustomerName = errors.New("customer name is empty")
	ErrMath              = errors.New("decimal arithmetic error")
)
