package port

import "github.com/MikeRez0/ypdiscount/internal/core/domain"

type TokenPayload struct {
	CustomerID uint64
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(customer *domain.Customer) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
