package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/ypdiscount/internal/adapter/config"
	"github.com/MikeRez0/ypdiscount/internal/core/domain"
	"github.com/MikeRez0/ypdiscount/internal/core/port"
)

const payloadClaim = "payload"

type PasetoToken struct {
	parser paseto.Parser
	key    paseto.V4SymmetricKey
	ttl    time.Duration
}

func New(conf *config.Auth) (*PasetoToken, error) {
	return &PasetoToken{
		parser: paseto.NewParser(),
		key:    paseto.NewV4SymmetricKey(),
		ttl:    conf.TokenTTL,
	}, nil
}

func (p *PasetoToken) CreateToken(customer *domain.Customer) (string, error) {
	now := time.Now()

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.ttl))

	payload := port.TokenPayload{CustomerID: customer.ID}
	err := token.Set(payloadClaim, payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(p.key, token, nil)
	if err != nil {
		expiration, expErr := p.expiredAt(token)
		if expErr == nil && time.Now().After(expiration) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get(payloadClaim, &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}

// expiredAt decrypts the token without validation rules to tell expired tokens from forged ones.
func (p *PasetoToken) expiredAt(token string) (time.Time, error) {
	parser := paseto.NewParserWithoutExpiryCheck()
	parsed, err := parser.ParseV4Local(p.key, token, nil)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.GetExpiration()
}
