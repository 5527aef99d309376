package auth_test

import (
	"testing"
	"time"

	"github.com/MikeRez0/ypdiscount/internal/adapter/auth"
	"github.com/MikeRez0/ypdiscount/internal/adapter/config"
	"github.com/MikeRez0/ypdiscount/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoToken_CreateVerify(t *testing.T) {
	ts, err := auth.New(&config.Auth{TokenTTL: time.Hour})
	require.NoError(t, err)

	token, err := ts.CreateToken(&domain.Customer{ID: 42, Name: "Alice", Tier: domain.TierGold})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	payload, err := ts.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), payload.CustomerID)
}

func TestPasetoToken_Invalid(t *testing.T) {
	ts, err := auth.New(&config.Auth{TokenTTL: time.Hour})
	require.NoError(t, err)
	other, err := auth.New(&config.Auth{TokenTTL: time.Hour})
	require.NoError(t, err)

	foreign, err := other.CreateToken(&domain.Customer{ID: 1})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "other key", token: foreign},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			payload, err := ts.VerifyToken(test.token)
			assert.Nil(t, payload)
			assert.Equal(t, domain.ErrInvalidToken, err)
		})
	}
}

func TestPasetoToken_Expired(t *testing.T) {
	ts, err := auth.New(&config.Auth{TokenTTL: time.Millisecond})
	require.NoError(t, err)

	token, err := ts.CreateToken(&domain.Customer{ID: 1})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = ts.VerifyToken(token)
	assert.Equal(t, domain.ErrExpiredToken, err)
}
