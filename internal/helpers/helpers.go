package helpers

import (
	"context"
	"errors"

	"github.com/denmor86/paytik/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

// Ключи claims в JWT
const (
	ClaimAlias = "alias"
	ClaimRole  = "role"
)

var ErrUndefinedClaim = errors.New("undefined claim in token")

// GetAlias - извлекает алиас пользователя из контекста JWT токена
func GetAlias(ctx context.Context) (string, error) {
	return getClaim(ctx, ClaimAlias)
}

// GetRole - извлекает роль пользователя из контекста JWT токена
func GetRole(ctx context.Context) (string, error) {
	return getClaim(ctx, ClaimRole)
}

func getClaim(ctx context.Context, name string) (string, error) {
	_, claims, _ := jwtauth.FromContext(ctx)
	value, ok := claims[name].(string)
	if !ok || value == "" {
		logger.Warn("Undefined claim from token:", name)
		return "", ErrUndefinedClaim
	}
	return value, nil
}
