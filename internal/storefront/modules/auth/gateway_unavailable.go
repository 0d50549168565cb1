package auth

import (
	"context"

	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) Login(context.Context, string, string) (AuthGrant, error) {
	return AuthGrant{}, apperrors.E(apperrors.KindUnavailable, "auth backend is not configured")
}

func (unavailableGateway) Register(context.Context, SignupInput) (AuthGrant, error) {
	return AuthGrant{}, apperrors.E(apperrors.KindUnavailable, "auth backend is not configured")
}
