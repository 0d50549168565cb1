package auth

import (
	"context"

	"github.com/haatbazar/storefront/internal/storefront/backend"
	"github.com/haatbazar/storefront/internal/storefront/module"
)

// NewHTTPGateway builds the production auth gateway from shared
// dependencies.
func NewHTTPGateway(deps module.Dependencies) AuthGateway {
	if deps.Backend == nil {
		return unavailableGateway{}
	}
	return httpGateway{client: deps.Backend}
}

type httpGateway struct {
	client *backend.Client
}

func (g httpGateway) Login(ctx context.Context, email, password string) (AuthGrant, error) {
	auth, err := g.client.Login(ctx, backend.Credentials{Email: email, Password: password})
	if err != nil {
		return AuthGrant{}, err
	}
	return authGrant(auth), nil
}

func (g httpGateway) Register(ctx context.Context, input SignupInput) (AuthGrant, error) {
	auth, err := g.client.Register(ctx, backend.Registration{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Address:  input.Address,
		Phone:    input.Phone,
	})
	if err != nil {
		return AuthGrant{}, err
	}
	return authGrant(auth), nil
}

func authGrant(auth backend.AuthResponse) AuthGrant {
	return AuthGrant{
		Token: auth.Token,
		User: UserView{
			ID:      auth.User.ID,
			Name:    auth.User.Name,
			Email:   auth.User.Email,
			Address: auth.User.Address,
			Phone:   auth.User.Phone,
		},
	}
}
