package modules

import (
	"github.com/haatbazar/storefront/internal/storefront/modules/account"
	"github.com/haatbazar/storefront/internal/storefront/modules/auth"
	"github.com/haatbazar/storefront/internal/storefront/modules/cart"
	"github.com/haatbazar/storefront/internal/storefront/modules/catalog"
	"github.com/haatbazar/storefront/internal/storefront/modules/checkout"
)

// Public returns the modules reachable without a signed-in session.
func Public(deps Dependencies) []Module {
	return []Module{
		catalog.New(deps),
		cart.New(deps),
		auth.New(deps),
	}
}

// Protected returns the modules that require a signed-in session.
func Protected(deps Dependencies) []Module {
	return []Module{
		checkout.New(deps),
		account.New(deps),
	}
}
