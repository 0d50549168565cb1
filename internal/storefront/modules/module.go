// Package modules defines storefront module registry helpers.
package modules

import module "github.com/haatbazar/storefront/internal/storefront/module"

// Dependencies aliases the shared module dependencies type.
type Dependencies = module.Dependencies

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module
