// Package routepath centralizes storefront route literals so handlers,
// tests, and redirects cannot drift apart.
package routepath

// Catalog routes.
const (
	Products       = "/products"
	ProductPattern = "/products/{productID}"
)

// Cart routes.
const (
	Cart            = "/cart"
	CartSummary     = "/cart/summary"
	CartItems       = "/cart/items"
	CartItemPattern = "/cart/items/{productID}"
)

// Checkout routes.
const (
	Checkout        = "/checkout"
	CheckoutPayment = "/checkout/payment"
)

// Auth routes.
const (
	AuthSignup  = "/auth/signup"
	AuthLogin   = "/auth/login"
	AuthLogout  = "/auth/logout"
	AuthSession = "/auth/session"
)

// Account routes.
const (
	AccountProfile            = "/account/profile"
	AccountOrders             = "/account/orders"
	AccountOrderCancelPattern = "/account/orders/{orderID}/cancel"
	AccountComplaints         = "/account/complaints"
	AccountReviews            = "/account/reviews"
	AccountSellers            = "/account/sellers"
)

// Product returns the catalog detail path for a product id.
func Product(productID string) string {
	return Products + "/" + productID
}

// CartItem returns the cart line-item path for a product id.
func CartItem(productID string) string {
	return CartItems + "/" + productID
}

// AccountOrderCancel returns the order cancel path for an order id.
func AccountOrderCancel(orderID string) string {
	return AccountOrders + "/" + orderID + "/cancel"
}
