package backend

// Order lifecycle statuses understood by the marketplace backend.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCancelled = "CANCELLED"
)

// Transaction constants recorded against completed charges.
const (
	PaymentTypeCard          = "CARD"
	TransactionStatusSuccess = "SUCCESS"
)

// Product is a marketplace listing as the backend serves it. Prices
// travel as plain numbers on the wire.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity,omitempty"`
	SellerID    string  `json:"seller_id"`
}

// OrderedProduct is one line of an order as the backend stores it.
type OrderedProduct struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderRequest creates one order against a single seller.
type OrderRequest struct {
	BuyerID         string           `json:"buyer_id"`
	SellerID        string           `json:"seller_id"`
	OrderedProducts []OrderedProduct `json:"ordered_products"`
	TotalPrice      float64          `json:"total_price"`
	ShippingAddress string           `json:"shipping_address"`
	BillingAddress  string           `json:"billing_address,omitempty"`
	Status          string           `json:"status"`
}

// Order is a placed order as the backend returns it.
type Order struct {
	ID              string           `json:"id"`
	BuyerID         string           `json:"buyer_id"`
	SellerID        string           `json:"seller_id"`
	OrderedProducts []OrderedProduct `json:"ordered_products"`
	TotalPrice      float64          `json:"total_price"`
	ShippingAddress string           `json:"shipping_address"`
	BillingAddress  string           `json:"billing_address,omitempty"`
	Status          string           `json:"status"`
	CreatedAt       string           `json:"created_at,omitempty"`
}

// TransactionRequest records a payment against an order.
type TransactionRequest struct {
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type"`
	Status      string  `json:"status"`
}

// Transaction is a recorded payment as the backend returns it.
type Transaction struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// Credentials authenticate an existing buyer.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration creates a new buyer account.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// User is the buyer profile held by the backend.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ComplaintRequest files a complaint against a seller.
type ComplaintRequest struct {
	BuyerID  string `json:"buyer_id"`
	SellerID string `json:"seller_id"`
	Message  string `json:"message"`
}

// Complaint is a filed complaint as the backend returns it.
type Complaint struct {
	ID        string `json:"id"`
	BuyerID   string `json:"buyer_id"`
	SellerID  string `json:"seller_id"`
	Message   string `json:"message"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ReviewRequest posts a product review.
type ReviewRequest struct {
	BuyerID   string `json:"buyer_id"`
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
}

// Review is a posted review as the backend returns it.
type Review struct {
	ID        string `json:"id"`
	BuyerID   string `json:"buyer_id"`
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Seller is a marketplace seller listing.
type Seller struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email,omitempty"`
	Rating float64 `json:"rating,omitempty"`
}
