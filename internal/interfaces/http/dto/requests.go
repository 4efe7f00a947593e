package dto

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// LoginRequest is the payload for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest confirms a pending email verification token
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// ForgotPasswordRequest asks for a password reset email
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest sets a new password from a reset token
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// CartItemRequest is one cart line in a quote or checkout
type CartItemRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// AddressRequest is a shipping destination
type AddressRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required,statecode"`
	ZipCode string `json:"zipCode" binding:"required,len=5,numeric"`
	Country string `json:"country" binding:"required"`
}

// QuoteRequest asks for shipping options and tax for a cart
type QuoteRequest struct {
	Items   []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	Address AddressRequest    `json:"address" binding:"required"`
}

// CardRequest carries card details for checkout
type CardRequest struct {
	Number      string `json:"number" binding:"required"`
	ExpiryMonth string `json:"expiryMonth" binding:"required"`
	ExpiryYear  string `json:"expiryYear" binding:"required"`
	CVC         string `json:"cvc" binding:"required"`
}

// CheckoutRequest submits a cart for payment and order creation
type CheckoutRequest struct {
	Items   []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	Address AddressRequest    `json:"address" binding:"required"`
	Method  string            `json:"method" binding:"required"`
	Card    CardRequest       `json:"card" binding:"required"`
}

// UpdateOrderStatusRequest transitions an order's lifecycle status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AddWishlistItemRequest puts a product on the wishlist
type AddWishlistItemRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
}
