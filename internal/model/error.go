package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeInvalidCategory   = "INVALID_CATEGORY"
	ErrCodeInvalidStatus     = "INVALID_STATUS"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeInvalidCredential = "INVALID_CREDENTIALS"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business-logic error with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound      = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidCategory    = NewDomainError(ErrCodeInvalidCategory, "Category must be sunglasses or eyeglasses")
	ErrInvalidStatus      = NewDomainError(ErrCodeInvalidStatus, "Order status must not be empty")
	ErrEmptyCart          = NewDomainError(ErrCodeEmptyCart, "Checkout requires at least one item")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredential, "Invalid credentials")
)
