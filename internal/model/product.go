package model

import "time"

// Product categories offered by the store.
const (
	CategorySunglasses = "sunglasses"
	CategoryEyeglasses = "eyeglasses"
)

// Product represents an eyewear product in the catalogue.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Image       string    `json:"image" db:"image"`
	Category    string    `json:"category" db:"category"`
	Collection  *string   `json:"collection,omitempty" db:"collection"`
	InStock     bool      `json:"inStock" db:"in_stock"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductRequest represents the payload for creating or replacing a product.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Collection  *string `json:"collection,omitempty"`
	InStock     bool    `json:"inStock"`
}

// ValidCategory reports whether c is a known product category.
func ValidCategory(c string) bool {
	return c == CategorySunglasses || c == CategoryEyeglasses
}
