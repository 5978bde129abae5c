// Package store provides an interface for product storage operations.
package store

import "github.com/shopspring/decimal"

// Entity names products in errors returned by the store.
const Entity = "product"

// Product represents a product record in the store.
type Product struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

// ProductStore is an interface for product storage operations.
// Implementations keep records in insertion order and return copies.
type ProductStore interface {
	// FindByID retrieves a single product by its identifier.
	// Returns a NotFoundError if no product exists with the given ID.
	FindByID(id int) (*Product, error)

	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll() ([]Product, error)

	// Count returns the number of stored products.
	Count() int

	// Create adds a new product.
	// Returns a DuplicateKeyError if the ID is already taken.
	Create(product Product) (*Product, error)

	// Update applies mutate to the stored product and keeps the result only if mutate succeeds.
	// Returns a NotFoundError if no product exists with the given ID.
	Update(id int, mutate func(*Product) error) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns a NotFoundError if no product exists with the given ID.
	DeleteByID(id int) error
}
