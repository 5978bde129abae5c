// Package store provides an interface for customer storage operations.
package store

// Entity names customers in errors returned by the store.
const Entity = "customer"

// Customer represents a customer record in the store.
type Customer struct {
	ID      int
	Name    string
	Email   string
	Address string
}

// CustomerStore abstracts customer storage.
// Implementations keep records in insertion order and return copies.
type CustomerStore interface {
	// FindByID returns a NotFoundError if no customer exists with the given ID.
	FindByID(id int) (*Customer, error)

	// FindAll returns all customers in insertion order.
	FindAll() ([]Customer, error)

	Count() int

	// Create returns a DuplicateKeyError if the ID is already taken.
	Create(customer Customer) (*Customer, error)

	// Update applies mutate to the stored customer and keeps the result only if mutate succeeds.
	// Returns a NotFoundError if no customer exists with the given ID.
	Update(id int, mutate func(*Customer) error) (*Customer, error)

	// DeleteByID returns a NotFoundError if no customer exists with the given ID.
	DeleteByID(id int) error
}
