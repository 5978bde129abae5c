package store

import "github.com/abgdnv/storefront/internal/platform/memstore"

// inMemory implements ProductStore on top of memstore.Store.
type inMemory struct {
	products *memstore.Store[Product]
}

// NewInMemoryStore creates a new, empty ProductStore.
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: memstore.New[Product](Entity),
	}
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(id int) (*Product, error) {
	p, err := s.products.Get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindAll retrieves all products.
func (s *inMemory) FindAll() ([]Product, error) {
	return s.products.All(), nil
}

func (s *inMemory) Count() int {
	return s.products.Len()
}

// Create stores product under its own ID.
func (s *inMemory) Create(product Product) (*Product, error) {
	if err := s.products.Insert(product.ID, product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update mutates the product with the given ID. The ID itself cannot be changed.
func (s *inMemory) Update(id int, mutate func(*Product) error) (*Product, error) {
	updated, err := s.products.Update(id, func(p *Product) error {
		if err := mutate(p); err != nil {
			return err
		}
		p.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteByID deletes a product by its ID.
func (s *inMemory) DeleteByID(id int) error {
	return s.products.Delete(id)
}
