package store

import "github.com/abgdnv/storefront/internal/platform/memstore"

type inMemory struct {
	customers *memstore.Store[Customer]
}

// NewInMemoryStore creates a new, empty CustomerStore.
func NewInMemoryStore() CustomerStore {
	return &inMemory{
		customers: memstore.New[Customer](Entity),
	}
}

func (s *inMemory) FindByID(id int) (*Customer, error) {
	c, err := s.customers.Get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *inMemory) FindAll() ([]Customer, error) {
	return s.customers.All(), nil
}

func (s *inMemory) Count() int {
	return s.customers.Len()
}

func (s *inMemory) Create(customer Customer) (*Customer, error) {
	if err := s.customers.Insert(customer.ID, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *inMemory) Update(id int, mutate func(*Customer) error) (*Customer, error) {
	updated, err := s.customers.Update(id, func(c *Customer) error {
		if err := mutate(c); err != nil {
			return err
		}
		c.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *inMemory) DeleteByID(id int) error {
	return s.customers.Delete(id)
}
