// Package service provides the customer directory: validation and CRUD over a CustomerStore.
package service

import (
	"fmt"

	"github.com/abgdnv/storefront/internal/customer/store"
	"github.com/abgdnv/storefront/internal/platform/validation"
)

// CustomerService defines the methods for managing customers.
type CustomerService interface {
	// Create validates and adds a new customer.
	// Returns a ValidationError for a blank name, an email without "@" or a blank address,
	// and a DuplicateKeyError if the ID is already taken.
	Create(customer CustomerCreateDto) (*CustomerDto, error)

	// List returns all customers in creation order.
	List() ([]CustomerDto, error)

	Count() int

	// FindByID returns a NotFoundError if no customer exists with the given ID.
	FindByID(id int) (*CustomerDto, error)

	// Update overwrites name, email and address of an existing customer.
	// Returns a NotFoundError if no customer exists with the given ID,
	// and a ValidationError for an email without "@".
	Update(id int, customer CustomerUpdateDto) (*CustomerDto, error)

	// Delete returns a NotFoundError if no customer exists with the given ID.
	Delete(id int) error
}

type Service struct {
	repository store.CustomerStore
	validator  *validation.Validator
}

func NewService(repo store.CustomerStore) *Service {
	return &Service{
		repository: repo,
		validator:  validation.New(),
	}
}

// CustomerCreateDto represents the data transfer object for registering a customer.
type CustomerCreateDto struct {
	ID      int    `json:"id"`
	Name    string `json:"name"    validate:"notblank"`
	Email   string `json:"email"   validate:"contains=@"`
	Address string `json:"address" validate:"notblank"`
}

// CustomerUpdateDto represents the data transfer object for updating a customer.
// Only the email is checked on update.
type CustomerUpdateDto struct {
	Name    string `json:"name"`
	Email   string `json:"email"   validate:"contains=@"`
	Address string `json:"address"`
}

type CustomerDto struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (s *Service) Create(customer CustomerCreateDto) (*CustomerDto, error) {
	if err := s.validator.Struct(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	created, err := s.repository.Create(store.Customer{
		ID:      customer.ID,
		Name:    customer.Name,
		Email:   customer.Email,
		Address: customer.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return toDto(created), nil
}

func (s *Service) List() ([]CustomerDto, error) {
	customers, err := s.repository.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}
	customerDTOs := make([]CustomerDto, len(customers))
	for i, item := range customers {
		customerDTOs[i] = *toDto(&item)
	}
	return customerDTOs, nil
}

func (s *Service) Count() int {
	return s.repository.Count()
}

func (s *Service) FindByID(id int) (*CustomerDto, error) {
	customer, err := s.repository.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer by ID %d: %w", id, err)
	}
	return toDto(customer), nil
}

func (s *Service) Update(id int, customer CustomerUpdateDto) (*CustomerDto, error) {
	updated, err := s.repository.Update(id, func(c *store.Customer) error {
		if err := s.validator.Struct(customer); err != nil {
			return err
		}
		c.Name = customer.Name
		c.Email = customer.Email
		c.Address = customer.Address
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update customer with ID %d: %w", id, err)
	}
	return toDto(updated), nil
}

func (s *Service) Delete(id int) error {
	if err := s.repository.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete customer with ID %d: %w", id, err)
	}
	return nil
}

func toDto(customer *store.Customer) *CustomerDto {
	return &CustomerDto{
		ID:      customer.ID,
		Name:    customer.Name,
		Email:   customer.Email,
		Address: customer.Address,
	}
}
