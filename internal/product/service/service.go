// Package service provides the product catalog: validation and CRUD over a ProductStore.
package service

import (
	"fmt"

	"github.com/abgdnv/storefront/internal/platform/validation"
	"github.com/abgdnv/storefront/internal/product/store"
	"github.com/shopspring/decimal"
)

// ProductService defines the methods for managing products.
type ProductService interface {
	// Create validates and adds a new product.
	// Returns a ValidationError for a blank name, a non-positive price or a negative stock,
	// and a DuplicateKeyError if the ID is already taken.
	Create(product ProductCreateDto) (*ProductDto, error)

	// List returns all products in creation order.
	// Returns an empty slice if no products exist.
	List() ([]ProductDto, error)

	// Count returns the number of products in the catalog.
	Count() int

	// FindByID retrieves a single product by its identifier.
	// Returns a NotFoundError if no product exists with the given ID.
	FindByID(id int) (*ProductDto, error)

	// Update overwrites name, description, price and stock of an existing product.
	// Returns a NotFoundError if no product exists with the given ID,
	// and a ValidationError for a non-positive price or a negative stock.
	Update(id int, product ProductUpdateDto) (*ProductDto, error)

	// Delete removes a product by its ID.
	// Returns a NotFoundError if no product exists with the given ID.
	Delete(id int) error
}

// Service implements ProductService.
type Service struct {
	repository store.ProductStore
	validator  *validation.Validator
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
		validator:  validation.New(),
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
// Description is stored as given.
type ProductCreateDto struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"        validate:"notblank"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"       validate:"gt=0"`
	Stock       int             `json:"stock"       validate:"gte=0"`
}

// ProductUpdateDto represents the data transfer object for updating a product.
// Name and description are not checked on update.
type ProductUpdateDto struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"       validate:"gt=0"`
	Stock       int             `json:"stock"       validate:"gte=0"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// Create validates the product and stores it.
func (s *Service) Create(product ProductCreateDto) (*ProductDto, error) {
	if err := s.validator.Struct(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	created, err := s.repository.Create(store.Product{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDto(created), nil
}

// List retrieves all products and returns them as ProductDTOs.
func (s *Service) List() ([]ProductDto, error) {
	products, err := s.repository.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))

	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}

	return productDTOs, nil
}

func (s *Service) Count() int {
	return s.repository.Count()
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(id int) (*ProductDto, error) {
	product, err := s.repository.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}

	return toDto(product), nil
}

// Update validates the new values against the stored product and applies them.
// The existence check runs before validation.
func (s *Service) Update(id int, product ProductUpdateDto) (*ProductDto, error) {
	updated, err := s.repository.Update(id, func(p *store.Product) error {
		if err := s.validator.Struct(product); err != nil {
			return err
		}
		p.Name = product.Name
		p.Description = product.Description
		p.Price = product.Price
		p.Stock = product.Stock
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}

	return toDto(updated), nil
}

// Delete deletes a product by its ID.
func (s *Service) Delete(id int) error {
	if err := s.repository.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}
	return nil
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
	}
}
