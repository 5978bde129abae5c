package app

import (
	"fmt"

	customerservice "github.com/abgdnv/storefront/internal/customer/service"
	productservice "github.com/abgdnv/storefront/internal/product/service"
	"github.com/shopspring/decimal"
)

var sampleProducts = []productservice.ProductCreateDto{
	{ID: 1, Name: "Laptop HP", Description: "15 inch laptop, 8GB RAM", Price: decimal.RequireFromString("599.99"), Stock: 10},
	{ID: 2, Name: "Wireless Mouse", Description: "Ergonomic Logitech mouse", Price: decimal.RequireFromString("25.50"), Stock: 50},
	{ID: 3, Name: "Mechanical Keyboard", Description: "RGB gaming keyboard", Price: decimal.RequireFromString("89.99"), Stock: 25},
}

var sampleCustomers = []customerservice.CustomerCreateDto{
	{ID: 1, Name: "Juan Perez", Email: "juan@email.com", Address: "Calle 123, Ciudad"},
	{ID: 2, Name: "Maria Garcia", Email: "maria@email.com", Address: "Av. Principal 456"},
}

// Seed loads the sample products and customers through the regular create path.
func Seed(deps *Dependencies) error {
	for _, p := range sampleProducts {
		if _, err := deps.ProductService.Create(p); err != nil {
			return fmt.Errorf("seed product %d: %w", p.ID, err)
		}
	}
	for _, c := range sampleCustomers {
		if _, err := deps.CustomerService.Create(c); err != nil {
			return fmt.Errorf("seed customer %d: %w", c.ID, err)
		}
	}
	deps.Logger.Info("Sample data loaded", "products", len(sampleProducts), "customers", len(sampleCustomers))
	return nil
}
