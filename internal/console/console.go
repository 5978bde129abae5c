// Package console implements the text-menu driver over the product catalog and the customer directory.
//
// The driver owns all presentation: it parses typed fields from free-text input, re-prompts
// on malformed numbers, and renders records and service errors. Services never print.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	customerservice "github.com/abgdnv/storefront/internal/customer/service"
	apperrors "github.com/abgdnv/storefront/internal/errors"
	productservice "github.com/abgdnv/storefront/internal/product/service"
	"github.com/shopspring/decimal"
)

// Console reads commands from in and writes results to out.
type Console struct {
	products  productservice.ProductService
	customers customerservice.CustomerService
	in        *bufio.Scanner
	out       io.Writer
	logger    *slog.Logger

	// set by Run
	ctx   context.Context
	lines <-chan inputLine
}

type inputLine struct {
	text string
	err  error
}

// New creates a Console over the given services.
func New(products productservice.ProductService, customers customerservice.CustomerService, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	return &Console{
		products:  products,
		customers: customers,
		in:        bufio.NewScanner(in),
		out:       out,
		logger:    logger.With("component", "console"),
	}
}

// Run shows the main menu until the user exits, the input ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.ctx = ctx
	c.lines = c.scan(ctx)

	c.println("+------------------------------------+")
	c.println("|   STOREFRONT - RECORD MANAGEMENT   |")
	c.println("+------------------------------------+")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.println("")
		c.println("=== MAIN MENU ===")
		c.println("1. Manage products")
		c.println("2. Manage customers")
		c.println("3. Exit")
		option, err := c.readInt("Select option: ")
		if err != nil {
			return endOfInput(err)
		}

		switch option {
		case 1:
			err = c.productMenu()
		case 2:
			err = c.customerMenu()
		case 3:
			c.println("Goodbye!")
			return nil
		default:
			c.println("Invalid option")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func (c *Console) productMenu() error {
	c.println("")
	c.println("=== PRODUCTS ===")
	c.println("1. Create product")
	c.println("2. List products")
	c.println("3. Update product")
	c.println("4. Delete product")
	c.println("5. Find product by ID")
	option, err := c.readInt("Option: ")
	if err != nil {
		return err
	}

	switch option {
	case 1:
		return c.createProduct()
	case 2:
		c.listProducts()
	case 3:
		return c.updateProduct()
	case 4:
		return c.deleteProduct()
	case 5:
		return c.findProduct()
	default:
		c.println("Invalid option")
	}
	return nil
}

func (c *Console) customerMenu() error {
	c.println("")
	c.println("=== CUSTOMERS ===")
	c.println("1. Create customer")
	c.println("2. List customers")
	c.println("3. Update customer")
	c.println("4. Delete customer")
	c.println("5. Find customer by ID")
	option, err := c.readInt("Option: ")
	if err != nil {
		return err
	}

	switch option {
	case 1:
		return c.createCustomer()
	case 2:
		c.listCustomers()
	case 3:
		return c.updateCustomer()
	case 4:
		return c.deleteCustomer()
	case 5:
		return c.findCustomer()
	default:
		c.println("Invalid option")
	}
	return nil
}

func (c *Console) createProduct() error {
	var p productservice.ProductCreateDto
	var err error
	if p.ID, err = c.readInt("ID: "); err != nil {
		return err
	}
	if p.Name, err = c.readLine("Name: "); err != nil {
		return err
	}
	if p.Description, err = c.readLine("Description: "); err != nil {
		return err
	}
	if p.Price, err = c.readPrice("Price: "); err != nil {
		return err
	}
	if p.Stock, err = c.readInt("Stock: "); err != nil {
		return err
	}

	if _, err := c.products.Create(p); err != nil {
		c.reportError("create product", err)
		return nil
	}
	c.println("OK: product created")
	return nil
}

func (c *Console) listProducts() {
	list, err := c.products.List()
	if err != nil {
		c.reportError("list products", err)
		return
	}
	if len(list) == 0 {
		c.println("No products registered")
		return
	}
	c.println("")
	c.println("=== PRODUCT LIST ===")
	for _, p := range list {
		c.println(formatProduct(p))
	}
	c.printf("Total products: %d\n", len(list))
}

func (c *Console) updateProduct() error {
	id, err := c.readInt("ID of the product to update: ")
	if err != nil {
		return err
	}
	var p productservice.ProductUpdateDto
	if p.Name, err = c.readLine("New name: "); err != nil {
		return err
	}
	if p.Description, err = c.readLine("New description: "); err != nil {
		return err
	}
	if p.Price, err = c.readPrice("New price: "); err != nil {
		return err
	}
	if p.Stock, err = c.readInt("New stock: "); err != nil {
		return err
	}

	if _, err := c.products.Update(id, p); err != nil {
		c.reportError("update product", err)
		return nil
	}
	c.println("OK: product updated")
	return nil
}

func (c *Console) deleteProduct() error {
	id, err := c.readInt("ID of the product to delete: ")
	if err != nil {
		return err
	}
	if err := c.products.Delete(id); err != nil {
		c.reportError("delete product", err)
		return nil
	}
	c.println("OK: product deleted")
	return nil
}

func (c *Console) findProduct() error {
	id, err := c.readInt("Product ID: ")
	if err != nil {
		return err
	}
	p, err := c.products.FindByID(id)
	if err != nil {
		c.reportError("find product", err)
		return nil
	}
	c.println(formatProduct(*p))
	return nil
}

func (c *Console) createCustomer() error {
	var cu customerservice.CustomerCreateDto
	var err error
	if cu.ID, err = c.readInt("ID: "); err != nil {
		return err
	}
	if cu.Name, err = c.readLine("Name: "); err != nil {
		return err
	}
	if cu.Email, err = c.readLine("Email: "); err != nil {
		return err
	}
	if cu.Address, err = c.readLine("Address: "); err != nil {
		return err
	}

	if _, err := c.customers.Create(cu); err != nil {
		c.reportError("create customer", err)
		return nil
	}
	c.println("OK: customer created")
	return nil
}

func (c *Console) listCustomers() {
	list, err := c.customers.List()
	if err != nil {
		c.reportError("list customers", err)
		return
	}
	if len(list) == 0 {
		c.println("No customers registered")
		return
	}
	c.println("")
	c.println("=== CUSTOMER LIST ===")
	for _, cu := range list {
		c.println(formatCustomer(cu))
	}
	c.printf("Total customers: %d\n", len(list))
}

func (c *Console) updateCustomer() error {
	id, err := c.readInt("ID of the customer to update: ")
	if err != nil {
		return err
	}
	var cu customerservice.CustomerUpdateDto
	if cu.Name, err = c.readLine("New name: "); err != nil {
		return err
	}
	if cu.Email, err = c.readLine("New email: "); err != nil {
		return err
	}
	if cu.Address, err = c.readLine("New address: "); err != nil {
		return err
	}

	if _, err := c.customers.Update(id, cu); err != nil {
		c.reportError("update customer", err)
		return nil
	}
	c.println("OK: customer updated")
	return nil
}

func (c *Console) deleteCustomer() error {
	id, err := c.readInt("ID of the customer to delete: ")
	if err != nil {
		return err
	}
	if err := c.customers.Delete(id); err != nil {
		c.reportError("delete customer", err)
		return nil
	}
	c.println("OK: customer deleted")
	return nil
}

func (c *Console) findCustomer() error {
	id, err := c.readInt("Customer ID: ")
	if err != nil {
		return err
	}
	cu, err := c.customers.FindByID(id)
	if err != nil {
		c.reportError("find customer", err)
		return nil
	}
	c.println(formatCustomer(*cu))
	return nil
}

// reportError prints a user-facing message for err and logs it.
func (c *Console) reportError(action string, err error) {
	c.logger.Debug("Operation rejected", "action", action, "error", err)
	c.println("ERROR: " + describe(err))
}

// describe strips the service wrapping and keeps the message of the typed error.
func describe(err error) string {
	var vErr *apperrors.ValidationError
	var dupErr *apperrors.DuplicateKeyError
	var nfErr *apperrors.NotFoundError
	switch {
	case errors.As(err, &vErr):
		return vErr.Error()
	case errors.As(err, &dupErr):
		return dupErr.Error()
	case errors.As(err, &nfErr):
		return nfErr.Error()
	default:
		return err.Error()
	}
}

func formatProduct(p productservice.ProductDto) string {
	return fmt.Sprintf("ID: %d | Name: %s | Price: $%s | Stock: %d | Desc: %s",
		p.ID, p.Name, p.Price.StringFixed(2), p.Stock, p.Description)
}

func formatCustomer(cu customerservice.CustomerDto) string {
	return fmt.Sprintf("ID: %d | Name: %s | Email: %s | Address: %s",
		cu.ID, cu.Name, cu.Email, cu.Address)
}

// scan feeds input lines to the returned channel so that a blocked read does not hold up cancellation.
func (c *Console) scan(ctx context.Context) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		for c.in.Scan() {
			select {
			case lines <- inputLine{text: c.in.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := c.in.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return lines
}

// readLine prompts and returns the next input line without its trailing newline.
func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	select {
	case <-c.ctx.Done():
		return "", c.ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimRight(l.text, "\r"), nil
	}
}

// readInt prompts until the line parses as an integer.
func (c *Console) readInt(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		c.println("Invalid number, try again")
	}
}

// readPrice prompts until the line parses as a decimal number.
func (c *Console) readPrice(prompt string) (decimal.Decimal, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(strings.TrimSpace(line))
		if err == nil {
			return d, nil
		}
		c.println("Invalid price, try again")
	}
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// endOfInput treats a closed input as a normal end of session.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
