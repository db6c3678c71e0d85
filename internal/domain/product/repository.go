package product

import (
	"context"
)

// Filter narrows the product listing. Zero values mean "no filter".
// Search matches name, urdu name and barcode, case-insensitively.
type Filter struct {
	CategoryID    string
	SubcategoryID string
	BrandID       string
	Search        string
}

// Repository defines the persistence operations for products.
type Repository interface {
	// Create persists a new product
	Create(ctx context.Context, p *Product) error

	// FindByID returns a product by id, active or not
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByBarcode returns an active product by its barcode
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// List returns active products matching the filter, sorted by name
	List(ctx context.Context, f Filter) ([]*Product, error)

	// Update persists changes to an existing product
	Update(ctx context.Context, p *Product) error

	// Delete soft-deletes a product (flips the active flag)
	Delete(ctx context.Context, id string) error

	// UpdateStock sets the absolute stock quantity of a product
	UpdateStock(ctx context.Context, id string, stock int) (*Product, error)
}
