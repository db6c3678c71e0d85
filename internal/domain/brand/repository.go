package brand

import (
	"context"
)

// Repository defines the persistence operations for brands.
type Repository interface {
	// Create persists a new brand
	Create(ctx context.Context, b *Brand) error

	// FindByID returns a brand by id, active or not
	FindByID(ctx context.Context, id string) (*Brand, error)

	// List returns all active brands sorted by name
	List(ctx context.Context) ([]*Brand, error)

	// Update persists changes to an existing brand
	Update(ctx context.Context, b *Brand) error

	// Delete soft-deletes a brand (flips the active flag)
	Delete(ctx context.Context, id string) error

	// Exists reports whether a brand with the given id exists
	Exists(ctx context.Context, id string) (bool, error)
}
