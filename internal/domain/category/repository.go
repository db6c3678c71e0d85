package category

import (
	"context"
)

// Repository defines the persistence operations for categories.
type Repository interface {
	// Create persists a new category
	Create(ctx context.Context, c *Category) error

	// FindByID returns a category by id, active or not
	FindByID(ctx context.Context, id string) (*Category, error)

	// List returns all active categories sorted by name
	List(ctx context.Context) ([]*Category, error)

	// Update persists changes to an existing category
	Update(ctx context.Context, c *Category) error

	// Delete soft-deletes a category (flips the active flag)
	Delete(ctx context.Context, id string) error

	// Exists reports whether a category with the given id exists
	Exists(ctx context.Context, id string) (bool, error)
}
