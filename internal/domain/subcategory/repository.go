package subcategory

import (
	"context"
)

// Repository defines the persistence operations for subcategories.
type Repository interface {
	// Create persists a new subcategory
	Create(ctx context.Context, s *Subcategory) error

	// FindByID returns a subcategory by id, active or not
	FindByID(ctx context.Context, id string) (*Subcategory, error)

	// List returns all active subcategories sorted by name
	List(ctx context.Context) ([]*Subcategory, error)

	// ListByCategory returns the active subcategories of a category
	ListByCategory(ctx context.Context, categoryID string) ([]*Subcategory, error)

	// Update persists changes to an existing subcategory
	Update(ctx context.Context, s *Subcategory) error

	// Delete soft-deletes a subcategory (flips the active flag)
	Delete(ctx context.Context, id string) error

	// Exists reports whether a subcategory with the given id exists
	Exists(ctx context.Context, id string) (bool, error)
}
