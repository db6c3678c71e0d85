package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyNameUrdu = errors.New("urdu name cannot be empty")
)

// Category is a top-level catalog grouping. Deleting a category only
// deactivates it; products keep their reference.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NameUrdu    string    `json:"nameUrdu"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCategory creates an active category with a fresh id.
func NewCategory(name, nameUrdu, description string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if nameUrdu == "" {
		return nil, ErrEmptyNameUrdu
	}

	now := time.Now()
	return &Category{
		ID:          uuid.New().String(),
		Name:        name,
		NameUrdu:    nameUrdu,
		Description: description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update replaces the editable fields.
func (c *Category) Update(name, nameUrdu, description string, isActive bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if nameUrdu == "" {
		return ErrEmptyNameUrdu
	}

	c.Name = name
	c.NameUrdu = nameUrdu
	c.Description = description
	c.IsActive = isActive
	c.UpdatedAt = time.Now()
	return nil
}

// Deactivate soft-deletes the category.
func (c *Category) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}
