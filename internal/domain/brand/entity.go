package brand

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyNameUrdu = errors.New("urdu name cannot be empty")
)

// Brand is an optional manufacturer/label attached to products.
type Brand struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NameUrdu    string    `json:"nameUrdu"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewBrand creates an active brand with a fresh id.
func NewBrand(name, nameUrdu, description string) (*Brand, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if nameUrdu == "" {
		return nil, ErrEmptyNameUrdu
	}

	now := time.Now()
	return &Brand{
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
func (b *Brand) Update(name, nameUrdu, description string, isActive bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if nameUrdu == "" {
		return ErrEmptyNameUrdu
	}

	b.Name = name
	b.NameUrdu = nameUrdu
	b.Description = description
	b.IsActive = isActive
	b.UpdatedAt = time.Now()
	return nil
}

// Deactivate soft-deletes the brand.
func (b *Brand) Deactivate() {
	b.IsActive = false
	b.UpdatedAt = time.Now()
}
