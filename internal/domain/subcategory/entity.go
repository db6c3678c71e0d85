package subcategory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyNameUrdu = errors.New("urdu name cannot be empty")
	ErrEmptyCategory = errors.New("category is required")
)

// Subcategory is a second-level catalog grouping under a category.
type Subcategory struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	NameUrdu   string    `json:"nameUrdu"`
	CategoryID string    `json:"category"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Display fields resolved from the parent category on reads.
	CategoryName     string `json:"-"`
	CategoryNameUrdu string `json:"-"`
}

// NewSubcategory creates an active subcategory with a fresh id.
func NewSubcategory(name, nameUrdu, categoryID string) (*Subcategory, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if nameUrdu == "" {
		return nil, ErrEmptyNameUrdu
	}
	if categoryID == "" {
		return nil, ErrEmptyCategory
	}

	now := time.Now()
	return &Subcategory{
		ID:         uuid.New().String(),
		Name:       name,
		NameUrdu:   nameUrdu,
		CategoryID: categoryID,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update replaces the editable fields.
func (s *Subcategory) Update(name, nameUrdu, categoryID string, isActive bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if nameUrdu == "" {
		return ErrEmptyNameUrdu
	}
	if categoryID == "" {
		return ErrEmptyCategory
	}

	s.Name = name
	s.NameUrdu = nameUrdu
	s.CategoryID = categoryID
	s.IsActive = isActive
	s.UpdatedAt = time.Now()
	return nil
}

// Deactivate soft-deletes the subcategory.
func (s *Subcategory) Deactivate() {
	s.IsActive = false
	s.UpdatedAt = time.Now()
}
