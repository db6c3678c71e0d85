package dto

import (
	"time"

	"github.com/likeam/mernpos/internal/domain/subcategory"
)

// SubcategoryRequest is the create/update payload for subcategories.
type SubcategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	NameUrdu string `json:"nameUrdu" binding:"required"`
	Category string `json:"category" binding:"required"`
	IsActive *bool  `json:"isActive"`
}

// Active returns the requested active flag, defaulting to true.
func (r SubcategoryRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

// SubcategoryResponse is the subcategory view returned by the API, with
// the parent category populated for display.
type SubcategoryResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	NameUrdu  string       `json:"nameUrdu"`
	Category  *RefResponse `json:"category"`
	IsActive  bool         `json:"isActive"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// SubcategoryListResponse wraps a subcategory listing with its count.
type SubcategoryListResponse struct {
	Data  []SubcategoryResponse `json:"data"`
	Count int                   `json:"count"`
}

// ToSubcategoryResponse converts a domain subcategory to its DTO.
func ToSubcategoryResponse(s *subcategory.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:        s.ID,
		Name:      s.Name,
		NameUrdu:  s.NameUrdu,
		Category:  toRef(s.CategoryID, s.CategoryName, s.CategoryNameUrdu),
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSubcategoryListResponse converts a subcategory slice to the list DTO.
func ToSubcategoryListResponse(subcategories []*subcategory.Subcategory) SubcategoryListResponse {
	items := make([]SubcategoryResponse, len(subcategories))
	for i, s := range subcategories {
		items[i] = ToSubcategoryResponse(s)
	}
	return SubcategoryListResponse{Data: items, Count: len(items)}
}
