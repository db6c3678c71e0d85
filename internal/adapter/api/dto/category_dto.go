package dto

import (
	"time"

	"github.com/likeam/mernpos/internal/domain/category"
)

// CategoryRequest is the create/update payload for categories.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	NameUrdu    string `json:"nameUrdu" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

// Active returns the requested active flag, defaulting to true.
func (r CategoryRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

// CategoryResponse is the category view returned by the API.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NameUrdu    string    `json:"nameUrdu"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryListResponse wraps a category listing with its count.
type CategoryListResponse struct {
	Data  []CategoryResponse `json:"data"`
	Count int                `json:"count"`
}

// ToCategoryResponse converts a domain category to its DTO.
func ToCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		NameUrdu:    c.NameUrdu,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryListResponse converts a category slice to the list DTO.
func ToCategoryListResponse(categories []*category.Category) CategoryListResponse {
	items := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{Data: items, Count: len(items)}
}
