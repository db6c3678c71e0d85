package dto

import (
	"time"

	"github.com/likeam/mernpos/internal/domain/brand"
)

// BrandRequest is the create/update payload for brands.
type BrandRequest struct {
	Name        string `json:"name" binding:"required"`
	NameUrdu    string `json:"nameUrdu" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

// Active returns the requested active flag, defaulting to true.
func (r BrandRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

// BrandResponse is the brand view returned by the API.
type BrandResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NameUrdu    string    `json:"nameUrdu"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BrandListResponse wraps a brand listing with its count.
type BrandListResponse struct {
	Data  []BrandResponse `json:"data"`
	Count int             `json:"count"`
}

// ToBrandResponse converts a domain brand to its DTO.
func ToBrandResponse(b *brand.Brand) BrandResponse {
	return BrandResponse{
		ID:          b.ID,
		Name:        b.Name,
		NameUrdu:    b.NameUrdu,
		Description: b.Description,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// ToBrandListResponse converts a brand slice to the list DTO.
func ToBrandListResponse(brands []*brand.Brand) BrandListResponse {
	items := make([]BrandResponse, len(brands))
	for i, b := range brands {
		items[i] = ToBrandResponse(b)
	}
	return BrandListResponse{Data: items, Count: len(items)}
}
