package dto

import (
	"time"

	"github.com/likeam/mernpos/internal/domain/product"
)

// ProductRequest is the create/update payload for products.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	NameUrdu    string  `json:"nameUrdu" binding:"required"`
	Barcode     string  `json:"barcode"`
	Price       float64 `json:"price"`
	CostPrice   float64 `json:"costPrice"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category" binding:"required"`
	Subcategory string  `json:"subcategory"`
	Brand       string  `json:"brand"`
	Unit        string  `json:"unit"`
	IsActive    *bool   `json:"isActive"`
}

// Active returns the requested active flag, defaulting to true.
func (r ProductRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

// StockRequest is the payload for the absolute stock correction.
type StockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// ProductResponse is the product view returned by the API, with the
// referenced catalog rows populated for display.
type ProductResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	NameUrdu    string       `json:"nameUrdu"`
	Barcode     string       `json:"barcode,omitempty"`
	Price       float64      `json:"price"`
	CostPrice   float64      `json:"costPrice,omitempty"`
	Stock       int          `json:"stock"`
	Category    *RefResponse `json:"category"`
	Subcategory *RefResponse `json:"subcategory,omitempty"`
	Brand       *RefResponse `json:"brand,omitempty"`
	Unit        string       `json:"unit"`
	IsActive    bool         `json:"isActive"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// ProductListResponse wraps a product listing with its count.
type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Count int               `json:"count"`
}

// ToProductResponse converts a domain product to its DTO.
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		NameUrdu:    p.NameUrdu,
		Barcode:     p.Barcode,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		Stock:       p.Stock,
		Category:    toRef(p.CategoryID, p.CategoryName, p.CategoryNameUrdu),
		Subcategory: toRef(p.SubcategoryID, p.SubcategoryName, p.SubcategoryNameUrdu),
		Brand:       toRef(p.BrandID, p.BrandName, p.BrandNameUrdu),
		Unit:        string(p.Unit),
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductListResponse converts a product slice to the list DTO.
func ToProductListResponse(products []*product.Product) ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = ToProductResponse(p)
	}
	return ProductListResponse{Data: items, Count: len(items)}
}
