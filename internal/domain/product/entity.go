package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyNameUrdu = errors.New("urdu name cannot be empty")
	ErrEmptyCategory = errors.New("category is required")
	ErrInvalidPrice  = errors.New("price cannot be negative")
	ErrInvalidStock  = errors.New("stock cannot be negative")
	ErrInvalidUnit   = errors.New("invalid unit")
)

// Unit is the sale unit of a product.
type Unit string

const (
	UnitPiece      Unit = "piece"
	UnitKilogram   Unit = "kilogram"
	UnitGram       Unit = "gram"
	UnitLiter      Unit = "liter"
	UnitMilliliter Unit = "milliliter"
	UnitPack       Unit = "pack"
	UnitBox        Unit = "box"
)

// IsValid reports whether u is one of the known units.
func (u Unit) IsValid() bool {
	switch u {
	case UnitPiece, UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitPack, UnitBox:
		return true
	}
	return false
}

// Product is a catalog item. Stock is an integer quantity on hand and is
// never allowed to go negative.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	NameUrdu      string    `json:"nameUrdu"`
	Barcode       string    `json:"barcode,omitempty"`
	Price         float64   `json:"price"`
	CostPrice     float64   `json:"costPrice,omitempty"`
	Stock         int       `json:"stock"`
	CategoryID    string    `json:"category"`
	SubcategoryID string    `json:"subcategory,omitempty"`
	BrandID       string    `json:"brand,omitempty"`
	Unit          Unit      `json:"unit"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Display fields resolved from the referenced rows on reads.
	CategoryName        string `json:"-"`
	CategoryNameUrdu    string `json:"-"`
	SubcategoryName     string `json:"-"`
	SubcategoryNameUrdu string `json:"-"`
	BrandName           string `json:"-"`
	BrandNameUrdu       string `json:"-"`
}

// NewProduct creates an active product with a fresh id. An empty unit
// defaults to piece.
func NewProduct(name, nameUrdu, barcode string, price, costPrice float64, stock int, categoryID, subcategoryID, brandID string, unit Unit) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if nameUrdu == "" {
		return nil, ErrEmptyNameUrdu
	}
	if categoryID == "" {
		return nil, ErrEmptyCategory
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	if unit == "" {
		unit = UnitPiece
	}
	if !unit.IsValid() {
		return nil, ErrInvalidUnit
	}

	now := time.Now()
	return &Product{
		ID:            uuid.New().String(),
		Name:          name,
		NameUrdu:      nameUrdu,
		Barcode:       barcode,
		Price:         price,
		CostPrice:     costPrice,
		Stock:         stock,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		BrandID:       brandID,
		Unit:          unit,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Update replaces the editable fields.
func (p *Product) Update(name, nameUrdu, barcode string, price, costPrice float64, stock int, categoryID, subcategoryID, brandID string, unit Unit, isActive bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if nameUrdu == "" {
		return ErrEmptyNameUrdu
	}
	if categoryID == "" {
		return ErrEmptyCategory
	}
	if price < 0 {
		return ErrInvalidPrice
	}
	if stock < 0 {
		return ErrInvalidStock
	}
	if unit == "" {
		unit = UnitPiece
	}
	if !unit.IsValid() {
		return ErrInvalidUnit
	}

	p.Name = name
	p.NameUrdu = nameUrdu
	p.Barcode = barcode
	p.Price = price
	p.CostPrice = costPrice
	p.Stock = stock
	p.CategoryID = categoryID
	p.SubcategoryID = subcategoryID
	p.BrandID = brandID
	p.Unit = unit
	p.IsActive = isActive
	p.UpdatedAt = time.Now()
	return nil
}

// SetStock replaces the on-hand quantity (administrative correction).
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return ErrInvalidStock
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	return nil
}

// Deactivate soft-deletes the product. It stays resolvable by id and, by
// default policy, purchasable through checkout.
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
}
