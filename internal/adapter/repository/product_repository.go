package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/likeam/mernpos/internal/domain/product"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductDuplicateKey = errors.New("product with same barcode already exists")
)

// ProductRepository implements product.Repository on PostgreSQL.
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{db: db}
}

const productSelect = `
	SELECT p.id, p.name, p.name_urdu, COALESCE(p.barcode, ''), p.price, COALESCE(p.cost_price, 0),
	       p.stock, p.category_id, COALESCE(p.subcategory_id::text, ''), COALESCE(p.brand_id::text, ''),
	       p.unit, p.is_active, p.created_at, p.updated_at,
	       COALESCE(c.name, ''), COALESCE(c.name_urdu, ''),
	       COALESCE(s.name, ''), COALESCE(s.name_urdu, ''),
	       COALESCE(b.name, ''), COALESCE(b.name_urdu, '')
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN subcategories s ON s.id = p.subcategory_id
	LEFT JOIN brands b ON b.id = p.brand_id`

// Create implements product.Repository.Create.
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (id, name, name_urdu, barcode, price, cost_price, stock,
		                       category_id, subcategory_id, brand_id, unit, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, NULLIF($9, '')::uuid, NULLIF($10, '')::uuid, $11, $12, $13, $14)`,
		p.ID, p.Name, p.NameUrdu, p.Barcode, p.Price, p.CostPrice, p.Stock,
		p.CategoryID, p.SubcategoryID, p.BrandID, string(p.Unit), p.IsActive, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID implements product.Repository.FindByID. Inactive products
// remain resolvable by id.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrProductNotFound
	}

	row := r.db.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return p, nil
}

// FindByBarcode implements product.Repository.FindByBarcode.
func (r *ProductRepository) FindByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	row := r.db.QueryRow(ctx, productSelect+` WHERE p.barcode = $1 AND p.is_active = TRUE`, barcode)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by barcode: %w", err)
	}
	return p, nil
}

// List implements product.Repository.List. Only active products are
// returned; the filters narrow by reference ids and free-text search.
func (r *ProductRepository) List(ctx context.Context, f product.Filter) ([]*product.Product, error) {
	query := productSelect + ` WHERE p.is_active = TRUE`
	var args []interface{}

	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		query += fmt.Sprintf(" AND p.category_id = $%d", len(args))
	}
	if f.SubcategoryID != "" {
		args = append(args, f.SubcategoryID)
		query += fmt.Sprintf(" AND p.subcategory_id = $%d", len(args))
	}
	if f.BrandID != "" {
		args = append(args, f.BrandID)
		query += fmt.Sprintf(" AND p.brand_id = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.name_urdu ILIKE $%d OR p.barcode ILIKE $%d)", n, n, n)
	}
	query += " ORDER BY p.name ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Update implements product.Repository.Update.
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET name = $2, name_urdu = $3, barcode = NULLIF($4, ''), price = $5,
		        cost_price = $6, stock = $7, category_id = $8, subcategory_id = NULLIF($9, '')::uuid,
		        brand_id = NULLIF($10, '')::uuid, unit = $11, is_active = $12, updated_at = $13
		 WHERE id = $1`,
		p.ID, p.Name, p.NameUrdu, p.Barcode, p.Price, p.CostPrice, p.Stock,
		p.CategoryID, p.SubcategoryID, p.BrandID, string(p.Unit), p.IsActive, p.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete implements product.Repository.Delete as a soft delete.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrProductNotFound
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE products SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// UpdateStock implements product.Repository.UpdateStock: an absolute set,
// range-checked by the caller and by the stock >= 0 constraint.
func (r *ProductRepository) UpdateStock(ctx context.Context, id string, stock int) (*product.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrProductNotFound
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE products SET stock = $2, updated_at = NOW() WHERE id = $1`, id, stock)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrProductNotFound
	}
	return r.FindByID(ctx, id)
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	var unit string
	if err := row.Scan(
		&p.ID, &p.Name, &p.NameUrdu, &p.Barcode, &p.Price, &p.CostPrice,
		&p.Stock, &p.CategoryID, &p.SubcategoryID, &p.BrandID,
		&unit, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		&p.CategoryName, &p.CategoryNameUrdu,
		&p.SubcategoryName, &p.SubcategoryNameUrdu,
		&p.BrandName, &p.BrandNameUrdu); err != nil {
		return nil, err
	}
	p.Unit = product.Unit(unit)
	return &p, nil
}
