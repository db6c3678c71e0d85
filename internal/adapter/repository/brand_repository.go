package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/likeam/mernpos/internal/domain/brand"
)

var (
	ErrBrandNotFound     = errors.New("brand not found")
	ErrBrandDuplicateKey = errors.New("brand already exists")
)

// BrandRepository implements brand.Repository on PostgreSQL.
type BrandRepository struct {
	db *pgxpool.Pool
}

// NewBrandRepository creates a new BrandRepository.
func NewBrandRepository(db *pgxpool.Pool) brand.Repository {
	return &BrandRepository{db: db}
}

// Create implements brand.Repository.Create.
func (r *BrandRepository) Create(ctx context.Context, b *brand.Brand) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO brands (id, name, name_urdu, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.Name, b.NameUrdu, b.Description, b.IsActive, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrBrandDuplicateKey
		}
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

// FindByID implements brand.Repository.FindByID. Inactive brands remain
// resolvable by id.
func (r *BrandRepository) FindByID(ctx context.Context, id string) (*brand.Brand, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBrandNotFound
	}

	var b brand.Brand
	err := r.db.QueryRow(ctx,
		`SELECT id, name, name_urdu, COALESCE(description, ''), is_active, created_at, updated_at
		 FROM brands WHERE id = $1`,
		id).Scan(&b.ID, &b.Name, &b.NameUrdu, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to find brand: %w", err)
	}
	return &b, nil
}

// List implements brand.Repository.List.
func (r *BrandRepository) List(ctx context.Context) ([]*brand.Brand, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, name_urdu, COALESCE(description, ''), is_active, created_at, updated_at
		 FROM brands WHERE is_active = TRUE ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	var brands []*brand.Brand
	for rows.Next() {
		var b brand.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.NameUrdu, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, &b)
	}
	return brands, rows.Err()
}

// Update implements brand.Repository.Update.
func (r *BrandRepository) Update(ctx context.Context, b *brand.Brand) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE brands SET name = $2, name_urdu = $3, description = $4, is_active = $5, updated_at = $6
		 WHERE id = $1`,
		b.ID, b.Name, b.NameUrdu, b.Description, b.IsActive, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBrandNotFound
	}
	return nil
}

// Delete implements brand.Repository.Delete as a soft delete.
func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrBrandNotFound
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE brands SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBrandNotFound
	}
	return nil
}

// Exists implements brand.Repository.Exists.
func (r *BrandRepository) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM brands WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check brand existence: %w", err)
	}
	return exists, nil
}
