package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/likeam/mernpos/internal/domain/subcategory"
)

var ErrSubcategoryNotFound = errors.New("subcategory not found")

// SubcategoryRepository implements subcategory.Repository on PostgreSQL.
type SubcategoryRepository struct {
	db *pgxpool.Pool
}

// NewSubcategoryRepository creates a new SubcategoryRepository.
func NewSubcategoryRepository(db *pgxpool.Pool) subcategory.Repository {
	return &SubcategoryRepository{db: db}
}

const subcategorySelect = `
	SELECT s.id, s.name, s.name_urdu, s.category_id, s.is_active, s.created_at, s.updated_at,
	       COALESCE(c.name, ''), COALESCE(c.name_urdu, '')
	FROM subcategories s
	LEFT JOIN categories c ON c.id = s.category_id`

// Create implements subcategory.Repository.Create.
func (r *SubcategoryRepository) Create(ctx context.Context, s *subcategory.Subcategory) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO subcategories (id, name, name_urdu, category_id, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Name, s.NameUrdu, s.CategoryID, s.IsActive, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create subcategory: %w", err)
	}
	return nil
}

// FindByID implements subcategory.Repository.FindByID. Inactive
// subcategories remain resolvable by id.
func (r *SubcategoryRepository) FindByID(ctx context.Context, id string) (*subcategory.Subcategory, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSubcategoryNotFound
	}

	var s subcategory.Subcategory
	err := r.db.QueryRow(ctx, subcategorySelect+` WHERE s.id = $1`, id).Scan(
		&s.ID, &s.Name, &s.NameUrdu, &s.CategoryID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		&s.CategoryName, &s.CategoryNameUrdu)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, fmt.Errorf("failed to find subcategory: %w", err)
	}
	return &s, nil
}

// List implements subcategory.Repository.List.
func (r *SubcategoryRepository) List(ctx context.Context) ([]*subcategory.Subcategory, error) {
	rows, err := r.db.Query(ctx, subcategorySelect+` WHERE s.is_active = TRUE ORDER BY s.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	defer rows.Close()

	return scanSubcategoryRows(rows)
}

// ListByCategory implements subcategory.Repository.ListByCategory.
func (r *SubcategoryRepository) ListByCategory(ctx context.Context, categoryID string) ([]*subcategory.Subcategory, error) {
	if _, err := uuid.Parse(categoryID); err != nil {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		subcategorySelect+` WHERE s.category_id = $1 AND s.is_active = TRUE ORDER BY s.name ASC`,
		categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories by category: %w", err)
	}
	defer rows.Close()

	return scanSubcategoryRows(rows)
}

// Update implements subcategory.Repository.Update.
func (r *SubcategoryRepository) Update(ctx context.Context, s *subcategory.Subcategory) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE subcategories SET name = $2, name_urdu = $3, category_id = $4, is_active = $5, updated_at = $6
		 WHERE id = $1`,
		s.ID, s.Name, s.NameUrdu, s.CategoryID, s.IsActive, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update subcategory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSubcategoryNotFound
	}
	return nil
}

// Delete implements subcategory.Repository.Delete as a soft delete.
func (r *SubcategoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrSubcategoryNotFound
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE subcategories SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subcategory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSubcategoryNotFound
	}
	return nil
}

// Exists implements subcategory.Repository.Exists.
func (r *SubcategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM subcategories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check subcategory existence: %w", err)
	}
	return exists, nil
}

func scanSubcategoryRows(rows pgx.Rows) ([]*subcategory.Subcategory, error) {
	var subcategories []*subcategory.Subcategory
	for rows.Next() {
		var s subcategory.Subcategory
		if err := rows.Scan(
			&s.ID, &s.Name, &s.NameUrdu, &s.CategoryID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
			&s.CategoryName, &s.CategoryNameUrdu); err != nil {
			return nil, fmt.Errorf("failed to scan subcategory: %w", err)
		}
		subcategories = append(subcategories, &s)
	}
	return subcategories, rows.Err()
}
