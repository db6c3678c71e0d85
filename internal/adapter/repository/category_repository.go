package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/likeam/mernpos/internal/domain/category"
)

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryDuplicateKey = errors.New("category already exists")
)

// CategoryRepository implements category.Repository on PostgreSQL.
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *pgxpool.Pool) category.Repository {
	return &CategoryRepository{db: db}
}

// Create implements category.Repository.Create.
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO categories (id, name, name_urdu, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.NameUrdu, c.Description, c.IsActive, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCategoryDuplicateKey
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// FindByID implements category.Repository.FindByID. Inactive categories
// remain resolvable by id.
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*category.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrCategoryNotFound
	}

	var c category.Category
	err := r.db.QueryRow(ctx,
		`SELECT id, name, name_urdu, COALESCE(description, ''), is_active, created_at, updated_at
		 FROM categories WHERE id = $1`,
		id).Scan(&c.ID, &c.Name, &c.NameUrdu, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &c, nil
}

// List implements category.Repository.List.
func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, name_urdu, COALESCE(description, ''), is_active, created_at, updated_at
		 FROM categories WHERE is_active = TRUE ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.NameUrdu, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

// Update implements category.Repository.Update.
func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $2, name_urdu = $3, description = $4, is_active = $5, updated_at = $6
		 WHERE id = $1`,
		c.ID, c.Name, c.NameUrdu, c.Description, c.IsActive, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete implements category.Repository.Delete as a soft delete.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrCategoryNotFound
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE categories SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Exists implements category.Repository.Exists.
func (r *CategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return exists, nil
}
