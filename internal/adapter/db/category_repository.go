package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/caronvincent/todo-burbanie/internal/core/domain"
	"github.com/caronvincent/todo-burbanie/internal/core/ports"
)

const (
	insertCategoryQuery     = `INSERT INTO categories (name, description) VALUES (?, ?)`
	selectCategoryByIDQuery = `SELECT id, name, description FROM categories WHERE id = ?`
	countCategoryByIDQuery  = `SELECT COUNT(1) FROM categories WHERE id = ?`
	updateCategoryQuery     = `UPDATE categories SET name = ?, description = ? WHERE id = ?`
	deleteCategoryQuery     = `DELETE FROM categories WHERE id = ?`
)

type CategoryRepository struct {
	db *sqlx.DB
}

type categoryRow struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	result, err := r.db.ExecContext(ctx, insertCategoryQuery, category.Name, nullString(category.Description))
	if err != nil {
		return domain.Category{}, fmt.Errorf("insert category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Category{}, fmt.Errorf("insert category: %w", err)
	}
	category.ID = uint64(id)

	return category, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint64) (domain.Category, error) {
	var row categoryRow
	if err := r.db.GetContext(ctx, &row, selectCategoryByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, fmt.Errorf("%w: %d", domain.ErrCategoryNotFound, id)
		}
		return domain.Category{}, err
	}

	return mapCategoryRowToDomainCategory(row), nil
}

func (r *CategoryRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, countCategoryByIDQuery, id); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category domain.Category) (domain.Category, error) {
	if _, err := r.db.ExecContext(ctx, updateCategoryQuery, category.Name, nullString(category.Description), category.ID); err != nil {
		return domain.Category{}, fmt.Errorf("update category %d: %w", category.ID, err)
	}
	return category, nil
}

// Delete does not report missing rows.
func (r *CategoryRepository) Delete(ctx context.Context, id uint64) error {
	if _, err := r.db.ExecContext(ctx, deleteCategoryQuery, id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}

func mapCategoryRowToDomainCategory(row categoryRow) domain.Category {
	category := domain.Category{
		ID:   row.ID,
		Name: row.Name,
	}

	if row.Description.Valid {
		value := row.Description.String
		category.Description = &value
	}

	return category
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
