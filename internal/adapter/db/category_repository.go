package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/kursuslab/kursus/internal/adapter/db/ent/generated"
	entcategory "github.com/kursuslab/kursus/internal/adapter/db/ent/generated/category"
	"github.com/kursuslab/kursus/internal/core"
)

// CategoryRepository persists categories using Ent.
type CategoryRepository struct {
	client *entgenerated.Client
}

// NewCategoryRepository constructs an Ent-backed category repository.
func NewCategoryRepository(client *entgenerated.Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

var _ core.CategoryRepository = (*CategoryRepository)(nil)

// ListCategories returns every category ordered by name.
func (r *CategoryRepository) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.client.Category.Query().
		Order(entcategory.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row *entgenerated.Category, _ int) core.Category {
		return core.Category{ID: row.ID, Name: row.Name}
	}), nil
}

// CreateCategory inserts a new category.
func (r *CategoryRepository) CreateCategory(ctx context.Context, category core.Category) (*core.Category, error) {
	row, err := r.client.Category.Create().
		SetID(category.ID).
		SetName(category.Name).
		Save(ctx)
	if err != nil {
		if entgenerated.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: category %q already exists", core.ErrValidation, category.Name)
		}
		return nil, err
	}
	return &core.Category{ID: row.ID, Name: row.Name}, nil
}

// GetCategory fetches a category by id.
func (r *CategoryRepository) GetCategory(ctx context.Context, id uuid.UUID) (*core.Category, error) {
	row, err := r.client.Category.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &core.Category{ID: row.ID, Name: row.Name}, nil
}
