package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/01moynul/inkwell-api/internal/models"
)

var categoryColumns = []string{"id", "name", "slug"}

func (s *Store) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	_, err := s.exec(ctx, "create_category", sq.Insert("categories").
		Columns(categoryColumns...).
		Values(category.ID, category.Name, category.Slug))
	return err
}

func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (models.Category, error) {
	var c models.Category
	err := s.get(ctx, "get_category", &c, sq.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"id": id}))
	return c, err
}

func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	var c models.Category
	err := s.get(ctx, "get_category_by_slug", &c, sq.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"slug": slug}))
	return c, err
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.selectAll(ctx, "list_categories", &categories, sq.Select(categoryColumns...).
		From("categories").
		OrderBy("name ASC"))
	return categories, err
}

func (s *Store) UpdateCategory(ctx context.Context, category *models.Category) error {
	return s.execOne(ctx, "update_category", sq.Update("categories").
		Set("name", category.Name).
		Set("slug", category.Slug).
		Where(sq.Eq{"id": category.ID}))
}

func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.execOne(ctx, "delete_category", sq.Delete("categories").Where(sq.Eq{"id": id}))
}
