package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/01moynul/inkwell-api/internal/models"
	"github.com/01moynul/inkwell-api/internal/store"
)

const (
	msgCategoryNotFound   = "Category not found"
	msgCategoryNameNeeded = "Category name is required"
	msgNewNameNeeded      = "New category name is required"
	msgSameName           = "New category name must be different from the existing name"
	msgCategoryExists     = "Category already exists"
	msgCategoryIDInvalid  = "Invalid category ID"
)

// CategoryService manages categories. Deleting a category leaves its
// articles in place.
type CategoryService struct {
	store store.Store
	opts  Options
}

func NewCategoryService(st store.Store, opts Options) *CategoryService {
	return &CategoryService{store: st, opts: opts.withDefaults()}
}

// ListAll returns every category ordered by name.
func (s *CategoryService) ListAll(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, internal("Error fetching categories", err)
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, &Error{Kind: KindValidation, Message: msgCategoryNameNeeded, Field: "name"}
	}

	category := models.Category{ID: uuid.New(), Name: name, Slug: s.opts.Slugify(name)}
	if err := s.store.CreateCategory(ctx, &category); err != nil {
		return models.Category{}, categoryWriteError(err, "Error creating category")
	}
	return category, nil
}

// Rename changes the name of the category and regenerates its slug.
func (s *CategoryService) Rename(ctx context.Context, rawID, newName string) (models.Category, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return models.Category{}, &Error{Kind: KindValidation, Message: msgNewNameNeeded, Field: "newName"}
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return models.Category{}, validationError(msgCategoryIDInvalid)
	}

	category, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return models.Category{}, fromStore(err, msgCategoryNotFound, "Error fetching category")
	}
	if category.Name == newName {
		return models.Category{}, &Error{Kind: KindValidation, Message: msgSameName, Field: "newName"}
	}

	category.Name = newName
	category.Slug = s.opts.Slugify(newName)
	if err := s.store.UpdateCategory(ctx, &category); err != nil {
		return models.Category{}, categoryWriteError(err, "Error updating category")
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return validationError(msgCategoryIDInvalid)
	}
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return fromStore(err, msgCategoryNotFound, "Error deleting category")
	}
	return nil
}

// Previews returns each category with its most recent articles.
func (s *CategoryService) Previews(ctx context.Context) ([]models.CategoryPreview, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, internal("Error fetching category previews", err)
	}

	previews := make([]models.CategoryPreview, 0, len(categories))
	for _, c := range categories {
		articles, err := s.store.ListArticlePreviews(ctx, c.ID, PreviewLimit)
		if err != nil {
			return nil, internal("Error fetching category previews", err)
		}
		previews = append(previews, models.CategoryPreview{Category: c, Articles: articles})
	}
	return previews, nil
}

func categoryWriteError(err error, internalMsg string) error {
	var dup *store.DuplicateError
	if errors.As(err, &dup) {
		return &Error{Kind: KindConflict, Message: msgCategoryExists, Field: dup.Field, Err: err}
	}
	return fromStore(err, msgCategoryNotFound, internalMsg)
}
