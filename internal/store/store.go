package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/01moynul/inkwell-api/internal/models"
	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// DuplicateError reports a unique constraint violation on Field, which is
// the API name of the column ("title", "slug", "image", "email", ...).
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// ArticleListOpts filters and pages article listings. A zero Limit means no limit.
type ArticleListOpts struct {
	CategoryID *uuid.UUID
	Limit      int
	Offset     int
}

type Store interface {
	CategoryStore
	ArticleStore
	FeaturedStore
	UserStore
	// WithinTx runs fn against a Store bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
	Close() error
}

type CategoryStore interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type ArticleStore interface {
	CreateArticle(ctx context.Context, article *models.Article) error
	GetArticle(ctx context.Context, id uuid.UUID) (models.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (models.Article, error)
	// ListArticles returns articles newest first by published time.
	ListArticles(ctx context.Context, opts ArticleListOpts) ([]models.Article, error)
	CountArticles(ctx context.Context, opts ArticleListOpts) (int64, error)
	ListArticlePreviews(ctx context.Context, categoryID uuid.UUID, limit int) ([]models.ArticlePreview, error)
	UpdateArticle(ctx context.Context, article *models.Article) error
	DeleteArticle(ctx context.Context, id uuid.UUID) error
}

type FeaturedStore interface {
	// UpsertFeatured inserts the entry or refreshes the one already pointing
	// at the same article.
	UpsertFeatured(ctx context.Context, featured *models.Featured) error
	// DeleteFeaturedByArticle is a no-op when the article has no entry.
	DeleteFeaturedByArticle(ctx context.Context, articleID uuid.UUID) error
	// ListFeatured returns entries most recently featured first.
	ListFeatured(ctx context.Context) ([]models.Featured, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}
