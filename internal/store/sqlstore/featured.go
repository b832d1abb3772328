package sqlstore

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/01moynul/inkwell-api/internal/models"
)

type featuredRow struct {
	ID           uuid.UUID      `db:"id"`
	ArticleID    uuid.UUID      `db:"article_id"`
	Title        string         `db:"title"`
	Slug         string         `db:"slug"`
	Author       string         `db:"author"`
	CategoryName string         `db:"category_name"`
	Image        sql.NullString `db:"image"`
	PublishedAt  int64          `db:"published_at"`
	FeaturedAt   int64          `db:"featured_at"`
}

// featuredCacheColumns are refreshed when an entry for the article exists.
var featuredCacheColumns = []string{"title", "slug", "author", "category_name", "image", "published_at", "featured_at"}

func (s *Store) UpsertFeatured(ctx context.Context, f *models.Featured) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	_, err := s.exec(ctx, "upsert_featured", sq.Insert("featured").
		Columns("id", "article_id", "title", "slug", "author", "category_name", "image", "published_at", "featured_at").
		Values(f.ID, f.ArticleID, f.Title, f.Slug, f.Author, f.CategoryName, nullIfEmpty(f.Image), toMillis(f.PublishedAt), toMillis(f.FeaturedAt)).
		Suffix(s.dialect.UpsertSuffix("article_id", featuredCacheColumns)))
	return err
}

func (s *Store) DeleteFeaturedByArticle(ctx context.Context, articleID uuid.UUID) error {
	_, err := s.exec(ctx, "delete_featured", sq.Delete("featured").Where(sq.Eq{"article_id": articleID}))
	return err
}

func (s *Store) ListFeatured(ctx context.Context) ([]models.Featured, error) {
	var rows []featuredRow
	err := s.selectAll(ctx, "list_featured", &rows, sq.Select(
		"id", "article_id", "title", "slug", "author", "category_name", "image", "published_at", "featured_at",
	).From("featured").OrderBy("featured_at DESC", "id DESC"))
	if err != nil {
		return nil, err
	}

	entries := make([]models.Featured, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, models.Featured{
			ID:           r.ID,
			ArticleID:    r.ArticleID,
			Title:        r.Title,
			Slug:         r.Slug,
			Author:       r.Author,
			CategoryName: r.CategoryName,
			Image:        r.Image.String,
			PublishedAt:  fromMillis(r.PublishedAt),
			FeaturedAt:   fromMillis(r.FeaturedAt),
		})
	}
	return entries, nil
}
