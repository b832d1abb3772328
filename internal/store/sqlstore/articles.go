package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/01moynul/inkwell-api/internal/models"
	"github.com/01moynul/inkwell-api/internal/store"
)

// articleRow is an article joined with its category. The category columns
// are nullable because deleting a category leaves its articles in place.
type articleRow struct {
	ID              uuid.UUID      `db:"id"`
	Title           string         `db:"title"`
	Slug            string         `db:"slug"`
	Author          string         `db:"author"`
	CategoryID      uuid.UUID      `db:"category_id"`
	Tags            string         `db:"tags"`
	Content         string         `db:"content"`
	ExperienceLevel string         `db:"experience_level"`
	MetaDescription sql.NullString `db:"meta_description"`
	Image           sql.NullString `db:"image"`
	Status          string         `db:"status"`
	Featured        bool           `db:"featured"`
	PublishedAt     int64          `db:"published_at"`
	UpdatedAt       sql.NullInt64  `db:"updated_at"`
	OwnerID         uuid.UUID      `db:"owner_id"`
	LikeCount       int            `db:"like_count"`
	LikeRNG         int            `db:"like_rng"`
	CatID           uuid.NullUUID  `db:"cat_id"`
	CatName         sql.NullString `db:"cat_name"`
	CatSlug         sql.NullString `db:"cat_slug"`
}

func (r articleRow) toModel() (models.Article, error) {
	a := models.Article{
		ID:              r.ID,
		Title:           r.Title,
		Slug:            r.Slug,
		Author:          r.Author,
		CategoryID:      r.CategoryID,
		Content:         r.Content,
		ExperienceLevel: r.ExperienceLevel,
		MetaDescription: r.MetaDescription.String,
		Image:           r.Image.String,
		Status:          r.Status,
		Featured:        r.Featured,
		PublishedAt:     fromMillis(r.PublishedAt),
		OwnerID:         r.OwnerID,
		LikeCount:       r.LikeCount,
		LikeRNG:         r.LikeRNG,
		Tags:            []string{},
	}
	if r.Tags != "" {
		if err := json.Unmarshal([]byte(r.Tags), &a.Tags); err != nil {
			return models.Article{}, fmt.Errorf("decode tags of article %s: %w", r.ID, err)
		}
	}
	if r.UpdatedAt.Valid {
		t := fromMillis(r.UpdatedAt.Int64)
		a.UpdatedAt = &t
	}
	if r.CatID.Valid {
		a.Category = &models.Category{ID: r.CatID.UUID, Name: r.CatName.String, Slug: r.CatSlug.String}
	}
	return a, nil
}

var articleColumns = []string{
	"a.id AS id",
	"a.title AS title",
	"a.slug AS slug",
	"a.author AS author",
	"a.category_id AS category_id",
	"a.tags AS tags",
	"a.content AS content",
	"a.experience_level AS experience_level",
	"a.meta_description AS meta_description",
	"a.image AS image",
	"a.status AS status",
	"a.featured AS featured",
	"a.published_at AS published_at",
	"a.updated_at AS updated_at",
	"a.owner_id AS owner_id",
	"a.like_count AS like_count",
	"a.like_rng AS like_rng",
	"c.id AS cat_id",
	"c.name AS cat_name",
	"c.slug AS cat_slug",
}

func articleQuery() sq.SelectBuilder {
	return sq.Select(articleColumns...).
		From("articles a").
		LeftJoin("categories c ON c.id = a.category_id")
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

func (s *Store) CreateArticle(ctx context.Context, article *models.Article) error {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	tags, err := encodeTags(article.Tags)
	if err != nil {
		return err
	}
	_, err = s.exec(ctx, "create_article", sq.Insert("articles").
		Columns(
			"id", "title", "slug", "author", "category_id", "tags", "content",
			"experience_level", "meta_description", "image", "status", "featured",
			"published_at", "updated_at", "owner_id", "like_count", "like_rng",
		).
		Values(
			article.ID, article.Title, article.Slug, article.Author, article.CategoryID, tags, article.Content,
			article.ExperienceLevel, nullIfEmpty(article.MetaDescription), nullIfEmpty(article.Image), article.Status, article.Featured,
			toMillis(article.PublishedAt), nil, article.OwnerID, article.LikeCount, article.LikeRNG,
		))
	return err
}

func (s *Store) getArticle(ctx context.Context, op string, where sq.Eq) (models.Article, error) {
	var row articleRow
	if err := s.get(ctx, op, &row, articleQuery().Where(where)); err != nil {
		return models.Article{}, err
	}
	return row.toModel()
}

func (s *Store) GetArticle(ctx context.Context, id uuid.UUID) (models.Article, error) {
	return s.getArticle(ctx, "get_article", sq.Eq{"a.id": id})
}

func (s *Store) GetArticleBySlug(ctx context.Context, slug string) (models.Article, error) {
	return s.getArticle(ctx, "get_article_by_slug", sq.Eq{"a.slug": slug})
}

func (s *Store) ListArticles(ctx context.Context, opts store.ArticleListOpts) ([]models.Article, error) {
	qb := articleQuery().OrderBy("a.published_at DESC", "a.id DESC")
	if opts.CategoryID != nil {
		qb = qb.Where(sq.Eq{"a.category_id": *opts.CategoryID})
	}
	if opts.Limit > 0 {
		qb = qb.Limit(uint64(opts.Limit))
		if opts.Offset > 0 {
			qb = qb.Offset(uint64(opts.Offset))
		}
	}

	var rows []articleRow
	if err := s.selectAll(ctx, "list_articles", &rows, qb); err != nil {
		return nil, err
	}
	articles := make([]models.Article, 0, len(rows))
	for _, r := range rows {
		a, err := r.toModel()
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func (s *Store) CountArticles(ctx context.Context, opts store.ArticleListOpts) (int64, error) {
	qb := sq.Select("COUNT(*)").From("articles a")
	if opts.CategoryID != nil {
		qb = qb.Where(sq.Eq{"a.category_id": *opts.CategoryID})
	}
	var n int64
	err := s.get(ctx, "count_articles", &n, qb)
	return n, err
}

type previewRow struct {
	Title       string         `db:"title"`
	Slug        string         `db:"slug"`
	Image       sql.NullString `db:"image"`
	PublishedAt int64          `db:"published_at"`
}

func (s *Store) ListArticlePreviews(ctx context.Context, categoryID uuid.UUID, limit int) ([]models.ArticlePreview, error) {
	qb := sq.Select("title", "slug", "image", "published_at").
		From("articles").
		Where(sq.Eq{"category_id": categoryID}).
		OrderBy("published_at DESC", "id DESC")
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}

	var rows []previewRow
	if err := s.selectAll(ctx, "list_article_previews", &rows, qb); err != nil {
		return nil, err
	}
	previews := make([]models.ArticlePreview, 0, len(rows))
	for _, r := range rows {
		previews = append(previews, models.ArticlePreview{
			Title:       r.Title,
			Slug:        r.Slug,
			Image:       r.Image.String,
			PublishedAt: fromMillis(r.PublishedAt),
		})
	}
	return previews, nil
}

// UpdateArticle writes every mutable column. Slug and owner never change.
func (s *Store) UpdateArticle(ctx context.Context, article *models.Article) error {
	tags, err := encodeTags(article.Tags)
	if err != nil {
		return err
	}
	var updatedAt any
	if article.UpdatedAt != nil {
		updatedAt = toMillis(*article.UpdatedAt)
	}
	_, err = s.exec(ctx, "update_article", sq.Update("articles").
		SetMap(map[string]any{
			"title":            article.Title,
			"author":           article.Author,
			"category_id":      article.CategoryID,
			"tags":             tags,
			"content":          article.Content,
			"experience_level": article.ExperienceLevel,
			"meta_description": nullIfEmpty(article.MetaDescription),
			"image":            nullIfEmpty(article.Image),
			"status":           article.Status,
			"featured":         article.Featured,
			"published_at":     toMillis(article.PublishedAt),
			"updated_at":       updatedAt,
			"like_count":       article.LikeCount,
			"like_rng":         article.LikeRNG,
		}).
		Where(sq.Eq{"id": article.ID}))
	return err
}

func (s *Store) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	return s.execOne(ctx, "delete_article", sq.Delete("articles").Where(sq.Eq{"id": id}))
}
