package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/01moynul/inkwell-api/internal/models"
	"github.com/01moynul/inkwell-api/internal/store"
)

const (
	msgMandatoryFields = "Title, content, category, and author are mandatory fields"
	msgCategoryID      = "Category must be a valid ID. Please select a category from the dropdown."
	msgInvalidCategory = "Invalid category"
	msgArticleNotFound = "Article not found"
	msgInvalidSlug     = "Invalid slug"
	msgInvalidStatus   = "Status must be either draft or published"
	msgUpdateForbidden = "User cannot update other user's articles"
)

// ArticleService manages articles and the featured index derived from them.
type ArticleService struct {
	store store.Store
	opts  Options
}

func NewArticleService(st store.Store, opts Options) *ArticleService {
	return &ArticleService{store: st, opts: opts.withDefaults()}
}

// ListAll returns every article, newest first.
func (s *ArticleService) ListAll(ctx context.Context) ([]models.Article, error) {
	articles, err := s.store.ListArticles(ctx, store.ArticleListOpts{})
	if err != nil {
		return nil, internal("Error fetching articles", err)
	}
	return articles, nil
}

func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (models.Article, error) {
	if !validSlug(slug) {
		return models.Article{}, validationError(msgInvalidSlug)
	}
	article, err := s.store.GetArticleBySlug(ctx, slug)
	if err != nil {
		return models.Article{}, fromStore(err, msgArticleNotFound, "Error fetching article")
	}
	return article, nil
}

// ListByCategory returns one page of a category's articles. A page or limit
// below 1 falls back to the default, and limit is capped at MaxPageLimit.
func (s *ArticleService) ListByCategory(ctx context.Context, categorySlug string, page, limit int) (models.ArticlePage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > s.opts.MaxPageLimit {
		limit = s.opts.MaxPageLimit
	}

	category, err := s.store.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		return models.ArticlePage{}, fromStore(err, msgCategoryNotFound, "Error fetching category")
	}

	opts := store.ArticleListOpts{CategoryID: &category.ID, Limit: limit, Offset: (page - 1) * limit}
	total, err := s.store.CountArticles(ctx, opts)
	if err != nil {
		return models.ArticlePage{}, internal("Error counting articles", err)
	}
	articles, err := s.store.ListArticles(ctx, opts)
	if err != nil {
		return models.ArticlePage{}, internal("Error fetching articles", err)
	}

	return models.ArticlePage{
		Articles: articles,
		Pagination: models.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: int((total + int64(limit) - 1) / int64(limit)),
		},
		Category: category,
	}, nil
}

// ListRecent returns the n most recently published articles.
func (s *ArticleService) ListRecent(ctx context.Context, n int) ([]models.Article, error) {
	if n < 1 {
		n = RecentLimit
	}
	articles, err := s.store.ListArticles(ctx, store.ArticleListOpts{Limit: n})
	if err != nil {
		return nil, internal("Error fetching recent articles", err)
	}
	return articles, nil
}

// ListFeatured resolves every featured entry to its live article. Entries
// whose article is gone are skipped.
func (s *ArticleService) ListFeatured(ctx context.Context) ([]models.FeaturedArticle, error) {
	entries, err := s.store.ListFeatured(ctx)
	if err != nil {
		return nil, internal("Error fetching featured articles", err)
	}

	out := make([]models.FeaturedArticle, 0, len(entries))
	for _, f := range entries {
		article, err := s.store.GetArticle(ctx, f.ArticleID)
		if errors.Is(err, store.ErrNotFound) {
			s.opts.Logger.Debug("skipping featured entry without article",
				zap.String("featured_id", f.ID.String()),
				zap.String("article_id", f.ArticleID.String()))
			continue
		}
		if err != nil {
			return nil, internal("Error fetching featured articles", err)
		}
		out = append(out, models.NewFeaturedArticle(f, article))
	}
	return out, nil
}

// Create stores a new article owned by ownerID. When the article is featured
// its featured entry is written in the same transaction.
func (s *ArticleService) Create(ctx context.Context, in models.CreateArticleInput, ownerID uuid.UUID) (models.Article, error) {
	if blank(in.Title) || blank(in.Content) || blank(in.Category) || blank(in.Author) {
		return models.Article{}, validationError(msgMandatoryFields)
	}
	status := in.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !models.ValidStatus(status) {
		return models.Article{}, &Error{Kind: KindValidation, Message: msgInvalidStatus, Field: "status"}
	}

	slug := in.Slug
	if blank(slug) {
		slug = s.opts.Slugify(in.Title)
	}
	if !validSlug(slug) {
		return models.Article{}, &Error{Kind: KindValidation, Message: msgInvalidSlug, Field: "slug"}
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	level := in.ExperienceLevel
	if level == "" {
		level = "0"
	}

	now := s.opts.Now()
	article := models.Article{
		ID:              uuid.New(),
		Title:           in.Title,
		Slug:            slug,
		Author:          in.Author,
		Tags:            tags,
		Content:         in.Content,
		ExperienceLevel: level,
		MetaDescription: in.MetaDescription,
		Image:           in.Image,
		Status:          status,
		Featured:        in.Featured,
		PublishedAt:     now,
		OwnerID:         ownerID,
	}

	err := s.store.WithinTx(ctx, func(tx store.Store) error {
		category, err := resolveCategory(ctx, tx, in.Category)
		if err != nil {
			return err
		}
		article.CategoryID = category.ID
		article.Category = &category

		if err := tx.CreateArticle(ctx, &article); err != nil {
			return err
		}
		if article.Featured {
			f := models.NewFeatured(&article, now)
			if err := tx.UpsertFeatured(ctx, &f); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Article{}, fromStore(err, msgArticleNotFound, "Error creating article")
	}
	return article, nil
}

// Authorize checks that the article at slug exists and belongs to ownerID,
// without reading or validating any patch.
func (s *ArticleService) Authorize(ctx context.Context, slug string, ownerID uuid.UUID) error {
	if !validSlug(slug) {
		return validationError(msgInvalidSlug)
	}
	article, err := s.store.GetArticleBySlug(ctx, slug)
	if err != nil {
		return fromStore(err, msgArticleNotFound, "Error fetching article")
	}
	if article.OwnerID != ownerID {
		return forbidden(msgUpdateForbidden)
	}
	return nil
}

// Update applies patch to the article at slug. Only the owner may update, and
// the featured entry follows any change of the featured flag.
func (s *ArticleService) Update(ctx context.Context, slug string, ownerID uuid.UUID, patch models.UpdateArticleInput) (models.Article, error) {
	if !validSlug(slug) {
		return models.Article{}, validationError(msgInvalidSlug)
	}

	var updated models.Article
	err := s.store.WithinTx(ctx, func(tx store.Store) error {
		article, err := tx.GetArticleBySlug(ctx, slug)
		if err != nil {
			return err
		}
		if article.OwnerID != ownerID {
			return forbidden(msgUpdateForbidden)
		}

		wasFeatured := article.Featured
		if err := applyPatch(ctx, tx, &article, patch); err != nil {
			return err
		}
		now := s.opts.Now()
		article.UpdatedAt = &now

		if err := tx.UpdateArticle(ctx, &article); err != nil {
			return err
		}
		switch {
		case article.Featured && !wasFeatured:
			f := models.NewFeatured(&article, now)
			if err := tx.UpsertFeatured(ctx, &f); err != nil {
				return err
			}
		case !article.Featured && wasFeatured:
			if err := tx.DeleteFeaturedByArticle(ctx, article.ID); err != nil {
				return err
			}
		}
		updated = article
		return nil
	})
	if err != nil {
		return models.Article{}, fromStore(err, msgArticleNotFound, "Error updating article")
	}
	return updated, nil
}

// Delete removes the article at slug and its featured entry, if any.
func (s *ArticleService) Delete(ctx context.Context, slug string, ownerID uuid.UUID) (models.Article, error) {
	if !validSlug(slug) {
		return models.Article{}, validationError(msgInvalidSlug)
	}

	var deleted models.Article
	err := s.store.WithinTx(ctx, func(tx store.Store) error {
		article, err := tx.GetArticleBySlug(ctx, slug)
		if err != nil {
			return err
		}
		if article.OwnerID != ownerID {
			return forbidden("User cannot delete other user's articles")
		}
		if err := tx.DeleteFeaturedByArticle(ctx, article.ID); err != nil {
			return err
		}
		if err := tx.DeleteArticle(ctx, article.ID); err != nil {
			return err
		}
		deleted = article
		return nil
	})
	if err != nil {
		return models.Article{}, fromStore(err, msgArticleNotFound, "Error deleting article")
	}
	return deleted, nil
}

// resolveCategory parses and loads the category an article refers to.
func resolveCategory(ctx context.Context, st store.CategoryStore, raw string) (models.Category, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return models.Category{}, &Error{Kind: KindValidation, Message: msgCategoryID, Field: "category"}
	}
	category, err := st.GetCategory(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Category{}, &Error{Kind: KindValidation, Message: msgInvalidCategory, Field: "category"}
	}
	if err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func applyPatch(ctx context.Context, st store.CategoryStore, a *models.Article, p models.UpdateArticleInput) error {
	for _, v := range []*string{p.Title, p.Content, p.Author, p.Category} {
		if v != nil && blank(*v) {
			return validationError(msgMandatoryFields)
		}
	}
	if p.Status != nil && !models.ValidStatus(*p.Status) {
		return &Error{Kind: KindValidation, Message: msgInvalidStatus, Field: "status"}
	}
	if p.Category != nil {
		category, err := resolveCategory(ctx, st, *p.Category)
		if err != nil {
			return err
		}
		a.CategoryID = category.ID
		a.Category = &category
	}

	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.Tags != nil {
		a.Tags = *p.Tags
		if a.Tags == nil {
			a.Tags = []string{}
		}
	}
	if p.MetaDescription != nil {
		a.MetaDescription = *p.MetaDescription
	}
	if p.Image != nil {
		a.Image = *p.Image
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.ExperienceLevel != nil {
		a.ExperienceLevel = *p.ExperienceLevel
	}
	if p.Featured != nil {
		a.Featured = *p.Featured
	}
	if p.PublishedAt != nil {
		a.PublishedAt = p.PublishedAt.UTC()
	}
	if p.LikeCount != nil {
		a.LikeCount = *p.LikeCount
	}
	if p.LikeRNG != nil {
		a.LikeRNG = *p.LikeRNG
	}
	return nil
}
