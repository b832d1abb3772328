package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ValidStatus reports whether s is one of the article statuses.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished
}

// Article is the model for the 'articles' table.
// Category is the expanded reference and is nil when the category was deleted.
type Article struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Author          string     `json:"author"`
	CategoryID      uuid.UUID  `json:"categoryId"`
	Category        *Category  `json:"category"`
	Tags            []string   `json:"tags"`
	Content         string     `json:"content"`
	ExperienceLevel string     `json:"experienceLevel"`
	MetaDescription string     `json:"metaDescription"`
	Image           string     `json:"image"`
	Status          string     `json:"status"`
	Featured        bool       `json:"featured"`
	PublishedAt     time.Time  `json:"publishedAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
	OwnerID         uuid.UUID  `json:"userId"`
	LikeCount       int        `json:"likeCount"`
	LikeRNG         int        `json:"likeRNG"`
}

// ArticlePreview is the trimmed article shape used by category previews.
type ArticlePreview struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Image       string    `json:"image"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Pagination is the metadata returned with a page of articles.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// ArticlePage is the response of GET /articles/category/:categorySlug.
type ArticlePage struct {
	Articles   []Article  `json:"articles"`
	Pagination Pagination `json:"pagination"`
	Category   Category   `json:"category"`
}

// --- API Input Structs ---

// CreateArticleInput carries the POST /articles body.
// Category is the id of an existing category.
type CreateArticleInput struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Category        string   `json:"category"`
	Slug            string   `json:"slug"`
	Author          string   `json:"author"`
	Tags            []string `json:"tags"`
	MetaDescription string   `json:"metaDescription"`
	Image           string   `json:"image"`
	Status          string   `json:"status"`
	ExperienceLevel string   `json:"experienceLevel"`
	Featured        bool     `json:"featured"`
}

// UpdateArticleInput is a partial update. Nil fields are left untouched.
// There is no slug field: slugs cannot change after creation.
type UpdateArticleInput struct {
	Title           *string    `json:"title"`
	Content         *string    `json:"content"`
	Category        *string    `json:"category"`
	Author          *string    `json:"author"`
	Tags            *[]string  `json:"tags"`
	MetaDescription *string    `json:"metaDescription"`
	Image           *string    `json:"image"`
	Status          *string    `json:"status"`
	ExperienceLevel *string    `json:"experienceLevel"`
	Featured        *bool      `json:"featured"`
	PublishedAt     *time.Time `json:"publishedAt"`
	LikeCount       *int       `json:"likeCount"`
	LikeRNG         *int       `json:"likeRNG"`
}
