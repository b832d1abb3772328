package models

import (
	"time"

	"github.com/google/uuid"
)

// Featured is a row of the 'featured' table: a pointer to a featured article
// plus a copy of the fields shown on the home page.
type Featured struct {
	ID           uuid.UUID
	ArticleID    uuid.UUID
	Title        string
	Slug         string
	Author       string
	CategoryName string
	Image        string
	PublishedAt  time.Time
	FeaturedAt   time.Time
}

// NewFeatured builds the featured entry for a.
func NewFeatured(a *Article, now time.Time) Featured {
	f := Featured{
		ID:          uuid.New(),
		ArticleID:   a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Author:      a.Author,
		Image:       a.Image,
		PublishedAt: a.PublishedAt,
		FeaturedAt:  now,
	}
	if a.Category != nil {
		f.CategoryName = a.Category.Name
	}
	return f
}

// FeaturedCategory is the category block of a featured listing item. Its ID is
// a string so the "uncategorized" placeholder can be expressed.
type FeaturedCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

var Uncategorized = FeaturedCategory{ID: "uncategorized", Name: "Uncategorized", Slug: "uncategorized"}

// FeaturedArticle is one item of GET /articleList/featured, built from the
// featured entry and the live article it points to.
type FeaturedArticle struct {
	ID          uuid.UUID        `json:"id"`
	ArticleID   uuid.UUID        `json:"articleId"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Image       string           `json:"image"`
	Author      string           `json:"author"`
	PublishedAt time.Time        `json:"publishedAt"`
	Category    FeaturedCategory `json:"category"`
}

func NewFeaturedArticle(f Featured, a Article) FeaturedArticle {
	cat := Uncategorized
	if a.Category != nil {
		cat = FeaturedCategory{ID: a.Category.ID.String(), Name: a.Category.Name, Slug: a.Category.Slug}
	}
	return FeaturedArticle{
		ID:          f.ID,
		ArticleID:   a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Image:       a.Image,
		Author:      a.Author,
		PublishedAt: a.PublishedAt,
		Category:    cat,
	}
}
