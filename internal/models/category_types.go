package models

import "github.com/google/uuid"

// Category defines the struct for the 'categories' table.
type Category struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	Slug string    `json:"slug" db:"slug"`
}

// --- API Input/Output Structs ---

type CreateCategoryInput struct {
	Name string `json:"name"`
}

type RenameCategoryInput struct {
	NewName string `json:"newName"`
}

// CategoryPreview is one entry of GET /categories/previews.
type CategoryPreview struct {
	Category Category         `json:"category"`
	Articles []ArticlePreview `json:"articles"`
}
