package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/inkwell-api/internal/models"
)

// --- Category Handlers ---

// ListCategories (Public)
func (h *Handlers) ListCategories(c *gin.Context) {
	categories, err := h.Categories.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CategoryPreviews (Public) returns each category with its latest articles.
func (h *Handlers) CategoryPreviews(c *gin.Context) {
	previews, err := h.Categories.Previews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, previews)
}

// CreateCategory (Login Required)
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input models.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.Categories.Create(c.Request.Context(), input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// RenameCategory (Login Required) renames the category and regenerates its slug.
func (h *Handlers) RenameCategory(c *gin.Context) {
	var input models.RenameCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.Categories.Rename(c.Request.Context(), c.Param("id"), input.NewName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory (Login Required). Articles of the category are kept.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	if err := h.Categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
