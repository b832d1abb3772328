package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/01moynul/inkwell-api/internal/middleware"
	"github.com/01moynul/inkwell-api/internal/models"
	"github.com/01moynul/inkwell-api/internal/service"
)

// --- Public Article Handlers ---

// ListArticles handles GET /articles
func (h *Handlers) ListArticles(c *gin.Context) {
	articles, err := h.Articles.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetArticle handles GET /articles/:slug
func (h *Handlers) GetArticle(c *gin.Context) {
	article, err := h.Articles.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// ListArticlesByCategory handles GET /articles/category/:categorySlug?page=&limit=
// Missing or non-numeric page and limit fall back to the defaults.
func (h *Handlers) ListArticlesByCategory(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.Articles.ListByCategory(c.Request.Context(), c.Param("categorySlug"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListFeaturedArticles handles GET /articleList/featured
func (h *Handlers) ListFeaturedArticles(c *gin.Context) {
	featured, err := h.Articles.ListFeatured(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, featured)
}

// ListRecentArticles handles GET /articleList/recent
func (h *Handlers) ListRecentArticles(c *gin.Context) {
	recent, err := h.Articles.ListRecent(c.Request.Context(), service.RecentLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recent)
}

// --- Protected Article Handlers ---

// CreateArticle handles POST /articles
func (h *Handlers) CreateArticle(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var input models.CreateArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	article, err := h.Articles.Create(c.Request.Context(), input, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// UpdateArticle handles PUT /articles/:slug
// A "slug" in the body is ignored: slugs never change.
func (h *Handlers) UpdateArticle(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	// Missing and foreign articles are answered before the body is read.
	if err := h.Articles.Authorize(c.Request.Context(), c.Param("slug"), userID); err != nil {
		respondError(c, err)
		return
	}

	var input models.UpdateArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	article, err := h.Articles.Update(c.Request.Context(), c.Param("slug"), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// DeleteArticle handles DELETE /articles/:slug
func (h *Handlers) DeleteArticle(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	article, err := h.Articles.Delete(c.Request.Context(), c.Param("slug"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Article deleted successfully",
		"article": article,
	})
}

// callerID returns the authenticated user, answering 401 when there is none.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
	return userID, ok
}
