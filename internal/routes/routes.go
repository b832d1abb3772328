package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/inkwell-api/internal/handlers"
	"github.com/01moynul/inkwell-api/internal/middleware"
)

// Options carries what the router needs besides the handlers.
type Options struct {
	Logger     *zap.Logger
	Tokens     middleware.TokenValidator
	CORSOrigin string
}

func SetupRouter(h *handlers.Handlers, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.CORSOrigin == "" {
		opts.CORSOrigin = "*"
	}

	router := gin.New()

	// Request logging wraps recovery so panics still get an access log line.
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(middleware.Recovery())
	router.Use(middleware.CORSMiddleware(opts.CORSOrigin))

	requireAuth := middleware.AuthMiddleware(opts.Tokens)

	// --- Ping Route (Public) ---
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong!"})
	})

	// --- Article Routes ---
	articles := router.Group("/articles")
	{
		articles.GET("", h.ListArticles)
		articles.GET("/category/:categorySlug", h.ListArticlesByCategory)
		articles.GET("/:slug", h.GetArticle)

		articles.POST("", requireAuth, h.CreateArticle)
		articles.PUT("/:slug", requireAuth, h.UpdateArticle)
		articles.DELETE("/:slug", requireAuth, h.DeleteArticle)
	}

	// --- Article List Routes (Public) ---
	articleList := router.Group("/articleList")
	{
		articleList.GET("/featured", h.ListFeaturedArticles)
		articleList.GET("/recent", h.ListRecentArticles)
	}

	// --- Category Routes ---
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/previews", h.CategoryPreviews)

		categories.POST("", requireAuth, h.CreateCategory)
		categories.PUT("/:id", requireAuth, h.RenameCategory)
		categories.DELETE("/:id", requireAuth, h.DeleteCategory)
	}

	// --- User Routes ---
	users := router.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.GET("/me", requireAuth, h.Me)
	}

	// --- Uploads ---
	router.POST("/uploads", requireAuth, h.UploadFile)
	router.Static("/uploads", h.UploadDir)

	return router
}
