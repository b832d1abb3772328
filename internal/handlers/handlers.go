package handlers

import (
	"github.com/01moynul/inkwell-api/internal/service"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Articles   *service.ArticleService
	Categories *service.CategoryService
	Users      *service.UserService
	UploadDir  string // Where POST /uploads stores files
}
