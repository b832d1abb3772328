package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/01moynul/inkwell-api/internal/middleware"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadFile handles POST /uploads
// It saves an image to the upload folder and returns the URL to use as an
// article image.
func (h *Handlers) UploadFile(c *gin.Context) {
	// 1. Get the file from the request
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files can be uploaded", "field": "file"})
		return
	}

	// 2. Create the upload directory if it doesn't exist
	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		middleware.LoggerFrom(c).Error("create upload dir", zap.String("dir", h.UploadDir), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save file"})
		return
	}

	// 3. Generate a safe unique filename (uuid + extension)
	newFilename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	savePath := filepath.Join(h.UploadDir, newFilename)

	// 4. Save the file
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		middleware.LoggerFrom(c).Error("save upload", zap.String("path", savePath), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save file"})
		return
	}

	// 5. Return the public URL, served by the static /uploads route
	c.JSON(http.StatusCreated, gin.H{
		"url": "/uploads/" + newFilename,
	})
}
