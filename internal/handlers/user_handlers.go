package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/inkwell-api/internal/models"
)

// --- User Registration ---

// Register handles POST /users/register
func (h *Handlers) Register(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	// The 'binding' tags on the input reject short passwords and bad emails.
	var input models.RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	// 2. --- Create the account and its first token ---
	resp, err := h.Users.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	// 3. --- Send Success Response ---
	// The password hash is never serialized (json:"-").
	c.JSON(http.StatusCreated, resp)
}

// --- Login ---

// Login handles POST /users/login
func (h *Handlers) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.Users.Login(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me handles GET /users/me
func (h *Handlers) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	user, err := h.Users.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
