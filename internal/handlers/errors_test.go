package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/inkwell-api/internal/models"
	"github.com/01moynul/inkwell-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		body   string
	}{
		{&service.Error{Kind: service.KindValidation, Message: "bad"}, http.StatusBadRequest, `{"message":"bad"}`},
		{&service.Error{Kind: service.KindConflict, Message: "title must be unique", Field: "title"}, http.StatusBadRequest, `{"message":"title must be unique","field":"title"}`},
		{&service.Error{Kind: service.KindNotFound, Message: "Article not found"}, http.StatusNotFound, `{"message":"Article not found"}`},
		{&service.Error{Kind: service.KindForbidden, Message: "no"}, http.StatusForbidden, `{"message":"no"}`},
		{&service.Error{Kind: service.KindUnauthorized, Message: "who"}, http.StatusUnauthorized, `{"message":"who"}`},
		{&service.Error{Kind: service.KindInternal, Message: "Error fetching articles", Err: errors.New("db down")}, http.StatusInternalServerError, `{"message":"Error fetching articles","error":"db down"}`},
		{errors.New("raw"), http.StatusInternalServerError, `{"message":"Internal server error","error":"raw"}`},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		respondError(c, tt.err)
		assert.Equal(t, tt.status, rec.Code, tt.err.Error())
		assert.JSONEq(t, tt.body, rec.Body.String())
	}
}

func TestRespondBindError(t *testing.T) {
	r := gin.New()
	r.POST("/register", func(c *gin.Context) {
		var in models.RegisterUserInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	tests := []struct {
		body    string
		field   string
		message string
	}{
		{`{"name":"A","password":"password123"}`, "email", "email is required"},
		{`{"email":"nope","name":"A","password":"password123"}`, "email", "email must be a valid email address"},
		{`{"email":"a@b.co","name":"A","password":"short"}`, "password", "password must be at least 8 characters"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body)))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, tt.field, got["field"])
		assert.Equal(t, tt.message, got["message"])
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{not json`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestJSONName(t *testing.T) {
	assert.Equal(t, "newName", jsonName("NewName"))
	assert.Equal(t, "", jsonName(""))
}
