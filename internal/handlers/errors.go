package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/01moynul/inkwell-api/internal/middleware"
	"github.com/01moynul/inkwell-api/internal/service"
)

func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindValidation, service.KindConflict:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a service error as {message, field?, error?}.
// Internal errors are logged and carry the underlying error text.
func respondError(c *gin.Context, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		svcErr = &service.Error{Kind: service.KindInternal, Message: "Internal server error", Err: err}
	}

	body := gin.H{"message": svcErr.Message}
	if svcErr.Field != "" {
		body["field"] = svcErr.Field
	}
	if svcErr.Kind == service.KindInternal {
		middleware.LoggerFrom(c).Error(svcErr.Message, zap.Error(svcErr.Err))
		_ = c.Error(err)
		if svcErr.Err != nil {
			body["error"] = svcErr.Err.Error()
		}
	}
	c.JSON(statusFor(svcErr.Kind), body)
}

// respondBindError reports the first failed binding rule, or the JSON
// decoding error when the body is not valid JSON.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := jsonName(fe.Field())
		c.JSON(http.StatusBadRequest, gin.H{"message": ruleMessage(field, fe), "field": field})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
}

func ruleMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %q rule", field, fe.Tag())
	}
}

// jsonName lower-cases the first letter of a Go field name: "NewName" -> "newName".
func jsonName(goName string) string {
	if goName == "" {
		return goName
	}
	return strings.ToLower(goName[:1]) + goName[1:]
}
