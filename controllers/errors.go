package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Broannn/BookNest-RestAPI/models"
)

// respondError maps the domain sentinel errors onto the HTTP taxonomy.
// Anything unclassified is logged server-side and answered with a generic 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, models.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
	case errors.Is(err, models.ErrDuplicate):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Resource already exists"})
	case errors.Is(err, models.ErrInvalidRating):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
	default:
		log.Printf("unexpected error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondBindingError turns gin binding failures into a 422 with per-field
// messages, or a 400 when the body is not even valid JSON.
func respondBindingError(ctx *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = validationMessage(fe)
		}
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "fields": fields})
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}

// parseObjectID parses the named path parameter. On failure it writes a 400
// response and reports false.
func parseObjectID(ctx *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(ctx.Param(param))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
		return primitive.NilObjectID, false
	}
	return id, true
}

// parseHexID parses an identifier carried in a request body.
func parseHexID(ctx *gin.Context, name, value string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return primitive.NilObjectID, false
	}
	return id, true
}
