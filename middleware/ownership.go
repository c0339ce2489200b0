package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Broannn/BookNest-RestAPI/models"
)

// OwnerLookup resolves a resource identifier to its owning user.
type OwnerLookup func(ctx context.Context, resourceID primitive.ObjectID) (primitive.ObjectID, error)

// RequireSelf only lets a request through when the authenticated caller is
// the user named by the path parameter.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := CurrentUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		targetID, err := primitive.ObjectIDFromHex(c.Param(param))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		if callerID != targetID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
			return
		}
		c.Next()
	}
}

// RequireOwner loads the resource named by the path parameter and only lets
// the request through when the caller owns it. Absent resource is a 404,
// someone else's resource a 403.
func RequireOwner(param string, lookup OwnerLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := CurrentUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		resourceID, err := primitive.ObjectIDFromHex(c.Param(param))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID"})
			return
		}

		ownerID, err := lookup(c.Request.Context(), resourceID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check ownership"})
			return
		}

		if ownerID != callerID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			return
		}
		c.Next()
	}
}
