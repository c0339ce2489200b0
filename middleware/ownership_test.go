package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Broannn/BookNest-RestAPI/models"
)

func bearerFor(t *testing.T, userID primitive.ObjectID) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.Hex(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRequireSelf(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/users/:userId", AuthMiddleware(testSecret), RequireSelf("userId"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	callerID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"acting on self", callerID.Hex(), http.StatusOK},
		{"acting on another user", otherID.Hex(), http.StatusForbidden},
		{"invalid target id", "not-hex", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("PUT", "/users/"+tt.target, nil)
			req.Header.Set("Authorization", bearerFor(t, callerID))
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequireOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ownerID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	lookup := func(ctx context.Context, id primitive.ObjectID) (primitive.ObjectID, error) {
		if id != resourceID {
			return primitive.NilObjectID, models.ErrNotFound
		}
		return ownerID, nil
	}

	r := gin.New()
	r.DELETE("/critiques/:critiqueId", AuthMiddleware(testSecret), RequireOwner("critiqueId", lookup), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		caller primitive.ObjectID
		target string
		status int
	}{
		{"owner passes", ownerID, resourceID.Hex(), http.StatusNoContent},
		{"non-owner forbidden", primitive.NewObjectID(), resourceID.Hex(), http.StatusForbidden},
		{"missing resource", ownerID, primitive.NewObjectID().Hex(), http.StatusNotFound},
		{"invalid resource id", ownerID, "zzz", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("DELETE", "/critiques/"+tt.target, nil)
			req.Header.Set("Authorization", bearerFor(t, tt.caller))
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequireOwnerLookupFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	lookup := func(ctx context.Context, id primitive.ObjectID) (primitive.ObjectID, error) {
		return primitive.NilObjectID, errors.New("connection reset")
	}

	r := gin.New()
	r.DELETE("/critiques/:critiqueId", AuthMiddleware(testSecret), RequireOwner("critiqueId", lookup), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/critiques/"+primitive.NewObjectID().Hex(), nil)
	req.Header.Set("Authorization", bearerFor(t, primitive.NewObjectID()))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
