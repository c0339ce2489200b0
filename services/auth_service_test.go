package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Broannn/BookNest-RestAPI/models"
)

const testJWTSecret = "unit-test-secret"

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testJWTSecret)

	user, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.False(t, user.ID.IsZero())
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")))
}

func TestRegisterDuplicate(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testJWTSecret)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice", Email: "other@example.com", Password: "pw123456",
	})
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestLoginIssuesToken(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testJWTSecret)

	user, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	tokenString, err := svc.Login(context.Background(), &models.LoginRequest{
		Email: "alice@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, user.ID.Hex(), claims["sub"])
	assert.Equal(t, "alice", claims["username"])
	assert.Contains(t, claims, "exp")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testJWTSecret)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error so a caller
	// cannot tell which part was wrong.
	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email: "nobody@example.com", Password: "pw123456",
	})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}
