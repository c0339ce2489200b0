package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Broannn/BookNest-RestAPI/models"
)

func TestUpdateUserRehashesPassword(t *testing.T) {
	store := newFakeUserStore()
	authSvc := NewAuthService(store, testJWTSecret)
	svc := NewUserService(store)

	user, err := authSvc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "old-pass-1",
	})
	require.NoError(t, err)
	oldHash := user.Password

	updated, err := svc.Update(context.Background(), user.ID, &models.UpdateUserRequest{Password: "new-pass-1"})
	require.NoError(t, err)

	// The stored value is a fresh bcrypt hash, never the plaintext.
	assert.NotEqual(t, "new-pass-1", updated.Password)
	assert.NotEqual(t, oldHash, updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("new-pass-1")))

	_, err = authSvc.Login(context.Background(), &models.LoginRequest{
		Email: "alice@example.com", Password: "new-pass-1",
	})
	assert.NoError(t, err)

	_, err = authSvc.Login(context.Background(), &models.LoginRequest{
		Email: "alice@example.com", Password: "old-pass-1",
	})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestUpdateUserPartialFields(t *testing.T) {
	store := newFakeUserStore()
	authSvc := NewAuthService(store, testJWTSecret)
	svc := NewUserService(store)

	user, err := authSvc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "old-pass-1",
	})
	require.NoError(t, err)
	hash := user.Password

	// A username-only update leaves email and password hash untouched.
	updated, err := svc.Update(context.Background(), user.ID, &models.UpdateUserRequest{Username: "alice2"})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, hash, updated.Password)
}
