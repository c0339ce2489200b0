package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Broannn/BookNest-RestAPI/models"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]models.User, int64, error) {
	return s.users.List(ctx, skip, limit)
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	fields := bson.M{}
	if req.Username != "" {
		fields["username"] = req.Username
	}
	if req.Email != "" {
		fields["email"] = req.Email
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hashed)
	}

	return s.users.Update(ctx, id, fields)
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.users.Delete(ctx, id)
}
