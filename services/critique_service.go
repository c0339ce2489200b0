package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Broannn/BookNest-RestAPI/models"
)

type CritiqueService struct {
	critiques CritiqueStore
}

func NewCritiqueService(critiques CritiqueStore) *CritiqueService {
	return &CritiqueService{critiques: critiques}
}

func validRating(rating int) bool {
	return rating >= models.MinRating && rating <= models.MaxRating
}

// Add inserts the caller's critique of a book. The unique (user_id, book_id)
// index turns a second critique for the same pair into ErrDuplicate.
func (s *CritiqueService) Add(ctx context.Context, userID, bookID primitive.ObjectID, rating int, comment string) (*models.Critique, error) {
	if !validRating(rating) {
		return nil, models.ErrInvalidRating
	}

	critique := &models.Critique{
		UserID:  userID,
		BookID:  bookID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.critiques.Insert(ctx, critique); err != nil {
		return nil, err
	}
	return critique, nil
}

func (s *CritiqueService) ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.CritiqueWithAuthor, error) {
	return s.critiques.ListByBook(ctx, bookID)
}

func (s *CritiqueService) GetByUserAndBook(ctx context.Context, userID, bookID primitive.ObjectID) (*models.Critique, error) {
	return s.critiques.FindByUserAndBook(ctx, userID, bookID)
}

// Update overwrites rating and comment. Only the original author may update;
// anyone else gets ErrForbidden.
func (s *CritiqueService) Update(ctx context.Context, callerID, critiqueID primitive.ObjectID, rating int, comment string) (*models.Critique, error) {
	if !validRating(rating) {
		return nil, models.ErrInvalidRating
	}

	critique, err := s.critiques.FindByID(ctx, critiqueID)
	if err != nil {
		return nil, err
	}
	if critique.UserID != callerID {
		return nil, models.ErrForbidden
	}

	return s.critiques.Update(ctx, critiqueID, rating, comment)
}

// Delete removes a critique, with the same ownership rule as Update.
func (s *CritiqueService) Delete(ctx context.Context, callerID, critiqueID primitive.ObjectID) error {
	critique, err := s.critiques.FindByID(ctx, critiqueID)
	if err != nil {
		return err
	}
	if critique.UserID != callerID {
		return models.ErrForbidden
	}

	return s.critiques.Delete(ctx, critiqueID)
}

// Owner reports the authoring user of a critique, for the route-level
// ownership middleware.
func (s *CritiqueService) Owner(ctx context.Context, critiqueID primitive.ObjectID) (primitive.ObjectID, error) {
	critique, err := s.critiques.FindByID(ctx, critiqueID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return critique.UserID, nil
}
