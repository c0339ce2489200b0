package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Broannn/BookNest-RestAPI/models"
)

// UserBookService implements the favorite, wishlist and already-read
// contracts; the three differ only in which collection backs the store.
type UserBookService struct {
	facts UserBookStore
}

func NewUserBookService(facts UserBookStore) *UserBookService {
	return &UserBookService{facts: facts}
}

// Mark records the fact for the (user, book) pair. Marking is idempotent:
// a repeated call returns the existing fact and reports created=false.
func (s *UserBookService) Mark(ctx context.Context, userID, bookID primitive.ObjectID) (*models.UserBookFact, bool, error) {
	fact, err := s.facts.Insert(ctx, userID, bookID)
	if err == nil {
		return fact, true, nil
	}
	if !errors.Is(err, models.ErrDuplicate) {
		return nil, false, err
	}

	existing, err := s.facts.FindByPair(ctx, userID, bookID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *UserBookService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.UserBookEntry, error) {
	return s.facts.ListByUser(ctx, userID)
}

// ListReaders returns the users holding the fact for a book (used by the
// already-read collection to answer "who read this").
func (s *UserBookService) ListReaders(ctx context.Context, bookID primitive.ObjectID) ([]models.BookReader, error) {
	return s.facts.ListByBook(ctx, bookID)
}

func (s *UserBookService) Remove(ctx context.Context, userID, bookID primitive.ObjectID) error {
	return s.facts.Delete(ctx, userID, bookID)
}
