package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Broannn/BookNest-RestAPI/models"
)

type BookGenreService struct {
	joins BookGenreStore
}

func NewBookGenreService(joins BookGenreStore) *BookGenreService {
	return &BookGenreService{joins: joins}
}

// AddGenreToBook associates a genre with a book. The association is a set
// membership: repeating the call returns the existing join instead of
// creating a duplicate. The boolean reports whether a new join was created.
func (s *BookGenreService) AddGenreToBook(ctx context.Context, bookID, genreID primitive.ObjectID) (*models.BookGenre, bool, error) {
	join, err := s.joins.Insert(ctx, bookID, genreID)
	if err == nil {
		return join, true, nil
	}
	if !errors.Is(err, models.ErrDuplicate) {
		return nil, false, err
	}

	existing, err := s.joins.FindByPair(ctx, bookID, genreID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *BookGenreService) GetGenresByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.GenreOfBook, error) {
	return s.joins.ListByBook(ctx, bookID)
}

func (s *BookGenreService) RemoveGenreFromBook(ctx context.Context, bookID, genreID primitive.ObjectID) error {
	return s.joins.Delete(ctx, bookID, genreID)
}
