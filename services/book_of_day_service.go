package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Broannn/BookNest-RestAPI/models"
)

type BookOfDayService struct {
	records BookOfDayStore
}

func NewBookOfDayService(records BookOfDayStore) *BookOfDayService {
	return &BookOfDayService{records: records}
}

// Add inserts a new record. Several records may share the same date; the
// listing order makes the latest one win the "of the day" spot.
func (s *BookOfDayService) Add(ctx context.Context, bookID primitive.ObjectID, date time.Time) (*models.BookOfDay, error) {
	bod := &models.BookOfDay{
		BookID: bookID,
		Date:   date,
	}
	if err := s.records.Insert(ctx, bod); err != nil {
		return nil, err
	}
	return bod, nil
}

// List returns every record, newest date first.
func (s *BookOfDayService) List(ctx context.Context) ([]models.BookOfDayWithBook, error) {
	return s.records.List(ctx)
}

func (s *BookOfDayService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.records.Delete(ctx, id)
}

// AddDiscussion appends an entry with a server-assigned creation time to the
// parent's discussion sequence. The append is a single atomic store update.
func (s *BookOfDayService) AddDiscussion(ctx context.Context, bodID, userID primitive.ObjectID, content string) (*models.Discussion, error) {
	discussion := &models.Discussion{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := s.records.PushDiscussion(ctx, bodID, discussion); err != nil {
		return nil, err
	}
	return discussion, nil
}

// ListDiscussions returns the parent's ordered entries with their authors
// resolved. A missing parent is ErrNotFound; a parent without discussions is
// an empty list.
func (s *BookOfDayService) ListDiscussions(ctx context.Context, bodID primitive.ObjectID) ([]models.DiscussionWithUser, error) {
	if _, err := s.records.FindByID(ctx, bodID); err != nil {
		return nil, err
	}
	return s.records.ListDiscussions(ctx, bodID)
}
