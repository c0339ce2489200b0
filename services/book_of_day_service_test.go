package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Broannn/BookNest-RestAPI/models"
)

func TestAddDiscussion(t *testing.T) {
	store := newFakeBookOfDayStore()
	svc := NewBookOfDayService(store)

	bod, err := svc.Add(context.Background(), primitive.NewObjectID(), time.Now())
	require.NoError(t, err)

	userID := primitive.NewObjectID()
	discussion, err := svc.AddDiscussion(context.Background(), bod.ID, userID, "great pick")
	require.NoError(t, err)

	assert.False(t, discussion.ID.IsZero())
	assert.Equal(t, userID, discussion.UserID)
	assert.WithinDuration(t, time.Now(), discussion.CreatedAt, time.Minute)
}

func TestAddDiscussionMissingParent(t *testing.T) {
	svc := NewBookOfDayService(newFakeBookOfDayStore())

	_, err := svc.AddDiscussion(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "into the void")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListDiscussionsPreservesOrder(t *testing.T) {
	svc := NewBookOfDayService(newFakeBookOfDayStore())

	bod, err := svc.Add(context.Background(), primitive.NewObjectID(), time.Now())
	require.NoError(t, err)

	userID := primitive.NewObjectID()
	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.AddDiscussion(context.Background(), bod.ID, userID, content)
		require.NoError(t, err)
	}

	discussions, err := svc.ListDiscussions(context.Background(), bod.ID)
	require.NoError(t, err)
	require.Len(t, discussions, 3)
	assert.Equal(t, "first", discussions[0].Content)
	assert.Equal(t, "second", discussions[1].Content)
	assert.Equal(t, "third", discussions[2].Content)
}

func TestListDiscussionsEmptyParent(t *testing.T) {
	svc := NewBookOfDayService(newFakeBookOfDayStore())

	bod, err := svc.Add(context.Background(), primitive.NewObjectID(), time.Now())
	require.NoError(t, err)

	// A parent without discussions yields an empty list, not an error.
	discussions, err := svc.ListDiscussions(context.Background(), bod.ID)
	require.NoError(t, err)
	assert.Empty(t, discussions)
}

func TestListDiscussionsMissingParent(t *testing.T) {
	svc := NewBookOfDayService(newFakeBookOfDayStore())

	_, err := svc.ListDiscussions(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListNewestDateFirst(t *testing.T) {
	svc := NewBookOfDayService(newFakeBookOfDayStore())
	today := time.Now().Truncate(24 * time.Hour)

	// Insert out of order; the listing must come back newest first.
	for _, offset := range []int{-2, 0, -1} {
		_, err := svc.Add(context.Background(), primitive.NewObjectID(), today.AddDate(0, 0, offset))
		require.NoError(t, err)
	}

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, today, records[0].Date)
	assert.Equal(t, today.AddDate(0, 0, -1), records[1].Date)
	assert.Equal(t, today.AddDate(0, 0, -2), records[2].Date)
}

func TestDeleteBookOfDay(t *testing.T) {
	svc := NewBookOfDayService(newFakeBookOfDayStore())

	bod, err := svc.Add(context.Background(), primitive.NewObjectID(), time.Now())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), bod.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), bod.ID), models.ErrNotFound)
}
