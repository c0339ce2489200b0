package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Broannn/BookNest-RestAPI/models"
)

type BookOfDayRepository struct {
	collection *mongo.Collection
}

func NewBookOfDayRepository(db *MongoDB) *BookOfDayRepository {
	return &BookOfDayRepository{collection: db.Collection(CollBooksOfDay)}
}

func (r *BookOfDayRepository) Insert(ctx context.Context, bod *models.BookOfDay) error {
	now := time.Now()
	bod.CreatedAt = now
	bod.UpdatedAt = now
	if bod.Discussions == nil {
		bod.Discussions = []models.Discussion{}
	}

	res, err := r.collection.InsertOne(ctx, bod)
	if err != nil {
		return err
	}
	bod.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns every record newest-date first, each resolved to its book.
func (r *BookOfDayRepository) List(ctx context.Context) ([]models.BookOfDayWithBook, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.M{"date": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         CollBooks,
			"localField":   "book_id",
			"foreignField": "_id",
			"as":           "book",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$book",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	records := []models.BookOfDayWithBook{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *BookOfDayRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BookOfDay, error) {
	var bod models.BookOfDay
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&bod)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bod, nil
}

// PushDiscussion appends the entry with a single $push so concurrent appends
// to the same parent cannot overwrite each other.
func (r *BookOfDayRepository) PushDiscussion(ctx context.Context, id primitive.ObjectID, discussion *models.Discussion) error {
	update := bson.M{
		"$push": bson.M{"discussions": discussion},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListDiscussions returns the parent's ordered discussion entries, each
// resolved to the authoring user. The caller must check parent existence
// first: a parent with no discussions and a missing parent both produce an
// empty result here.
func (r *BookOfDayRepository) ListDiscussions(ctx context.Context, id primitive.ObjectID) ([]models.DiscussionWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$unwind", Value: "$discussions"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         CollUsers,
			"localField":   "discussions.user_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$user",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":        "$discussions._id",
			"user_id":    "$discussions.user_id",
			"content":    "$discussions.content",
			"created_at": "$discussions.created_at",
			"user":       1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	discussions := []models.DiscussionWithUser{}
	if err = cursor.All(ctx, &discussions); err != nil {
		return nil, err
	}
	return discussions, nil
}

func (r *BookOfDayRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
