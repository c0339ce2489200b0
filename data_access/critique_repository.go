package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Broannn/BookNest-RestAPI/models"
)

type CritiqueRepository struct {
	collection *mongo.Collection
}

func NewCritiqueRepository(db *MongoDB) *CritiqueRepository {
	return &CritiqueRepository{collection: db.Collection(CollCritiques)}
}

func (r *CritiqueRepository) Insert(ctx context.Context, critique *models.Critique) error {
	now := time.Now()
	critique.CreatedAt = now
	critique.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, critique)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicate
		}
		return err
	}
	critique.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListByBook projects the author's username only, not the full user document.
func (r *CritiqueRepository) ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.CritiqueWithAuthor, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"book_id": bookID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         CollUsers,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$author",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$addFields", Value: bson.M{"username": "$author.username"}}},
		{{Key: "$project", Value: bson.M{"author": 0}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	critiques := []models.CritiqueWithAuthor{}
	if err = cursor.All(ctx, &critiques); err != nil {
		return nil, err
	}
	return critiques, nil
}

func (r *CritiqueRepository) FindByUserAndBook(ctx context.Context, userID, bookID primitive.ObjectID) (*models.Critique, error) {
	var critique models.Critique
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "book_id": bookID}).Decode(&critique)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &critique, nil
}

func (r *CritiqueRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Critique, error) {
	var critique models.Critique
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&critique)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &critique, nil
}

func (r *CritiqueRepository) Update(ctx context.Context, id primitive.ObjectID, rating int, comment string) (*models.Critique, error) {
	update := bson.M{"$set": bson.M{
		"rating":     rating,
		"comment":    comment,
		"updated_at": time.Now(),
	}}

	var critique models.Critique
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, findOneAndUpdateReturnAfter()).Decode(&critique)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &critique, nil
}

func (r *CritiqueRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
