package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Broannn/BookNest-RestAPI/models"
)

type GenreRepository struct {
	collection *mongo.Collection
}

func NewGenreRepository(db *MongoDB) *GenreRepository {
	return &GenreRepository{collection: db.Collection(CollGenres)}
}

func (r *GenreRepository) Create(ctx context.Context, genre *models.Genre) error {
	now := time.Now()
	genre.CreatedAt = now
	genre.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, genre)
	if err != nil {
		return err
	}
	genre.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *GenreRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Genre, error) {
	var genre models.Genre
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&genre)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *GenreRepository) List(ctx context.Context, skip, limit int) ([]models.Genre, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, findPage(skip, limit))
	if err != nil {
		return nil, 0, err
	}

	genres := []models.Genre{}
	if err = cursor.All(ctx, &genres); err != nil {
		return nil, 0, err
	}
	return genres, total, nil
}

func (r *GenreRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Genre, error) {
	fields["updated_at"] = time.Now()

	var genre models.Genre
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		findOneAndUpdateReturnAfter()).Decode(&genre)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *GenreRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
