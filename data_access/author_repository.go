package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Broannn/BookNest-RestAPI/models"
)

type AuthorRepository struct {
	collection *mongo.Collection
}

func NewAuthorRepository(db *MongoDB) *AuthorRepository {
	return &AuthorRepository{collection: db.Collection(CollAuthors)}
}

func (r *AuthorRepository) Create(ctx context.Context, author *models.Author) error {
	now := time.Now()
	author.CreatedAt = now
	author.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, author)
	if err != nil {
		return err
	}
	author.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *AuthorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Author, error) {
	var author models.Author
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&author)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *AuthorRepository) List(ctx context.Context, skip, limit int) ([]models.Author, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, findPage(skip, limit))
	if err != nil {
		return nil, 0, err
	}

	authors := []models.Author{}
	if err = cursor.All(ctx, &authors); err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

func (r *AuthorRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Author, error) {
	fields["updated_at"] = time.Now()

	var author models.Author
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		findOneAndUpdateReturnAfter()).Decode(&author)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *AuthorRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
