package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Broannn/BookNest-RestAPI/models"
)

type BookRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewBookRepository(db *MongoDB) *BookRepository {
	return &BookRepository{
		db:         db,
		collection: db.Collection(CollBooks),
	}
}

// resolveRefs joins the author and genre references into each book document.
func resolveRefs() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         CollAuthors,
			"localField":   "author_id",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$author",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         CollGenres,
			"localField":   "genres",
			"foreignField": "_id",
			"as":           "genre_docs",
		}}},
	}
}

func (r *BookRepository) Create(ctx context.Context, book *models.Book) error {
	now := time.Now()
	book.CreatedAt = now
	book.UpdatedAt = now
	if book.Genres == nil {
		book.Genres = []primitive.ObjectID{}
	}

	res, err := r.collection.InsertOne(ctx, book)
	if err != nil {
		return err
	}
	book.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *BookRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BookDetail, error) {
	pipeline := append(mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}, resolveRefs()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var books []models.BookDetail
	if err = cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, models.ErrNotFound
	}
	return &books[0], nil
}

func (r *BookRepository) List(ctx context.Context, skip, limit int) ([]models.BookDetail, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	pipeline := append(pagePipeline(skip, limit), resolveRefs()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}

	books := []models.BookDetail{}
	if err = cursor.All(ctx, &books); err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *BookRepository) FindByGenre(ctx context.Context, genreID primitive.ObjectID) ([]models.BookDetail, error) {
	pipeline := append(mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"genres": genreID}}},
	}, resolveRefs()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	books := []models.BookDetail{}
	if err = cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Book, error) {
	fields["updated_at"] = time.Now()

	var book models.Book
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		findOneAndUpdateReturnAfter()).Decode(&book)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Delete removes the book and cascades into every collection that references
// it, so deleting a parent never leaves dangling join documents behind.
func (r *BookRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}

	ref := bson.M{"book_id": id}
	for _, coll := range []string{CollBookGenres, CollFavorites, CollWishlists, CollAlreadyRead, CollCritiques, CollBooksOfDay} {
		if _, err := r.db.Collection(coll).DeleteMany(ctx, ref); err != nil {
			return err
		}
	}
	return nil
}
