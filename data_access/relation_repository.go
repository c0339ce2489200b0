package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Broannn/BookNest-RestAPI/models"
)

type BookGenreRepository struct {
	collection *mongo.Collection
}

func NewBookGenreRepository(db *MongoDB) *BookGenreRepository {
	return &BookGenreRepository{collection: db.Collection(CollBookGenres)}
}

func (r *BookGenreRepository) Insert(ctx context.Context, bookID, genreID primitive.ObjectID) (*models.BookGenre, error) {
	now := time.Now()
	join := &models.BookGenre{
		BookID:    bookID,
		GenreID:   genreID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.collection.InsertOne(ctx, join)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrDuplicate
		}
		return nil, err
	}
	join.ID = res.InsertedID.(primitive.ObjectID)
	return join, nil
}

func (r *BookGenreRepository) FindByPair(ctx context.Context, bookID, genreID primitive.ObjectID) (*models.BookGenre, error) {
	var join models.BookGenre
	err := r.collection.FindOne(ctx, bson.M{"book_id": bookID, "genre_id": genreID}).Decode(&join)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &join, nil
}

// ListByBook resolves each join to the full genre document.
func (r *BookGenreRepository) ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.GenreOfBook, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"book_id": bookID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         CollGenres,
			"localField":   "genre_id",
			"foreignField": "_id",
			"as":           "genre",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$genre",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	joins := []models.GenreOfBook{}
	if err = cursor.All(ctx, &joins); err != nil {
		return nil, err
	}
	return joins, nil
}

func (r *BookGenreRepository) Delete(ctx context.Context, bookID, genreID primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"book_id": bookID, "genre_id": genreID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// UserBookRepository backs one of the favorites, wishlists or already_read
// collections; the three share shape and contract.
type UserBookRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewUserBookRepository(db *MongoDB, collectionName string) *UserBookRepository {
	return &UserBookRepository{
		db:         db,
		collection: db.Collection(collectionName),
	}
}

func (r *UserBookRepository) Insert(ctx context.Context, userID, bookID primitive.ObjectID) (*models.UserBookFact, error) {
	now := time.Now()
	fact := &models.UserBookFact{
		UserID:    userID,
		BookID:    bookID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.collection.InsertOne(ctx, fact)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrDuplicate
		}
		return nil, err
	}
	fact.ID = res.InsertedID.(primitive.ObjectID)
	return fact, nil
}

func (r *UserBookRepository) FindByPair(ctx context.Context, userID, bookID primitive.ObjectID) (*models.UserBookFact, error) {
	var fact models.UserBookFact
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "book_id": bookID}).Decode(&fact)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &fact, nil
}

// ListByUser resolves each fact to the referenced book.
func (r *UserBookRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.UserBookEntry, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
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

	entries := []models.UserBookEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByBook resolves each fact to the referencing user.
func (r *UserBookRepository) ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.BookReader, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"book_id": bookID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         CollUsers,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$user",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	readers := []models.BookReader{}
	if err = cursor.All(ctx, &readers); err != nil {
		return nil, err
	}
	return readers, nil
}

func (r *UserBookRepository) Delete(ctx context.Context, userID, bookID primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "book_id": bookID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
