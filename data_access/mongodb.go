package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the repositories.
const (
	CollUsers       = "users"
	CollAuthors     = "authors"
	CollGenres      = "genres"
	CollBooks       = "books"
	CollBookGenres  = "book_genres"
	CollFavorites   = "favorites"
	CollWishlists   = "wishlists"
	CollAlreadyRead = "already_read"
	CollCritiques   = "critiques"
	CollBooksOfDay  = "books_of_day"
)

var allCollections = []string{
	CollUsers, CollAuthors, CollGenres, CollBooks, CollBookGenres,
	CollFavorites, CollWishlists, CollAlreadyRead, CollCritiques, CollBooksOfDay,
}

type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoDB(connectionString string, dbName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &MongoDB{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *MongoDB) Client() *mongo.Client {
	return m.client
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique and sort indexes the services rely on.
// Uniqueness on the join collections is what makes Mark/AddGenreToBook
// insert-if-absent instead of append-only.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	}
	if _, err := m.Collection(CollUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return err
	}

	pairIndexes := map[string]bson.D{
		CollBookGenres:  {{Key: "book_id", Value: 1}, {Key: "genre_id", Value: 1}},
		CollFavorites:   {{Key: "user_id", Value: 1}, {Key: "book_id", Value: 1}},
		CollWishlists:   {{Key: "user_id", Value: 1}, {Key: "book_id", Value: 1}},
		CollAlreadyRead: {{Key: "user_id", Value: 1}, {Key: "book_id", Value: 1}},
		CollCritiques:   {{Key: "user_id", Value: 1}, {Key: "book_id", Value: 1}},
	}
	for coll, keys := range pairIndexes {
		if _, err := m.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: unique}); err != nil {
			return err
		}
	}

	_, err := m.Collection(CollBooksOfDay).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: -1}},
	})
	return err
}

// Reset wipes every collection. Serves the admin reset endpoint only.
func (m *MongoDB) Reset(ctx context.Context) error {
	for _, name := range allCollections {
		if _, err := m.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	return nil
}
