package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookGenre is the join between books and genres.
// Exactly one document per (book_id, genre_id).
type BookGenre struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BookID    primitive.ObjectID `bson:"book_id" json:"book_id"`
	GenreID   primitive.ObjectID `bson:"genre_id" json:"genre_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// UserBookFact is a set-membership fact between a user and a book. The same
// document shape backs the favorites, wishlists and already_read collections,
// with one document per (user_id, book_id) in each.
type UserBookFact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	BookID    primitive.ObjectID `bson:"book_id" json:"book_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// UserBookEntry is a fact resolved to the referenced book for list responses.
type UserBookEntry struct {
	UserBookFact `bson:",inline"`
	Book         *Book `bson:"book,omitempty" json:"book,omitempty"`
}

// BookReader is an already-read fact resolved to the reading user.
type BookReader struct {
	UserBookFact `bson:",inline"`
	User         *User `bson:"user,omitempty" json:"user,omitempty"`
}

// GenreOfBook is a book-genre join resolved to the full genre document.
type GenreOfBook struct {
	BookGenre `bson:",inline"`
	Genre     *Genre `bson:"genre,omitempty" json:"genre,omitempty"`
}
