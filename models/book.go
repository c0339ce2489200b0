package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Book struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Title           string               `bson:"title" json:"title"`
	AuthorID        primitive.ObjectID   `bson:"author_id" json:"author_id"`
	PublicationDate time.Time            `bson:"publication_date" json:"publication_date"`
	Summary         string               `bson:"summary" json:"summary"`
	CoverImage      string               `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	Genres          []primitive.ObjectID `bson:"genres" json:"genres"`
	CreatedAt       time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at" json:"updated_at"`
}

// BookDetail is a Book with its references resolved for read responses.
type BookDetail struct {
	Book      `bson:",inline"`
	Author    *Author `bson:"author,omitempty" json:"author,omitempty"`
	GenreDocs []Genre `bson:"genre_docs,omitempty" json:"genre_docs,omitempty"`
}
