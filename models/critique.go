package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Critique rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Critique holds one user's review of one book. At most one critique per
// (user_id, book_id), enforced by a unique compound index.
type Critique struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	BookID    primitive.ObjectID `bson:"book_id" json:"book_id"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CritiqueWithAuthor projects only the author's username, not the full user.
type CritiqueWithAuthor struct {
	Critique `bson:",inline"`
	Username string `bson:"username" json:"username"`
}
