package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Discussion is an embedded entry in a BookOfDay document. Entries are
// appended in order and never removed.
type Discussion struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type BookOfDay struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BookID      primitive.ObjectID `bson:"book_id" json:"book_id"`
	Date        time.Time          `bson:"date" json:"date"`
	Discussions []Discussion       `bson:"discussions" json:"discussions"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// BookOfDayWithBook resolves the book reference for list responses.
type BookOfDayWithBook struct {
	BookOfDay `bson:",inline"`
	Book      *Book `bson:"book,omitempty" json:"book,omitempty"`
}

// DiscussionWithUser resolves the discussion author for read responses.
type DiscussionWithUser struct {
	Discussion `bson:",inline"`
	User       *User `bson:"user,omitempty" json:"user,omitempty"`
}
