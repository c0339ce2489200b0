package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Broannn/BookNest-RestAPI/models"
)

// Store interfaces implemented by the data_access repositories. Services
// depend on these so tests can substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]models.User, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type AuthorStore interface {
	Create(ctx context.Context, author *models.Author) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Author, error)
	List(ctx context.Context, skip, limit int) ([]models.Author, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Author, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type GenreStore interface {
	Create(ctx context.Context, genre *models.Genre) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Genre, error)
	List(ctx context.Context, skip, limit int) ([]models.Genre, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Genre, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BookStore interface {
	Create(ctx context.Context, book *models.Book) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BookDetail, error)
	List(ctx context.Context, skip, limit int) ([]models.BookDetail, int64, error)
	FindByGenre(ctx context.Context, genreID primitive.ObjectID) ([]models.BookDetail, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Book, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BookGenreStore interface {
	Insert(ctx context.Context, bookID, genreID primitive.ObjectID) (*models.BookGenre, error)
	FindByPair(ctx context.Context, bookID, genreID primitive.ObjectID) (*models.BookGenre, error)
	ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.GenreOfBook, error)
	Delete(ctx context.Context, bookID, genreID primitive.ObjectID) error
}

type UserBookStore interface {
	Insert(ctx context.Context, userID, bookID primitive.ObjectID) (*models.UserBookFact, error)
	FindByPair(ctx context.Context, userID, bookID primitive.ObjectID) (*models.UserBookFact, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.UserBookEntry, error)
	ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.BookReader, error)
	Delete(ctx context.Context, userID, bookID primitive.ObjectID) error
}

type CritiqueStore interface {
	Insert(ctx context.Context, critique *models.Critique) error
	ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.CritiqueWithAuthor, error)
	FindByUserAndBook(ctx context.Context, userID, bookID primitive.ObjectID) (*models.Critique, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Critique, error)
	Update(ctx context.Context, id primitive.ObjectID, rating int, comment string) (*models.Critique, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BookOfDayStore interface {
	Insert(ctx context.Context, bod *models.BookOfDay) error
	List(ctx context.Context) ([]models.BookOfDayWithBook, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BookOfDay, error)
	PushDiscussion(ctx context.Context, id primitive.ObjectID, discussion *models.Discussion) error
	ListDiscussions(ctx context.Context, id primitive.ObjectID) ([]models.DiscussionWithUser, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
