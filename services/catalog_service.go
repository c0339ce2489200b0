package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Broannn/BookNest-RestAPI/models"
)

type AuthorService struct {
	authors AuthorStore
}

func NewAuthorService(authors AuthorStore) *AuthorService {
	return &AuthorService{authors: authors}
}

func (s *AuthorService) Create(ctx context.Context, req *models.AuthorRequest) (*models.Author, error) {
	author := &models.Author{
		Name:      req.Name,
		BirthDate: req.BirthDate,
	}
	if err := s.authors.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *AuthorService) List(ctx context.Context, skip, limit int) ([]models.Author, int64, error) {
	return s.authors.List(ctx, skip, limit)
}

func (s *AuthorService) Get(ctx context.Context, id primitive.ObjectID) (*models.Author, error) {
	return s.authors.FindByID(ctx, id)
}

func (s *AuthorService) Update(ctx context.Context, id primitive.ObjectID, req *models.AuthorRequest) (*models.Author, error) {
	fields := bson.M{"name": req.Name}
	if req.BirthDate != nil {
		fields["birth_date"] = req.BirthDate
	}
	return s.authors.Update(ctx, id, fields)
}

func (s *AuthorService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.authors.Delete(ctx, id)
}

type GenreService struct {
	genres GenreStore
}

func NewGenreService(genres GenreStore) *GenreService {
	return &GenreService{genres: genres}
}

func (s *GenreService) Create(ctx context.Context, req *models.GenreRequest) (*models.Genre, error) {
	genre := &models.Genre{Name: req.Name}
	if err := s.genres.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *GenreService) List(ctx context.Context, skip, limit int) ([]models.Genre, int64, error) {
	return s.genres.List(ctx, skip, limit)
}

func (s *GenreService) Get(ctx context.Context, id primitive.ObjectID) (*models.Genre, error) {
	return s.genres.FindByID(ctx, id)
}

func (s *GenreService) Update(ctx context.Context, id primitive.ObjectID, req *models.GenreRequest) (*models.Genre, error) {
	return s.genres.Update(ctx, id, bson.M{"name": req.Name})
}

func (s *GenreService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.genres.Delete(ctx, id)
}

type BookService struct {
	books BookStore
}

func NewBookService(books BookStore) *BookService {
	return &BookService{books: books}
}

func (s *BookService) Create(ctx context.Context, authorID primitive.ObjectID, genreIDs []primitive.ObjectID, req *models.BookRequest) (*models.Book, error) {
	book := &models.Book{
		Title:           req.Title,
		AuthorID:        authorID,
		PublicationDate: req.PublicationDate,
		Summary:         req.Summary,
		CoverImage:      req.CoverImage,
		Genres:          genreIDs,
	}
	if err := s.books.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *BookService) List(ctx context.Context, skip, limit int) ([]models.BookDetail, int64, error) {
	return s.books.List(ctx, skip, limit)
}

func (s *BookService) Get(ctx context.Context, id primitive.ObjectID) (*models.BookDetail, error) {
	return s.books.FindByID(ctx, id)
}

// ListByGenre returns the books carrying the genre reference. An empty result
// is reported as not found rather than an empty list.
func (s *BookService) ListByGenre(ctx context.Context, genreID primitive.ObjectID) ([]models.BookDetail, error) {
	books, err := s.books.FindByGenre(ctx, genreID)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, models.ErrNotFound
	}
	return books, nil
}

// Update replaces the book with the full payload. cover_image is written
// unconditionally so an empty value clears a previously set image.
func (s *BookService) Update(ctx context.Context, id, authorID primitive.ObjectID, genreIDs []primitive.ObjectID, req *models.BookRequest) (*models.Book, error) {
	fields := bson.M{
		"title":            req.Title,
		"author_id":        authorID,
		"publication_date": req.PublicationDate,
		"summary":          req.Summary,
		"cover_image":      req.CoverImage,
		"genres":           genreIDs,
	}
	return s.books.Update(ctx, id, fields)
}

func (s *BookService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.books.Delete(ctx, id)
}
