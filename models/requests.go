package models

import "time"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"omitempty,max=50"`
	Email    string `json:"email" binding:"omitempty,email,max=100"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type AuthorRequest struct {
	Name      string     `json:"name" binding:"required,max=250"`
	BirthDate *time.Time `json:"birth_date"`
}

type GenreRequest struct {
	Name string `json:"name" binding:"required,max=250"`
}

type BookRequest struct {
	Title           string    `json:"title" binding:"required,max=250"`
	AuthorID        string    `json:"author_id" binding:"required"`
	PublicationDate time.Time `json:"publication_date" binding:"required"`
	Summary         string    `json:"summary" binding:"required"`
	CoverImage      string    `json:"cover_image"`
	Genres          []string  `json:"genres"`
}

type BookGenreRequest struct {
	GenreID string `json:"genreId" binding:"required"`
}

type UserBookRequest struct {
	BookID string `json:"bookId" binding:"required"`
}

type CritiqueRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

type BookOfDayRequest struct {
	BookID string    `json:"bookId" binding:"required"`
	Date   time.Time `json:"date" binding:"required"`
}

type DiscussionRequest struct {
	Content string `json:"content" binding:"required"`
}

// ListMeta describes the pagination envelope on collection responses.
type ListMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	Pages    int   `json:"pages"`
	PageSize int   `json:"pageSize"`
}
