package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Broannn/BookNest-RestAPI/models"
	"github.com/Broannn/BookNest-RestAPI/services"
)

type BookGenreController struct {
	bookGenreService *services.BookGenreService
}

func NewBookGenreController(bookGenreService *services.BookGenreService) *BookGenreController {
	return &BookGenreController{bookGenreService: bookGenreService}
}

// Add associates a genre with a book. Answers 201 for a new association,
// 200 when the pair already existed.
func (c *BookGenreController) Add(ctx *gin.Context) {
	bookID, ok := parseObjectID(ctx, "bookId")
	if !ok {
		return
	}

	var req models.BookGenreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	genreID, ok := parseHexID(ctx, "genreId", req.GenreID)
	if !ok {
		return
	}

	join, created, err := c.bookGenreService.AddGenreToBook(ctx.Request.Context(), bookID, genreID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, join)
}

func (c *BookGenreController) List(ctx *gin.Context) {
	bookID, ok := parseObjectID(ctx, "bookId")
	if !ok {
		return
	}

	genres, err := c.bookGenreService.GetGenresByBook(ctx.Request.Context(), bookID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, genres)
}

func (c *BookGenreController) Remove(ctx *gin.Context) {
	bookID, ok := parseObjectID(ctx, "bookId")
	if !ok {
		return
	}
	genreID, ok := parseObjectID(ctx, "genreId")
	if !ok {
		return
	}

	if err := c.bookGenreService.RemoveGenreFromBook(ctx.Request.Context(), bookID, genreID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
