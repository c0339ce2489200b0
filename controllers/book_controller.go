package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Broannn/BookNest-RestAPI/helper"
	"github.com/Broannn/BookNest-RestAPI/models"
	"github.com/Broannn/BookNest-RestAPI/services"
)

type BookController struct {
	bookService *services.BookService
	baseURL     string
}

func NewBookController(bookService *services.BookService, baseURL string) *BookController {
	return &BookController{
		bookService: bookService,
		baseURL:     baseURL,
	}
}

// parseBookRefs resolves the author and genre identifiers carried in a book
// payload. Writes a 400 and reports false on any malformed identifier.
func parseBookRefs(ctx *gin.Context, req *models.BookRequest) (primitive.ObjectID, []primitive.ObjectID, bool) {
	authorID, ok := parseHexID(ctx, "author_id", req.AuthorID)
	if !ok {
		return primitive.NilObjectID, nil, false
	}

	genreIDs := make([]primitive.ObjectID, 0, len(req.Genres))
	for _, hex := range req.Genres {
		genreID, ok := parseHexID(ctx, "genre id", hex)
		if !ok {
			return primitive.NilObjectID, nil, false
		}
		genreIDs = append(genreIDs, genreID)
	}
	return authorID, genreIDs, true
}

func (c *BookController) Create(ctx *gin.Context) {
	var req models.BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	authorID, genreIDs, ok := parseBookRefs(ctx, &req)
	if !ok {
		return
	}

	book, err := c.bookService.Create(ctx.Request.Context(), authorID, genreIDs, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Location", helper.Location(c.baseURL, "/api/books", book.ID.Hex()))
	ctx.JSON(http.StatusCreated, book)
}

func (c *BookController) List(ctx *gin.Context) {
	p := helper.ParsePagination(ctx)

	books, total, err := c.bookService.List(ctx.Request.Context(), p.Skip(), p.PageSize)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"books": books, "meta": p.Meta(total)})
}

func (c *BookController) Get(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "bookId")
	if !ok {
		return
	}

	book, err := c.bookService.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, book)
}

func (c *BookController) ListByGenre(ctx *gin.Context) {
	genreID, ok := parseObjectID(ctx, "genreId")
	if !ok {
		return
	}

	books, err := c.bookService.ListByGenre(ctx.Request.Context(), genreID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, books)
}

func (c *BookController) Update(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "bookId")
	if !ok {
		return
	}

	var req models.BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	authorID, genreIDs, ok := parseBookRefs(ctx, &req)
	if !ok {
		return
	}

	book, err := c.bookService.Update(ctx.Request.Context(), id, authorID, genreIDs, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, book)
}

func (c *BookController) Delete(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "bookId")
	if !ok {
		return
	}

	if err := c.bookService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
