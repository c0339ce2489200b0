package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Broannn/BookNest-RestAPI/models"
	"github.com/Broannn/BookNest-RestAPI/services"
)

// UserBookController serves the favorites, wishlist and already-read
// sub-resources of a user; the three share every handler.
type UserBookController struct {
	favorites   *services.UserBookService
	wishlist    *services.UserBookService
	alreadyRead *services.UserBookService
}

func NewUserBookController(favorites, wishlist, alreadyRead *services.UserBookService) *UserBookController {
	return &UserBookController{
		favorites:   favorites,
		wishlist:    wishlist,
		alreadyRead: alreadyRead,
	}
}

// mark inserts the fact. The first mark answers 201; marking again is
// idempotent and answers 200 with the existing fact.
func (c *UserBookController) mark(ctx *gin.Context, svc *services.UserBookService) {
	userID, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}

	var req models.UserBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	bookID, ok := parseHexID(ctx, "bookId", req.BookID)
	if !ok {
		return
	}

	fact, created, err := svc.Mark(ctx.Request.Context(), userID, bookID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, fact)
}

func (c *UserBookController) list(ctx *gin.Context, svc *services.UserBookService) {
	userID, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}

	entries, err := svc.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

func (c *UserBookController) remove(ctx *gin.Context, svc *services.UserBookService) {
	userID, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}
	bookID, ok := parseObjectID(ctx, "bookId")
	if !ok {
		return
	}

	if err := svc.Remove(ctx.Request.Context(), userID, bookID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *UserBookController) MarkFavorite(ctx *gin.Context)  { c.mark(ctx, c.favorites) }
func (c *UserBookController) ListFavorites(ctx *gin.Context) { c.list(ctx, c.favorites) }
func (c *UserBookController) RemoveFavorite(ctx *gin.Context) {
	c.remove(ctx, c.favorites)
}

func (c *UserBookController) AddToWishlist(ctx *gin.Context) { c.mark(ctx, c.wishlist) }
func (c *UserBookController) ListWishlist(ctx *gin.Context)  { c.list(ctx, c.wishlist) }
func (c *UserBookController) RemoveFromWishlist(ctx *gin.Context) {
	c.remove(ctx, c.wishlist)
}

func (c *UserBookController) MarkAsRead(ctx *gin.Context)  { c.mark(ctx, c.alreadyRead) }
func (c *UserBookController) ListRead(ctx *gin.Context)    { c.list(ctx, c.alreadyRead) }
func (c *UserBookController) RemoveFromRead(ctx *gin.Context) {
	c.remove(ctx, c.alreadyRead)
}

// ListReaders answers "who read this book" from the already-read facts.
func (c *UserBookController) ListReaders(ctx *gin.Context) {
	bookID, ok := parseObjectID(ctx, "bookId")
	if !ok {
		return
	}

	readers, err := c.alreadyRead.ListReaders(ctx.Request.Context(), bookID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, readers)
}
