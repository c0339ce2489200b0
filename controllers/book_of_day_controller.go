package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Broannn/BookNest-RestAPI/middleware"
	"github.com/Broannn/BookNest-RestAPI/models"
	"github.com/Broannn/BookNest-RestAPI/services"
)

type BookOfDayController struct {
	bodService *services.BookOfDayService
}

func NewBookOfDayController(bodService *services.BookOfDayService) *BookOfDayController {
	return &BookOfDayController{bodService: bodService}
}

func (c *BookOfDayController) Add(ctx *gin.Context) {
	var req models.BookOfDayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	bookID, ok := parseHexID(ctx, "bookId", req.BookID)
	if !ok {
		return
	}

	bod, err := c.bodService.Add(ctx.Request.Context(), bookID, req.Date)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, bod)
}

func (c *BookOfDayController) List(ctx *gin.Context) {
	records, err := c.bodService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

func (c *BookOfDayController) Delete(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "bookOfDayId")
	if !ok {
		return
	}

	if err := c.bodService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddDiscussion appends the caller's entry to the parent's discussion thread.
func (c *BookOfDayController) AddDiscussion(ctx *gin.Context) {
	callerID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bodID, ok := parseObjectID(ctx, "bookOfDayId")
	if !ok {
		return
	}

	var req models.DiscussionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	discussion, err := c.bodService.AddDiscussion(ctx.Request.Context(), bodID, callerID, req.Content)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, discussion)
}

func (c *BookOfDayController) ListDiscussions(ctx *gin.Context) {
	bodID, ok := parseObjectID(ctx, "bookOfDayId")
	if !ok {
		return
	}

	discussions, err := c.bodService.ListDiscussions(ctx.Request.Context(), bodID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, discussions)
}
