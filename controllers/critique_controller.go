package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Broannn/BookNest-RestAPI/middleware"
	"github.com/Broannn/BookNest-RestAPI/models"
	"github.com/Broannn/BookNest-RestAPI/services"
)

type CritiqueController struct {
	critiqueService *services.CritiqueService
}

func NewCritiqueController(critiqueService *services.CritiqueService) *CritiqueController {
	return &CritiqueController{critiqueService: critiqueService}
}

// Add creates the caller's critique of the book. A second critique for the
// same (caller, book) pair is a 409.
func (c *CritiqueController) Add(ctx *gin.Context) {
	callerID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookID, ok := parseObjectID(ctx, "bookId")
	if !ok {
		return
	}

	var req models.CritiqueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	critique, err := c.critiqueService.Add(ctx.Request.Context(), callerID, bookID, req.Rating, req.Comment)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, critique)
}

func (c *CritiqueController) ListByBook(ctx *gin.Context) {
	bookID, ok := parseObjectID(ctx, "bookId")
	if !ok {
		return
	}

	critiques, err := c.critiqueService.ListByBook(ctx.Request.Context(), bookID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, critiques)
}

// GetByUserAndBook returns the single critique for the pair, or a 404.
func (c *CritiqueController) GetByUserAndBook(ctx *gin.Context) {
	bookID, ok := parseObjectID(ctx, "bookId")
	if !ok {
		return
	}
	userID, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}

	critique, err := c.critiqueService.GetByUserAndBook(ctx.Request.Context(), userID, bookID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, critique)
}

func (c *CritiqueController) Update(ctx *gin.Context) {
	callerID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	critiqueID, ok := parseObjectID(ctx, "critiqueId")
	if !ok {
		return
	}

	var req models.CritiqueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	critique, err := c.critiqueService.Update(ctx.Request.Context(), callerID, critiqueID, req.Rating, req.Comment)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, critique)
}

func (c *CritiqueController) Delete(ctx *gin.Context) {
	callerID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	critiqueID, ok := parseObjectID(ctx, "critiqueId")
	if !ok {
		return
	}

	if err := c.critiqueService.Delete(ctx.Request.Context(), callerID, critiqueID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
