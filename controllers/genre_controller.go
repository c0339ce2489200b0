package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Broannn/BookNest-RestAPI/helper"
	"github.com/Broannn/BookNest-RestAPI/models"
	"github.com/Broannn/BookNest-RestAPI/services"
)

type GenreController struct {
	genreService *services.GenreService
	baseURL      string
}

func NewGenreController(genreService *services.GenreService, baseURL string) *GenreController {
	return &GenreController{
		genreService: genreService,
		baseURL:      baseURL,
	}
}

func (c *GenreController) Create(ctx *gin.Context) {
	var req models.GenreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	genre, err := c.genreService.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Location", helper.Location(c.baseURL, "/api/genres", genre.ID.Hex()))
	ctx.JSON(http.StatusCreated, genre)
}

func (c *GenreController) List(ctx *gin.Context) {
	p := helper.ParsePagination(ctx)

	genres, total, err := c.genreService.List(ctx.Request.Context(), p.Skip(), p.PageSize)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"genres": genres, "meta": p.Meta(total)})
}

func (c *GenreController) Get(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	genre, err := c.genreService.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, genre)
}

func (c *GenreController) Update(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	var req models.GenreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	genre, err := c.genreService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, genre)
}

func (c *GenreController) Delete(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	if err := c.genreService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
