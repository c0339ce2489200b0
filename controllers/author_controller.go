package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Broannn/BookNest-RestAPI/helper"
	"github.com/Broannn/BookNest-RestAPI/models"
	"github.com/Broannn/BookNest-RestAPI/services"
)

type AuthorController struct {
	authorService *services.AuthorService
	baseURL       string
}

func NewAuthorController(authorService *services.AuthorService, baseURL string) *AuthorController {
	return &AuthorController{
		authorService: authorService,
		baseURL:       baseURL,
	}
}

func (c *AuthorController) Create(ctx *gin.Context) {
	var req models.AuthorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	author, err := c.authorService.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Location", helper.Location(c.baseURL, "/api/authors", author.ID.Hex()))
	ctx.JSON(http.StatusCreated, author)
}

func (c *AuthorController) List(ctx *gin.Context) {
	p := helper.ParsePagination(ctx)

	authors, total, err := c.authorService.List(ctx.Request.Context(), p.Skip(), p.PageSize)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"authors": authors, "meta": p.Meta(total)})
}

func (c *AuthorController) Get(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	author, err := c.authorService.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, author)
}

func (c *AuthorController) Update(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	var req models.AuthorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	author, err := c.authorService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, author)
}

func (c *AuthorController) Delete(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	if err := c.authorService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
