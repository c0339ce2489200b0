package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Broannn/BookNest-RestAPI/helper"
	"github.com/Broannn/BookNest-RestAPI/models"
	"github.com/Broannn/BookNest-RestAPI/services"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

func (c *UserController) List(ctx *gin.Context) {
	p := helper.ParsePagination(ctx)

	users, total, err := c.userService.List(ctx.Request.Context(), p.Skip(), p.PageSize)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"users": users, "meta": p.Meta(total)})
}

func (c *UserController) Get(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}

	user, err := c.userService.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) Update(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	user, err := c.userService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) Delete(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}

	if err := c.userService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
