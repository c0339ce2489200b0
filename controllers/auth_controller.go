package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Broannn/BookNest-RestAPI/helper"
	"github.com/Broannn/BookNest-RestAPI/models"
	"github.com/Broannn/BookNest-RestAPI/services"
)

type AuthController struct {
	authService *services.AuthService
	baseURL     string
}

func NewAuthController(authService *services.AuthService, baseURL string) *AuthController {
	return &AuthController{
		authService: authService,
		baseURL:     baseURL,
	}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.Header("Location", helper.Location(c.baseURL, "/api/users", user.ID.Hex()))
	ctx.JSON(http.StatusCreated, user)
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}
