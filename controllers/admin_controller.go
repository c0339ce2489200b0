package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Resetter wipes every collection; implemented by the database layer.
type Resetter interface {
	Reset(ctx context.Context) error
}

type AdminController struct {
	store Resetter
}

func NewAdminController(store Resetter) *AdminController {
	return &AdminController{store: store}
}

// Reset empties the whole database. Guarded by the static admin token.
func (c *AdminController) Reset(ctx *gin.Context) {
	if err := c.store.Reset(ctx.Request.Context()); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
