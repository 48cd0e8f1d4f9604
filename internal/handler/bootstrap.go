package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lin-hy/gangcheng-bnb/internal/app"
)

type BootstrapHandler struct {
	app *app.App
}

func NewBootstrapHandler(app *app.App) *BootstrapHandler {
	return &BootstrapHandler{
		app: app,
	}
}

// InitDB seeds the sample rooms and the admin account once. Safe to call
// repeatedly; later calls are no-ops.
func (h *BootstrapHandler) InitDB(ctx *gin.Context) {
	created, err := h.app.BootstrapService.Seed()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database initialization failed"})
		return
	}

	if !created {
		ctx.JSON(http.StatusOK, gin.H{"message": "Database already initialized"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":       "Database initialized successfully",
		"rooms_added":   3,
		"admin_created": true,
	})
}
