package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lin-hy/gangcheng-bnb/internal/app"
	"github.com/lin-hy/gangcheng-bnb/internal/validation"
)

type ContactHandler struct {
	app *app.App
}

func NewContactHandler(app *app.App) *ContactHandler {
	return &ContactHandler{
		app: app,
	}
}

func (h *ContactHandler) HandleContact(ctx *gin.Context) {
	var form validation.ContactForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	if errs := validation.ValidateContact(form); !errs.Empty() {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  errs,
		})
		return
	}

	if _, err := h.app.ContactWorkflow.Submit(form); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to save your message, please try again later",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for contacting us. We will respond shortly.",
	})
}
