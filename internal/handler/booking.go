package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lin-hy/gangcheng-bnb/internal/app"
	"github.com/lin-hy/gangcheng-bnb/internal/middleware"
	"github.com/lin-hy/gangcheng-bnb/internal/service"
	"github.com/lin-hy/gangcheng-bnb/internal/validation"
)

type BookingHandler struct {
	app *app.App
}

func NewBookingHandler(app *app.App) *BookingHandler {
	return &BookingHandler{
		app: app,
	}
}

func (h *BookingHandler) HandleBooking(ctx *gin.Context) {
	var form validation.BookingForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	dates, errs := validation.ValidateBooking(form, time.Now().UTC())
	if !errs.Empty() {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  errs,
		})
		return
	}

	// Anonymous guests may book; a logged-in session just gets attached.
	var userID *uint
	if user, ok := middleware.CurrentUser(ctx); ok {
		userID = &user.ID
	}

	booking, err := h.app.BookingWorkflow.Submit(form, dates, userID)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) || errors.Is(err, service.ErrRoomUnavailable) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Room not available",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to process booking, please try again later",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Booking request received. Check your email for confirmation.",
		"booking_id":  booking.ID,
		"total_price": booking.TotalPrice,
	})
}
