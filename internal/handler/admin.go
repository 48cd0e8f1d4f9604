package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lin-hy/gangcheng-bnb/internal/app"
	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/service"
	"github.com/lin-hy/gangcheng-bnb/internal/service/domain"
)

type AdminHandler struct {
	app *app.App
}

func NewAdminHandler(app *app.App) *AdminHandler {
	return &AdminHandler{
		app: app,
	}
}

func idParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
		return 0, false
	}
	return uint(id), true
}

type dashboardStats struct {
	TotalBookings   int64 `json:"total_bookings"`
	PendingBookings int64 `json:"pending_bookings"`
	NewContacts     int64 `json:"new_contacts"`
	TotalUsers      int64 `json:"total_users"`
}

func (h *AdminHandler) Dashboard(ctx *gin.Context) {
	bookings, err := h.app.BookingService.GetAllBookings()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	contacts, err := h.app.ContactService.GetAllContacts()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	rooms, err := h.app.RoomService.GetAllRooms()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	users, err := h.app.UserRepo.ListAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var stats dashboardStats
	if stats.TotalBookings, err = h.app.BookingService.CountBookings(); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if stats.PendingBookings, err = h.app.BookingService.CountBookingsByStatus(model.BookingStatusPending); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if stats.NewContacts, err = h.app.ContactService.CountNewContacts(); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if stats.TotalUsers, err = h.app.UserRepo.Count(); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"contacts": contacts,
		"rooms":    rooms,
		"users":    users,
		"stats":    stats,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func validBookingStatus(s string) bool {
	switch model.BookingStatus(s) {
	case model.BookingStatusPending, model.BookingStatusConfirmed,
		model.BookingStatusCancelled, model.BookingStatusCompleted:
		return true
	}
	return false
}

func (h *AdminHandler) UpdateBookingStatus(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || !validBookingStatus(req.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	if err := h.app.BookingService.UpdateBookingStatus(id, model.BookingStatus(req.Status)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Update failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "status": req.Status})
}

func (h *AdminHandler) DeleteBooking(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := h.app.BookingService.DeleteBooking(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Delete failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

type createRoomRequest struct {
	Name          string  `json:"name"`
	RoomType      string  `json:"room_type"`
	Description   string  `json:"description"`
	PricePerNight float64 `json:"price_per_night"`
	MaxGuests     int     `json:"max_guests"`
	Amenities     string  `json:"amenities"`
	ImageURL      string  `json:"image_url"`
	IsAvailable   *bool   `json:"is_available"`
	IsFeatured    bool    `json:"is_featured"`
}

func (h *AdminHandler) CreateRoom(ctx *gin.Context) {
	var req createRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}
	if req.Name == "" || req.RoomType == "" || req.PricePerNight <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "name, room_type and a positive price_per_night are required"})
		return
	}

	room := &model.Room{
		Name:          req.Name,
		RoomType:      req.RoomType,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Amenities:     req.Amenities,
		ImageURL:      req.ImageURL,
		IsAvailable:   true,
		IsFeatured:    req.IsFeatured,
	}
	if req.MaxGuests == 0 {
		room.MaxGuests = 2
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}

	if err := h.app.RoomService.CreateRoom(room); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Create failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "room_id": room.ID})
}

func (h *AdminHandler) UpdateRoom(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var update domain.RoomUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	if _, err := h.app.RoomService.UpdateRoom(id, update); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Room not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Update failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteRoom also deletes every booking of the room.
func (h *AdminHandler) DeleteRoom(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := h.app.RoomService.DeleteRoom(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Room not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Delete failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func validContactStatus(s string) bool {
	switch model.ContactStatus(s) {
	case model.ContactStatusNew, model.ContactStatusRead, model.ContactStatusReplied:
		return true
	}
	return false
}

func (h *AdminHandler) UpdateContactStatus(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || !validContactStatus(req.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	if err := h.app.ContactService.UpdateContactStatus(id, model.ContactStatus(req.Status)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Contact not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Update failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "status": req.Status})
}

func (h *AdminHandler) DeleteContact(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := h.app.ContactService.DeleteContact(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Contact not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Delete failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
