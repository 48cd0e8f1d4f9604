package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lin-hy/gangcheng-bnb/internal/app"
	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/service"
)

type PublicHandler struct {
	app *app.App
}

func NewPublicHandler(app *app.App) *PublicHandler {
	return &PublicHandler{
		app: app,
	}
}

// Index lists the rooms promoted on the homepage.
func (h *PublicHandler) Index(ctx *gin.Context) {
	rooms, err := h.app.RoomService.GetFeaturedRooms()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

func (h *PublicHandler) AllRooms(ctx *gin.Context) {
	rooms, err := h.app.RoomService.GetAllRooms()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

func (h *PublicHandler) RoomDetail(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Room not found"})
		return
	}
	room, err := h.app.RoomService.GetRoomByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Room not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"room": room})
}

type roomResponse struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities"`
	PricePerNight float64  `json:"price_per_night"`
	Image         string   `json:"image"`
}

// APIRooms returns the available rooms; an empty store falls back to the
// built-in sample set so the frontend always has something to render.
func (h *PublicHandler) APIRooms(ctx *gin.Context) {
	rooms, err := h.app.RoomService.GetAvailableRooms()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if len(rooms) == 0 {
		ctx.JSON(http.StatusOK, fallbackRooms())
		return
	}

	resp := make([]roomResponse, 0, len(rooms))
	for i := range rooms {
		resp = append(resp, toRoomResponse(&rooms[i]))
	}
	ctx.JSON(http.StatusOK, resp)
}

func toRoomResponse(room *model.Room) roomResponse {
	return roomResponse{
		ID:            room.ID,
		Name:          room.Name,
		Type:          room.RoomType,
		Description:   room.Description,
		Amenities:     room.AmenityList(),
		PricePerNight: room.PricePerNight,
		Image:         room.ImageURL,
	}
}

func fallbackRooms() []roomResponse {
	return []roomResponse{
		{
			ID:            1,
			Name:          "Mountain View Suite",
			Type:          "Double",
			Description:   "Panoramic views of the Central Mountain Range with private balcony.",
			Amenities:     []string{"wifi", "ac_unit", "bathtub"},
			PricePerNight: 3500,
		},
		{
			ID:            2,
			Name:          "Garden Room",
			Type:          "Queen",
			Description:   "Direct access to our lush private gardens, perfect for morning meditation.",
			Amenities:     []string{"wifi", "ac_unit", "yard"},
			PricePerNight: 3000,
		},
		{
			ID:            3,
			Name:          "Family Villa",
			Type:          "Family",
			Description:   "Spacious accommodation for the whole family with separate living area.",
			Amenities:     []string{"wifi", "kitchen", "tv"},
			PricePerNight: 5000,
		},
	}
}
