package domain

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/repository"
	"github.com/lin-hy/gangcheng-bnb/internal/service"
)

// RoomUpdate carries the fields of an admin room edit. Nil pointers leave
// the stored value untouched.
type RoomUpdate struct {
	Name          *string  `json:"name"`
	RoomType      *string  `json:"room_type"`
	Description   *string  `json:"description"`
	PricePerNight *float64 `json:"price_per_night"`
	MaxGuests     *int     `json:"max_guests"`
	Amenities     *string  `json:"amenities"`
	ImageURL      *string  `json:"image_url"`
	IsAvailable   *bool    `json:"is_available"`
	IsFeatured    *bool    `json:"is_featured"`
}

type RoomService interface {
	GetRoomByID(id uint) (*model.Room, error)
	GetAllRooms() ([]model.Room, error)
	GetAvailableRooms() ([]model.Room, error)
	GetFeaturedRooms() ([]model.Room, error)
	CreateRoom(room *model.Room) error
	UpdateRoom(id uint, update RoomUpdate) (*model.Room, error)
	DeleteRoom(id uint) error
}

type roomService struct {
	db   *gorm.DB
	repo repository.RoomRepo
}

var _ RoomService = (*roomService)(nil)

func NewRoomService(db *gorm.DB, roomRepo repository.RoomRepo) *roomService {
	return &roomService{
		db:   db,
		repo: roomRepo,
	}
}

func (s *roomService) GetRoomByID(id uint) (*model.Room, error) {
	room, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *roomService) GetAllRooms() ([]model.Room, error) {
	return s.repo.ListAll()
}

func (s *roomService) GetAvailableRooms() ([]model.Room, error) {
	return s.repo.ListAvailable()
}

func (s *roomService) GetFeaturedRooms() ([]model.Room, error) {
	return s.repo.ListFeatured()
}

func (s *roomService) CreateRoom(room *model.Room) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(room)
	})
}

func (s *roomService) UpdateRoom(id uint, update RoomUpdate) (*model.Room, error) {
	room, err := s.GetRoomByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		room.Name = *update.Name
	}
	if update.RoomType != nil {
		room.RoomType = *update.RoomType
	}
	if update.Description != nil {
		room.Description = *update.Description
	}
	if update.PricePerNight != nil {
		room.PricePerNight = *update.PricePerNight
	}
	if update.MaxGuests != nil {
		room.MaxGuests = *update.MaxGuests
	}
	if update.Amenities != nil {
		room.Amenities = *update.Amenities
	}
	if update.ImageURL != nil {
		room.ImageURL = *update.ImageURL
	}
	if update.IsAvailable != nil {
		room.IsAvailable = *update.IsAvailable
	}
	if update.IsFeatured != nil {
		room.IsFeatured = *update.IsFeatured
	}

	if err := s.repo.Update(room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes the room and all bookings that reference it.
func (s *roomService) DeleteRoom(id uint) error {
	if _, err := s.GetRoomByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
