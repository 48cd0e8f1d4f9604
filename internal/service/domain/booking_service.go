package domain

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/repository"
	"github.com/lin-hy/gangcheng-bnb/internal/service"
	"github.com/lin-hy/gangcheng-bnb/internal/validation"
)

type BookingService interface {
	Submit(form validation.BookingForm, dates validation.BookingDates, userID *uint) (*model.Booking, *model.Room, error)
	GetBookingByID(id uint) (*model.Booking, error)
	GetBookingsByUserID(userID uint) ([]model.Booking, error)
	GetAllBookings() ([]model.Booking, error)
	UpdateBookingStatus(id uint, status model.BookingStatus) error
	DeleteBooking(id uint) error
	CountBookings() (int64, error)
	CountBookingsByStatus(status model.BookingStatus) (int64, error)
}

type bookingService struct {
	db       *gorm.DB
	repo     repository.BookingRepo
	roomRepo repository.RoomRepo
}

var _ BookingService = (*bookingService)(nil)

func NewBookingService(db *gorm.DB, bookingRepo repository.BookingRepo, roomRepo repository.RoomRepo) *bookingService {
	return &bookingService{
		db:       db,
		repo:     bookingRepo,
		roomRepo: roomRepo,
	}
}

// Submit admits a validated booking request: it checks the room's
// availability gate, prices the stay and persists the booking atomically.
// Guest details are taken verbatim from the form even for logged-in users.
//
// Known gap carried over from the original system: nothing prevents two
// bookings with overlapping date ranges for the same room.
func (s *bookingService) Submit(form validation.BookingForm, dates validation.BookingDates, userID *uint) (*model.Booking, *model.Room, error) {
	room, err := s.roomRepo.GetByID(form.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, service.ErrRoomNotFound
		}
		return nil, nil, err
	}
	if !room.IsAvailable {
		return nil, nil, service.ErrRoomUnavailable
	}

	nights := int(dates.CheckOut.Sub(dates.CheckIn).Hours() / 24)
	totalPrice := float64(nights) * room.PricePerNight

	booking := &model.Booking{
		UserID:          userID,
		RoomID:          room.ID,
		GuestName:       form.GuestName,
		GuestEmail:      form.GuestEmail,
		GuestPhone:      form.GuestPhone,
		CheckIn:         dates.CheckIn,
		CheckOut:        dates.CheckOut,
		NumGuests:       form.NumGuests,
		TotalPrice:      totalPrice,
		Status:          model.BookingStatusPending,
		SpecialRequests: form.SpecialRequests,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(booking)
	}); err != nil {
		return nil, nil, err
	}

	return booking, room, nil
}

func (s *bookingService) GetBookingByID(id uint) (*model.Booking, error) {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetBookingsByUserID(userID uint) ([]model.Booking, error) {
	return s.repo.ListByUserID(userID)
}

func (s *bookingService) GetAllBookings() ([]model.Booking, error) {
	return s.repo.ListAll()
}

func (s *bookingService) UpdateBookingStatus(id uint, status model.BookingStatus) error {
	if err := s.repo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *bookingService) DeleteBooking(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *bookingService) CountBookings() (int64, error) {
	return s.repo.Count()
}

func (s *bookingService) CountBookingsByStatus(status model.BookingStatus) (int64, error) {
	return s.repo.CountByStatus(status)
}
