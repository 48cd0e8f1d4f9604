package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/repository"
	"github.com/lin-hy/gangcheng-bnb/internal/service"
	"github.com/lin-hy/gangcheng-bnb/internal/validation"
)

func newBookingService(db *gorm.DB) *bookingService {
	return NewBookingService(db, repository.NewBookingRepoGorm(db), repository.NewRoomRepoGorm(db))
}

func seedRoom(t *testing.T, db *gorm.DB, price float64, available bool) *model.Room {
	t.Helper()
	room := &model.Room{
		Name:          "Mountain View Suite",
		RoomType:      "Double",
		Description:   "test room",
		PricePerNight: price,
		MaxGuests:     2,
		IsAvailable:   available,
	}
	require.NoError(t, repository.NewRoomRepoGorm(db).Create(room))
	return room
}

func bookingForm(roomID uint) validation.BookingForm {
	return validation.BookingForm{
		RoomID:     roomID,
		GuestName:  "Mei Lin",
		GuestEmail: "mei@example.com",
		GuestPhone: "0912345678",
		NumGuests:  2,
	}
}

func stayDates(checkIn, checkOut string) validation.BookingDates {
	in, _ := time.Parse(validation.DateLayout, checkIn)
	out, _ := time.Parse(validation.DateLayout, checkOut)
	return validation.BookingDates{CheckIn: in, CheckOut: out}
}

func TestBookingService_Submit_PricesWholeNights(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	room := seedRoom(t, db, 3500, true)

	booking, gotRoom, err := svc.Submit(bookingForm(room.ID), stayDates("2025-06-01", "2025-06-04"), nil)
	require.NoError(t, err)

	assert.Equal(t, room.ID, gotRoom.ID)
	assert.Equal(t, float64(10500), booking.TotalPrice) // 3 nights x 3500
	assert.Equal(t, model.BookingStatusPending, booking.Status)
	assert.Nil(t, booking.UserID)
	assert.NotZero(t, booking.ID)

	stored, err := svc.GetBookingByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(10500), stored.TotalPrice)
	assert.Equal(t, "Mei Lin", stored.GuestName)
}

func TestBookingService_Submit_RoomUnavailable(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	room := seedRoom(t, db, 3000, false)

	_, _, err := svc.Submit(bookingForm(room.ID), stayDates("2025-06-01", "2025-06-02"), nil)
	assert.ErrorIs(t, err, service.ErrRoomUnavailable)

	count, err := svc.CountBookings()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBookingService_Submit_RoomMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)

	_, _, err := svc.Submit(bookingForm(42), stayDates("2025-06-01", "2025-06-02"), nil)
	assert.ErrorIs(t, err, service.ErrRoomNotFound)

	count, err := svc.CountBookings()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBookingService_Submit_AttachesSessionUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	room := seedRoom(t, db, 3000, true)

	userID := uint(7)
	booking, _, err := svc.Submit(bookingForm(room.ID), stayDates("2025-06-01", "2025-06-02"), &userID)
	require.NoError(t, err)

	require.NotNil(t, booking.UserID)
	assert.Equal(t, uint(7), *booking.UserID)
	// guest fields come from the form even for a logged-in user
	assert.Equal(t, "mei@example.com", booking.GuestEmail)
}

// Pins the known gap: nothing prevents overlapping stays for the same room.
func TestBookingService_Submit_OverlappingStaysBothAccepted(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	room := seedRoom(t, db, 3000, true)

	_, _, err := svc.Submit(bookingForm(room.ID), stayDates("2025-06-01", "2025-06-05"), nil)
	require.NoError(t, err)
	_, _, err = svc.Submit(bookingForm(room.ID), stayDates("2025-06-03", "2025-06-06"), nil)
	require.NoError(t, err)

	count, err := svc.CountBookings()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestBookingService_StatusLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	room := seedRoom(t, db, 3000, true)

	booking, _, err := svc.Submit(bookingForm(room.ID), stayDates("2025-06-01", "2025-06-02"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateBookingStatus(booking.ID, model.BookingStatusConfirmed))
	stored, err := svc.GetBookingByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, stored.Status)

	assert.ErrorIs(t, svc.UpdateBookingStatus(999, model.BookingStatusCancelled), service.ErrNotFound)
}

func TestBookingService_Delete(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	room := seedRoom(t, db, 3000, true)

	booking, _, err := svc.Submit(bookingForm(room.ID), stayDates("2025-06-01", "2025-06-02"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(booking.ID))
	_, err = svc.GetBookingByID(booking.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteBooking(booking.ID), service.ErrNotFound)
}

func TestBookingService_ListByUserNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	room := seedRoom(t, db, 3000, true)

	userID := uint(3)
	first, _, err := svc.Submit(bookingForm(room.ID), stayDates("2025-06-01", "2025-06-02"), &userID)
	require.NoError(t, err)
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)
	second, _, err := svc.Submit(bookingForm(room.ID), stayDates("2025-07-01", "2025-07-02"), &userID)
	require.NoError(t, err)

	bookings, err := svc.GetBookingsByUserID(userID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, second.ID, bookings[0].ID)
	assert.Equal(t, first.ID, bookings[1].ID)
}
