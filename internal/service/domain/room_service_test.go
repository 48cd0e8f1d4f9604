package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/repository"
	"github.com/lin-hy/gangcheng-bnb/internal/service"
)

func newRoomService(db *gorm.DB) *roomService {
	return NewRoomService(db, repository.NewRoomRepoGorm(db))
}

func TestRoomService_GetByID(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	room := seedRoom(t, db, 3500, true)

	got, err := svc.GetRoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.Name, got.Name)

	_, err = svc.GetRoomByID(99)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRoomService_FeaturedRequiresAvailable(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	repo := repository.NewRoomRepoGorm(db)

	require.NoError(t, repo.Create(&model.Room{Name: "A", RoomType: "Double", Description: "d", PricePerNight: 1000, IsAvailable: true, IsFeatured: true}))
	require.NoError(t, repo.Create(&model.Room{Name: "B", RoomType: "Double", Description: "d", PricePerNight: 1000, IsAvailable: false, IsFeatured: true}))
	require.NoError(t, repo.Create(&model.Room{Name: "C", RoomType: "Double", Description: "d", PricePerNight: 1000, IsAvailable: true, IsFeatured: false}))

	featured, err := svc.GetFeaturedRooms()
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "A", featured[0].Name)

	available, err := svc.GetAvailableRooms()
	require.NoError(t, err)
	assert.Len(t, available, 2)
}

func TestRoomService_PartialUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	room := seedRoom(t, db, 3500, true)

	newPrice := 4200.0
	unavailable := false
	updated, err := svc.UpdateRoom(room.ID, RoomUpdate{PricePerNight: &newPrice, IsAvailable: &unavailable})
	require.NoError(t, err)

	assert.Equal(t, 4200.0, updated.PricePerNight)
	assert.False(t, updated.IsAvailable)
	// untouched fields keep their values
	assert.Equal(t, room.Name, updated.Name)
	assert.Equal(t, room.MaxGuests, updated.MaxGuests)

	_, err = svc.UpdateRoom(99, RoomUpdate{PricePerNight: &newPrice})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRoomService_DeleteCascadesBookings(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	room := seedRoom(t, db, 3000, true)
	other := seedRoom(t, db, 3000, true)

	bookingSvc := newBookingService(db)
	_, _, err := bookingSvc.Submit(bookingForm(room.ID), stayDates("2025-06-01", "2025-06-02"), nil)
	require.NoError(t, err)
	keep, _, err := bookingSvc.Submit(bookingForm(other.ID), stayDates("2025-06-01", "2025-06-02"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRoom(room.ID))

	_, err = svc.GetRoomByID(room.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	count, err := bookingSvc.CountBookings()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = bookingSvc.GetBookingByID(keep.ID)
	assert.NoError(t, err)
}
