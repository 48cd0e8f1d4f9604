package workflow

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/mq"
	"github.com/lin-hy/gangcheng-bnb/internal/repository"
	"github.com/lin-hy/gangcheng-bnb/internal/service"
	"github.com/lin-hy/gangcheng-bnb/internal/service/domain"
	"github.com/lin-hy/gangcheng-bnb/internal/validation"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(queueName string, message any) error {
	args := m.Called(queueName, message)
	return args.Error(0)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Room{}, &model.Booking{}, &model.Contact{}))

	return db
}

func seedRoom(t *testing.T, db *gorm.DB, available bool) *model.Room {
	t.Helper()
	room := &model.Room{
		Name:          "Garden Room",
		RoomType:      "Queen",
		Description:   "test room",
		PricePerNight: 3000,
		IsAvailable:   available,
	}
	require.NoError(t, repository.NewRoomRepoGorm(db).Create(room))
	return room
}

func bookingFixtures(roomID uint) (validation.BookingForm, validation.BookingDates) {
	form := validation.BookingForm{
		RoomID:     roomID,
		GuestName:  "Mei Lin",
		GuestEmail: "mei@example.com",
		GuestPhone: "0912345678",
		NumGuests:  2,
	}
	dates := validation.BookingDates{
		CheckIn:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	}
	return form, dates
}

func TestBookingWorkflow_SubmitQueuesConfirmation(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, true)
	svc := domain.NewBookingService(db, repository.NewBookingRepoGorm(db), repository.NewRoomRepoGorm(db))

	publisher := &MockPublisher{}
	publisher.On("Publish", mq.NotificationQueue, mock.MatchedBy(func(msg mq.EmailNotificationMessage) bool {
		return msg.To == "mei@example.com" &&
			strings.Contains(msg.Subject, "Garden Room") &&
			strings.Contains(msg.Body, "NT$ 9000")
	})).Return(nil).Once()

	w := NewBookingWorkflow(svc, publisher, zap.NewNop())
	form, dates := bookingFixtures(room.ID)

	booking, err := w.Submit(form, dates, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(9000), booking.TotalPrice)

	publisher.AssertExpectations(t)
}

func TestBookingWorkflow_PublishFailureDoesNotFailBooking(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, true)
	svc := domain.NewBookingService(db, repository.NewBookingRepoGorm(db), repository.NewRoomRepoGorm(db))

	publisher := &MockPublisher{}
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	w := NewBookingWorkflow(svc, publisher, zap.NewNop())
	form, dates := bookingFixtures(room.ID)

	booking, err := w.Submit(form, dates, nil)
	require.NoError(t, err)
	assert.NotZero(t, booking.ID)

	// the booking is durable even though the notification never went out
	stored, err := svc.GetBookingByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusPending, stored.Status)
}

func TestBookingWorkflow_NoNotificationOnRejectedBooking(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, false)
	svc := domain.NewBookingService(db, repository.NewBookingRepoGorm(db), repository.NewRoomRepoGorm(db))

	publisher := &MockPublisher{}

	w := NewBookingWorkflow(svc, publisher, zap.NewNop())
	form, dates := bookingFixtures(room.ID)

	_, err := w.Submit(form, dates, nil)
	assert.ErrorIs(t, err, service.ErrRoomUnavailable)

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestContactWorkflow_SubmitNotifiesInbox(t *testing.T) {
	db := setupTestDB(t)
	svc := domain.NewContactService(db, repository.NewContactRepoGorm(db))

	publisher := &MockPublisher{}
	publisher.On("Publish", mq.NotificationQueue, mock.MatchedBy(func(msg mq.EmailNotificationMessage) bool {
		return msg.To == "inbox@gangcheng.com" && msg.Subject == "Contact Form: New Message"
	})).Return(nil).Once()

	w := NewContactWorkflow(svc, publisher, "inbox@gangcheng.com", zap.NewNop())

	contact, err := w.Submit(validation.ContactForm{
		Name:    "Mei Lin",
		Email:   "mei@example.com",
		Message: "Do you allow late check-in?",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ContactStatusNew, contact.Status)

	publisher.AssertExpectations(t)
}
