package workflow

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/mq"
	"github.com/lin-hy/gangcheng-bnb/internal/service/domain"
	"github.com/lin-hy/gangcheng-bnb/internal/validation"
)

// Publisher pushes a message onto a queue.
type Publisher interface {
	Publish(queueName string, message any) error
}

type BookingWorkflow struct {
	BookingService domain.BookingService
	Publisher      Publisher
	Logger         *zap.Logger
}

func NewBookingWorkflow(bookingService domain.BookingService, publisher Publisher, logger *zap.Logger) *BookingWorkflow {
	return &BookingWorkflow{
		BookingService: bookingService,
		Publisher:      publisher,
		Logger:         logger,
	}
}

// Submit persists the booking, then queues the confirmation email. The
// booking is already committed by the time the publish happens, and a
// publish failure never propagates to the caller.
func (w *BookingWorkflow) Submit(form validation.BookingForm, dates validation.BookingDates, userID *uint) (*model.Booking, error) {
	booking, room, err := w.BookingService.Submit(form, dates, userID)
	if err != nil {
		return nil, err
	}

	message := mq.EmailNotificationMessage{
		To:      booking.GuestEmail,
		Subject: fmt.Sprintf("Booking Confirmation - %s", room.Name),
		Body:    bookingConfirmationBody(booking, room),
	}
	if err := w.Publisher.Publish(mq.NotificationQueue, message); err != nil {
		w.Logger.Warn("failed to queue booking confirmation email",
			zap.Uint("booking_id", booking.ID),
			zap.Error(err),
		)
	}

	return booking, nil
}

func bookingConfirmationBody(booking *model.Booking, room *model.Room) string {
	return fmt.Sprintf(`Dear %s,

Thank you for your booking request at Gangcheng B&B!

Booking Details:
- Room: %s
- Check-in: %s
- Check-out: %s
- Guests: %d
- Total: NT$ %.0f

Your booking is currently pending confirmation. We will contact you shortly to confirm availability.

Best regards,
Gangcheng B&B Team
`,
		booking.GuestName,
		room.Name,
		booking.CheckIn.Format("January 02, 2006"),
		booking.CheckOut.Format("January 02, 2006"),
		booking.NumGuests,
		booking.TotalPrice,
	)
}
