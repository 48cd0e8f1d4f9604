package workflow

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/mq"
	"github.com/lin-hy/gangcheng-bnb/internal/service/domain"
	"github.com/lin-hy/gangcheng-bnb/internal/validation"
)

type ContactWorkflow struct {
	ContactService domain.ContactService
	Publisher      Publisher
	InboxAddr      string // where contact notifications are delivered
	Logger         *zap.Logger
}

func NewContactWorkflow(contactService domain.ContactService, publisher Publisher, inboxAddr string, logger *zap.Logger) *ContactWorkflow {
	return &ContactWorkflow{
		ContactService: contactService,
		Publisher:      publisher,
		InboxAddr:      inboxAddr,
		Logger:         logger,
	}
}

// Submit stores the contact message and queues a best-effort notification
// to the house inbox.
func (w *ContactWorkflow) Submit(form validation.ContactForm) (*model.Contact, error) {
	contact, err := w.ContactService.Submit(form)
	if err != nil {
		return nil, err
	}

	subject := contact.Subject
	if subject == "" {
		subject = "New Message"
	}
	message := mq.EmailNotificationMessage{
		To:      w.InboxAddr,
		Subject: fmt.Sprintf("Contact Form: %s", subject),
		Body:    contactNotificationBody(contact),
	}
	if err := w.Publisher.Publish(mq.NotificationQueue, message); err != nil {
		w.Logger.Warn("failed to queue contact notification email",
			zap.Uint("contact_id", contact.ID),
			zap.Error(err),
		)
	}

	return contact, nil
}

func contactNotificationBody(contact *model.Contact) string {
	phone := contact.Phone
	if phone == "" {
		phone = "Not provided"
	}
	return fmt.Sprintf(`New contact form submission:

Name: %s
Email: %s
Phone: %s

Message:
%s
`,
		contact.Name,
		contact.Email,
		phone,
		contact.Message,
	)
}
