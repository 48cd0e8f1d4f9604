package mq

// Queue names and message definitions

// immediate queue carrying outbound notification emails
// booking and contact submissions publish here; the mail consumer drains it
const (
	NotificationQueue = "notification.email.send"
)

type EmailNotificationMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
