package workflow

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/lin-hy/gangcheng-bnb/internal/mq"
)

// MailSender delivers a single notification email.
type MailSender interface {
	Send(to, subject, body string) error
}

// NotificationWorkflow drains the notification queue and hands each message
// to the mailer. Delivery is best-effort: a failed send is logged and the
// message is acked anyway, never retried and never surfaced to a request.
type NotificationWorkflow struct {
	mailer MailSender
	logger *zap.Logger
}

func NewNotificationWorkflow(mailer MailSender, logger *zap.Logger) *NotificationWorkflow {
	return &NotificationWorkflow{
		mailer: mailer,
		logger: logger,
	}
}

func (w *NotificationWorkflow) Start(mqConn *amqp.Connection) error {
	ch, err := mq.NewChannel(mqConn)
	if err != nil {
		return err
	}

	msgs, err := ch.Consume(mq.NotificationQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			w.handleNotification(msg)
		}
	}()

	return nil
}

func (w *NotificationWorkflow) handleNotification(msg amqp.Delivery) {
	var message mq.EmailNotificationMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		w.logger.Error("malformed notification message", zap.Error(err))
		msg.Nack(false, false)
		return
	}

	if err := w.mailer.Send(message.To, message.Subject, message.Body); err != nil {
		w.logger.Warn("email sending failed",
			zap.String("to", message.To),
			zap.String("subject", message.Subject),
			zap.Error(err),
		)
	}

	msg.Ack(false)
}
