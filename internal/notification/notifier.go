package notification

import (
	"context"
	"fmt"
	"time"

	"studio-booking/pkg/utils"

	"go.uber.org/zap"
)

// Notifier delivers studio notifications. Delivery is best-effort: failures
// are logged and never surfaced to the caller, so a broken bot token cannot
// fail a booking or a contact form submission.
type Notifier interface {
	ContactMessage(ctx context.Context, name, email, subject, message string)
	BookingConfirmed(ctx context.Context, courseTitle string, date time.Time, clientName, clientEmail string)
	BookingReminder(ctx context.Context, courseTitle string, date time.Time, clientName, clientEmail string)
}

type studioNotifier struct {
	telegram *TelegramNotifier
	email    *EmailSender
	contact  string
	log      *zap.Logger
}

// NewNotifier builds the production notifier: Telegram messages to the studio
// chat plus transactional emails. Channels with missing credentials run in
// disabled mode and only log.
func NewNotifier(config utils.NotificationConfig, log *zap.Logger) Notifier {
	return &studioNotifier{
		telegram: NewTelegramNotifier(config.TelegramBotToken, config.TelegramChatID, log),
		email:    NewEmailSender(config.ResendAPIKey, config.FromEmail, log),
		contact:  config.ContactEmail,
		log:      log.With(zap.String("service", "notification")),
	}
}

const slotTimeLayout = "Monday 2 January 2006, 15:04"

func (n *studioNotifier) ContactMessage(ctx context.Context, name, email, subject, message string) {
	text := fmt.Sprintf(
		"*New contact message*\nFrom: %s (%s)\nSubject: %s\n\n%s",
		name, email, subject, message,
	)
	n.telegram.Send(ctx, text)

	if n.contact != "" {
		html := fmt.Sprintf(
			"<p><strong>From:</strong> %s (%s)</p><p><strong>Subject:</strong> %s</p><p>%s</p>",
			name, email, subject, message,
		)
		n.email.Send(ctx, n.contact, "Contact: "+subject, html)
	}
}

func (n *studioNotifier) BookingConfirmed(ctx context.Context, courseTitle string, date time.Time, clientName, clientEmail string) {
	text := fmt.Sprintf(
		"*Booking confirmed*\nCourse: %s\nDate: %s\nClient: %s (%s)",
		courseTitle, date.Format(slotTimeLayout), clientName, clientEmail,
	)
	n.telegram.Send(ctx, text)
}

func (n *studioNotifier) BookingReminder(ctx context.Context, courseTitle string, date time.Time, clientName, clientEmail string) {
	html := fmt.Sprintf(
		"<p>Hello %s,</p><p>This is a reminder for your upcoming class <strong>%s</strong> on %s.</p><p>See you on the mat!</p>",
		clientName, courseTitle, date.Format(slotTimeLayout),
	)
	n.email.Send(ctx, clientEmail, "Reminder: "+courseTitle, html)

	text := fmt.Sprintf(
		"*Reminder sent*\nCourse: %s\nDate: %s\nClient: %s (%s)",
		courseTitle, date.Format(slotTimeLayout), clientName, clientEmail,
	)
	n.telegram.Send(ctx, text)
}
