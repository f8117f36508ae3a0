package adaptor

import (
	"studio-booking/internal/payment"
	"studio-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Course       *CourseHandler
	Booking      *BookingHandler
	Checkout     *CheckoutHandler
	Webhook      *WebhookHandler
	Content      *ContentHandler
	Notification *NotificationHandler
}

func NewHandler(service *usecase.Service, gateway payment.Gateway, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Course:       NewCourseHandler(service.Course, service.Availability, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Checkout:     NewCheckoutHandler(service.Checkout, log),
		Webhook:      NewWebhookHandler(service.Webhook, gateway, log),
		Content:      NewContentHandler(service.Content, log),
		Notification: NewNotificationHandler(service.Notification, log),
	}
}
