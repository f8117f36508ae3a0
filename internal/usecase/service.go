package usecase

import (
	"studio-booking/internal/data/repository"
	"studio-booking/internal/notification"
	"studio-booking/internal/payment"
	"studio-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Course       CourseService
	Availability AvailabilityService
	Checkout     CheckoutService
	Webhook      WebhookService
	Booking      BookingService
	Content      ContentService
	Notification NotificationService
}

func NewService(repo *repository.Repository, config *utils.Config, gateway payment.Gateway, notifier notification.Notifier, log *zap.Logger) *Service {
	availability := NewAvailabilityService(repo, log)

	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Course:       NewCourseService(repo, log),
		Availability: availability,
		Checkout:     NewCheckoutService(repo, availability, gateway, log),
		Webhook:      NewWebhookService(repo, notifier, log),
		Booking:      NewBookingService(repo, log),
		Content:      NewContentService(repo, log),
		Notification: NewNotificationService(repo, notifier, log),
	}
}
