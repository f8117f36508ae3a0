package usecase

import (
	"context"
	"fmt"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/dto/request"
	"studio-booking/internal/notification"
	"studio-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	// SubmitContact validates a contact form submission and forwards it to
	// the studio's notification channels.
	SubmitContact(ctx context.Context, req *request.ContactRequest) error

	// SendReminder emails the client of a booking about their upcoming
	// class. Admin-triggered.
	SendReminder(ctx context.Context, bookingID uuid.UUID) error
}

type notificationService struct {
	repo     *repository.Repository
	notifier notification.Notifier
	log      *zap.Logger
}

func NewNotificationService(repo *repository.Repository, notifier notification.Notifier, log *zap.Logger) NotificationService {
	return &notificationService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) SubmitContact(ctx context.Context, req *request.ContactRequest) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		return fmt.Errorf("%w: %s", entity.ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	s.notifier.ContactMessage(ctx, req.Name, req.Email, req.Subject, req.Message)

	s.log.Info("Contact message received",
		zap.String("email", req.Email),
		zap.String("subject", req.Subject),
	)

	return nil
}

func (s *notificationService) SendReminder(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID.String(), entity.ErrBookingNotFound)
	}

	course, err := s.repo.Course.FindByID(ctx, booking.CourseID)
	if err != nil {
		return fmt.Errorf("load course for booking %s: %w", bookingID.String(), err)
	}
	if course == nil {
		return fmt.Errorf("course %s: %w", booking.CourseID.String(), entity.ErrCourseNotFound)
	}

	user, err := s.repo.User.FindByID(ctx, booking.UserID)
	if err != nil {
		return fmt.Errorf("load user for booking %s: %w", bookingID.String(), err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", booking.UserID.String(), entity.ErrUserNotFound)
	}

	s.notifier.BookingReminder(ctx, course.Title, booking.Date, user.Name, user.Email)

	s.log.Info("Booking reminder sent",
		zap.String("booking_id", bookingID.String()),
		zap.String("user_id", user.ID.String()),
	)

	return nil
}
