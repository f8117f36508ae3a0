package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/notification"
	"studio-booking/internal/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WebhookService interface {
	HandleEvent(ctx context.Context, event *payment.Event) error
}

type webhookService struct {
	repo     *repository.Repository
	notifier notification.Notifier
	log      *zap.Logger
}

func NewWebhookService(repo *repository.Repository, notifier notification.Notifier, log *zap.Logger) WebhookService {
	return &webhookService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "webhook")),
	}
}

// HandleEvent dispatches a verified provider event. Only completed checkout
// sessions mutate state; expirations and failures are logged and acknowledged.
func (s *webhookService) HandleEvent(ctx context.Context, event *payment.Event) error {
	switch event.Type {
	case payment.EventCheckoutCompleted:
		return s.confirmBooking(ctx, event)

	case payment.EventCheckoutExpired:
		s.log.Info("Checkout session expired",
			zap.String("event_id", event.ID),
		)
		return nil

	case payment.EventPaymentFailed:
		s.log.Warn("Payment failed",
			zap.String("event_id", event.ID),
		)
		return nil

	default:
		s.log.Info("Unhandled payment event",
			zap.String("event_id", event.ID),
			zap.String("event_type", event.Type),
		)
		return nil
	}
}

// confirmBooking creates the CONFIRMED booking row for a paid checkout
// session. Capacity is re-checked inside the insert transaction; a replayed
// event for an already-booked slot is a no-op.
func (s *webhookService) confirmBooking(ctx context.Context, event *payment.Event) error {
	session := event.Session
	if session == nil {
		return fmt.Errorf("completed event %s has no session: %w", event.ID, entity.ErrInvalidInput)
	}

	meta := session.Metadata
	if meta["bookingType"] != payment.BookingTypeCourse {
		return fmt.Errorf("event %s: booking type %q: %w", event.ID, meta["bookingType"], entity.ErrInvalidInput)
	}

	courseID, err := uuid.Parse(meta["courseId"])
	if err != nil {
		return fmt.Errorf("event %s: course ID %q: %w", event.ID, meta["courseId"], entity.ErrInvalidInput)
	}

	userID, err := uuid.Parse(meta["userId"])
	if err != nil {
		return fmt.Errorf("event %s: user ID %q: %w", event.ID, meta["userId"], entity.ErrInvalidInput)
	}

	slotDate, err := parseSlotDate(meta["date"])
	if err != nil {
		return fmt.Errorf("event %s: %w", event.ID, err)
	}

	course, err := s.repo.Course.FindByID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("load course %s: %w", courseID.String(), err)
	}
	if course == nil {
		return fmt.Errorf("course %s: %w", courseID.String(), entity.ErrCourseNotFound)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user %s: %w", userID.String(), err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID.String(), entity.ErrUserNotFound)
	}

	// Providers retry webhook delivery; an active booking for the same slot
	// means this event was already processed.
	existing, err := s.repo.Booking.FindActiveByUserAndSlot(ctx, courseID, userID, slotDate)
	if err != nil {
		return fmt.Errorf("check existing booking: %w", err)
	}
	if existing != nil {
		s.log.Info("Duplicate payment event, booking already exists",
			zap.String("event_id", event.ID),
			zap.String("booking_id", existing.ID.String()),
		)
		return nil
	}

	paymentStatus := "PAID"
	amount := float64(session.AmountTotal) / 100
	currency := session.Currency

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CourseID:      courseID,
		UserID:        userID,
		Date:          slotDate,
		Status:        entity.BookingStatusConfirmed,
		PaymentStatus: &paymentStatus,
		Amount:        &amount,
	}
	if currency != "" {
		booking.Currency = &currency
	}
	if session.PaymentIntentID != "" {
		piID := session.PaymentIntentID
		booking.StripePaymentIntentID = &piID
	}

	if err := s.repo.Booking.CreateConfirmed(ctx, booking, course.Capacity); err != nil {
		// A concurrent delivery of the same event can slip past the
		// pre-check above; the insert transaction catches it.
		if errors.Is(err, entity.ErrDuplicateBooking) {
			s.log.Info("Duplicate payment event caught at insert time",
				zap.String("event_id", event.ID),
				zap.String("course_id", courseID.String()),
				zap.String("user_id", userID.String()),
			)
			return nil
		}
		return err
	}

	s.log.Info("Booking confirmed from payment event",
		zap.String("event_id", event.ID),
		zap.String("booking_id", booking.ID.String()),
		zap.String("course_id", courseID.String()),
		zap.String("user_id", userID.String()),
		zap.Float64("amount", amount),
	)

	s.notifier.BookingConfirmed(ctx, course.Title, slotDate, user.Name, user.Email)

	return nil
}
