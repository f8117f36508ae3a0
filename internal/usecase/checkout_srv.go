package usecase

import (
	"context"
	"fmt"
	"math"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/dto/request"
	"studio-booking/internal/payment"
	"studio-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CheckoutService interface {
	CreateSession(ctx context.Context, authUserID uuid.UUID, req *request.CreateCheckoutSessionRequest) (*payment.CheckoutSession, error)
}

type checkoutService struct {
	repo         *repository.Repository
	availability AvailabilityService
	gateway      payment.Gateway
	log          *zap.Logger
}

func NewCheckoutService(repo *repository.Repository, availability AvailabilityService, gateway payment.Gateway, log *zap.Logger) CheckoutService {
	return &checkoutService{
		repo:         repo,
		availability: availability,
		gateway:      gateway,
		log:          log.With(zap.String("service", "checkout")),
	}
}

// CreateSession opens a provider checkout session for a (course, date) slot.
// No booking row is written here; the booking is created only when the
// provider confirms payment through the webhook.
func (s *checkoutService) CreateSession(ctx context.Context, authUserID uuid.UUID, req *request.CreateCheckoutSessionRequest) (*payment.CheckoutSession, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	requestedUserID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user ID %s", entity.ErrInvalidInput, req.UserID)
	}
	if requestedUserID != authUserID {
		s.log.Warn("Checkout attempted for another user",
			zap.String("auth_user_id", authUserID.String()),
			zap.String("requested_user_id", req.UserID),
		)
		return nil, fmt.Errorf("user %s: %w", req.UserID, entity.ErrNotOwner)
	}

	result, err := s.availability.Check(ctx, req.CourseID, req.Date)
	if err != nil {
		return nil, err
	}
	if !result.Available {
		return nil, fmt.Errorf("course %s on %s: %w", req.CourseID, req.Date, entity.ErrSlotFull)
	}

	courseUUID := result.Course.ID
	existing, err := s.repo.Booking.FindActiveByUserAndSlot(ctx, courseUUID, authUserID, result.Date)
	if err != nil {
		return nil, fmt.Errorf("check existing booking: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("booking %s: %w", existing.ID.String(), entity.ErrDuplicateBooking)
	}

	session, err := s.gateway.CreateSession(ctx, payment.SessionParams{
		CourseID:          req.CourseID,
		CourseTitle:       result.Course.Title,
		CourseDescription: result.Course.Description,
		CourseLevel:       string(result.Course.Level),
		Duration:          result.Course.Duration,
		UnitAmount:        int64(math.Round(result.Course.Price * 100)),
		Date:              req.Date,
		UserID:            req.UserID,
	})
	if err != nil {
		s.log.Error("Failed to create checkout session",
			zap.Error(err),
			zap.String("course_id", req.CourseID),
		)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	s.log.Info("Checkout session created",
		zap.String("session_id", session.ID),
		zap.String("course_id", req.CourseID),
		zap.String("user_id", req.UserID),
	)

	return session, nil
}
