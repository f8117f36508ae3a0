package usecase

import (
	"context"
	"fmt"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/dto/response"
	"studio-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	List(ctx context.Context) ([]response.BookingResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, page, perPage int) ([]*entity.Booking, int64, error)
	Cancel(ctx context.Context, bookingID, userID uuid.UUID, isAdmin bool) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// List returns all bookings enriched with course and user details, for the
// admin overview.
func (s *bookingService) List(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp := response.BookingToResponse(booking)

		course, err := s.repo.Course.FindByID(ctx, booking.CourseID)
		if err != nil {
			return nil, fmt.Errorf("load course for booking %s: %w", booking.ID.String(), err)
		}
		if course != nil {
			resp.CourseTitle = course.Title
		}

		user, err := s.repo.User.FindByID(ctx, booking.UserID)
		if err != nil {
			return nil, fmt.Errorf("load user for booking %s: %w", booking.ID.String(), err)
		}
		if user != nil {
			resp.UserName = user.Name
			resp.UserEmail = user.Email
		}

		results = append(results, resp)
	}

	return results, nil
}

func (s *bookingService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", id.String(), entity.ErrBookingNotFound)
	}
	return booking, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, page, perPage int) ([]*entity.Booking, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	offset := utils.CalculateOffset(page, perPage)

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (s *bookingService) Cancel(ctx context.Context, bookingID, userID uuid.UUID, isAdmin bool) error {
	booking, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if !isAdmin && booking.UserID != userID {
		s.log.Warn("Cancel attempted on another user's booking",
			zap.String("booking_id", bookingID.String()),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("booking %s: %w", bookingID.String(), entity.ErrNotOwner)
	}

	if !booking.Active() {
		return fmt.Errorf("booking %s: %w", bookingID.String(), entity.ErrBookingNotActive)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, entity.BookingStatusCancelled); err != nil {
		return err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID.String()),
		zap.String("user_id", userID.String()),
	)

	return nil
}
