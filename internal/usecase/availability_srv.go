package usecase

import (
	"context"
	"fmt"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AvailabilityResult reports whether a (course, date) slot has free capacity.
type AvailabilityResult struct {
	Available bool
	Course    *entity.Course
	Date      time.Time
}

type AvailabilityService interface {
	Check(ctx context.Context, courseID, date string) (*AvailabilityResult, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

// Accepted slot date layouts. Anything else is rejected, never coerced.
var slotDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseSlotDate(value string) (time.Time, error) {
	for _, layout := range slotDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q: %w", value, entity.ErrInvalidDate)
}

// Check counts active bookings (PENDING and CONFIRMED) for the slot and
// compares against course capacity. Read-only; used before opening a payment
// session and re-checked at confirmation time.
func (s *availabilityService) Check(ctx context.Context, courseID, date string) (*AvailabilityResult, error) {
	courseUUID, err := uuid.Parse(courseID)
	if err != nil {
		return nil, fmt.Errorf("%w: course ID %s", entity.ErrInvalidInput, courseID)
	}

	slotDate, err := parseSlotDate(date)
	if err != nil {
		return nil, err
	}

	course, err := s.repo.Course.FindByID(ctx, courseUUID)
	if err != nil {
		s.log.Error("Failed to load course for availability check",
			zap.Error(err),
			zap.String("course_id", courseID),
		)
		return nil, fmt.Errorf("load course %s: %w", courseID, err)
	}
	if course == nil {
		return nil, fmt.Errorf("course %s: %w", courseID, entity.ErrCourseNotFound)
	}

	count, err := s.repo.Booking.CountActiveBySlot(ctx, courseUUID, slotDate)
	if err != nil {
		return nil, fmt.Errorf("count active bookings: %w", err)
	}

	available := count < course.Capacity

	s.log.Debug("Availability checked",
		zap.String("course_id", courseID),
		zap.Time("date", slotDate),
		zap.Int("active_bookings", count),
		zap.Int("capacity", course.Capacity),
		zap.Bool("available", available),
	)

	return &AvailabilityResult{
		Available: available,
		Course:    course,
		Date:      slotDate,
	}, nil
}
