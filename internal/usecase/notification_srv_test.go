package usecase

import (
	"context"
	"testing"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNotificationService_SubmitContact(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewNotificationService(newTestRepo(nil, nil, nil), notifier, zap.NewNop())

	err := svc.SubmitContact(context.Background(), &request.ContactRequest{
		Name:    "Anna",
		Email:   "anna@example.com",
		Subject: "Private sessions",
		Message: "Do you offer one-on-one classes on weekends?",
	})

	require.NoError(t, err)
	require.Len(t, notifier.contacts, 1)
	assert.Equal(t, "Private sessions", notifier.contacts[0])
}

func TestNotificationService_SubmitContact_InvalidEmail(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewNotificationService(newTestRepo(nil, nil, nil), notifier, zap.NewNop())

	err := svc.SubmitContact(context.Background(), &request.ContactRequest{
		Name:    "Anna",
		Email:   "not-an-email",
		Subject: "Private sessions",
		Message: "Do you offer one-on-one classes on weekends?",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
	assert.Empty(t, notifier.contacts, "invalid submissions must not reach the studio chat")
}

func TestNotificationService_SendReminder(t *testing.T) {
	course := testCourse(10, 45)
	user := testUser()

	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		CourseID:     course.ID,
		UserID:       user.ID,
		Date:         time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Status:       entity.BookingStatusConfirmed,
	}

	courseRepo := &fakeCourseRepo{courses: map[uuid.UUID]*entity.Course{course.ID: course}}
	userRepo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}
	bookingRepo := &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{booking.ID: booking}}

	notifier := &fakeNotifier{}
	svc := NewNotificationService(newTestRepo(courseRepo, userRepo, bookingRepo), notifier, zap.NewNop())

	err := svc.SendReminder(context.Background(), booking.ID)

	require.NoError(t, err)
	require.Len(t, notifier.reminders, 1)
	assert.Equal(t, "anna@example.com", notifier.reminders[0])
}

func TestNotificationService_SendReminder_BookingMissing(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewNotificationService(newTestRepo(nil, nil, nil), notifier, zap.NewNop())

	err := svc.SendReminder(context.Background(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)
	assert.Empty(t, notifier.reminders)
}
