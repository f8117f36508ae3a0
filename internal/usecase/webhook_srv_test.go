package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func completedEvent(courseID, userID uuid.UUID, date string) *payment.Event {
	return &payment.Event{
		ID:   "evt_1",
		Type: payment.EventCheckoutCompleted,
		Session: &payment.Session{
			ID:              "cs_test_1",
			PaymentIntentID: "pi_test_1",
			AmountTotal:     4550,
			Currency:        "eur",
			Metadata: map[string]string{
				"courseId":    courseID.String(),
				"userId":      userID.String(),
				"date":        date,
				"bookingType": payment.BookingTypeCourse,
			},
		},
	}
}

func newWebhookFixture(course *entity.Course, user *entity.User, bookingRepo *fakeBookingRepo) WebhookService {
	courseRepo := &fakeCourseRepo{}
	if course != nil {
		courseRepo.courses = map[uuid.UUID]*entity.Course{course.ID: course}
	}
	userRepo := &fakeUserRepo{}
	if user != nil {
		userRepo.users = map[uuid.UUID]*entity.User{user.ID: user}
	}

	return NewWebhookService(newTestRepo(courseRepo, userRepo, bookingRepo), &fakeNotifier{}, zap.NewNop())
}

func TestWebhookService_Completed_CreatesConfirmedBooking(t *testing.T) {
	course := testCourse(10, 45.50)
	user := testUser()
	bookingRepo := &fakeBookingRepo{activeCount: 2}
	svc := newWebhookFixture(course, user, bookingRepo)

	err := svc.HandleEvent(context.Background(), completedEvent(course.ID, user.ID, "2026-09-15T10:00:00Z"))

	require.NoError(t, err)
	require.Len(t, bookingRepo.created, 1)

	booking := bookingRepo.created[0]
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, course.ID, booking.CourseID)
	assert.Equal(t, user.ID, booking.UserID)
	assert.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), booking.Date)

	require.NotNil(t, booking.PaymentStatus)
	assert.Equal(t, "PAID", *booking.PaymentStatus)
	require.NotNil(t, booking.Amount)
	assert.InDelta(t, 45.50, *booking.Amount, 0.001)
	require.NotNil(t, booking.Currency)
	assert.Equal(t, "eur", *booking.Currency)
	require.NotNil(t, booking.StripePaymentIntentID)
	assert.Equal(t, "pi_test_1", *booking.StripePaymentIntentID)
}

func TestWebhookService_Completed_WrongBookingType(t *testing.T) {
	course := testCourse(10, 45)
	user := testUser()
	bookingRepo := &fakeBookingRepo{}
	svc := newWebhookFixture(course, user, bookingRepo)

	event := completedEvent(course.ID, user.ID, "2026-09-15")
	event.Session.Metadata["bookingType"] = "gift_card"

	err := svc.HandleEvent(context.Background(), event)

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
	assert.Empty(t, bookingRepo.created)
}

func TestWebhookService_Completed_BadMetadata(t *testing.T) {
	course := testCourse(10, 45)
	user := testUser()
	svc := newWebhookFixture(course, user, &fakeBookingRepo{})

	event := completedEvent(course.ID, user.ID, "2026-09-15")
	event.Session.Metadata["courseId"] = "garbage"

	err := svc.HandleEvent(context.Background(), event)

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestWebhookService_Completed_CourseMissing(t *testing.T) {
	user := testUser()
	svc := newWebhookFixture(nil, user, &fakeBookingRepo{})

	err := svc.HandleEvent(context.Background(), completedEvent(uuid.New(), user.ID, "2026-09-15"))

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrCourseNotFound)
}

func TestWebhookService_Completed_UserMissing(t *testing.T) {
	course := testCourse(10, 45)
	svc := newWebhookFixture(course, nil, &fakeBookingRepo{})

	err := svc.HandleEvent(context.Background(), completedEvent(course.ID, uuid.New(), "2026-09-15"))

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestWebhookService_Completed_ReplayIsNoOp(t *testing.T) {
	course := testCourse(10, 45)
	user := testUser()

	existing := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		CourseID:     course.ID,
		UserID:       user.ID,
		Status:       entity.BookingStatusConfirmed,
	}
	bookingRepo := &fakeBookingRepo{active: existing}
	svc := newWebhookFixture(course, user, bookingRepo)

	err := svc.HandleEvent(context.Background(), completedEvent(course.ID, user.ID, "2026-09-15"))

	require.NoError(t, err)
	assert.Empty(t, bookingRepo.created, "replayed event must not insert a second booking")
}

func TestWebhookService_Completed_DuplicateCaughtAtInsert(t *testing.T) {
	course := testCourse(10, 45)
	user := testUser()

	// The pre-insert lookup sees no booking, but the insert transaction
	// reports a concurrent duplicate. The event must still be acknowledged.
	bookingRepo := &fakeBookingRepo{
		confirmErr: fmt.Errorf("booking %s: %w", uuid.New().String(), entity.ErrDuplicateBooking),
	}
	svc := newWebhookFixture(course, user, bookingRepo)

	err := svc.HandleEvent(context.Background(), completedEvent(course.ID, user.ID, "2026-09-15"))

	require.NoError(t, err, "a duplicate booking means the event was already processed")
	assert.Empty(t, bookingRepo.created)
}

func TestWebhookService_Completed_NotifiesStudioChat(t *testing.T) {
	course := testCourse(10, 45)
	user := testUser()
	bookingRepo := &fakeBookingRepo{}
	notifier := &fakeNotifier{}

	courseRepo := &fakeCourseRepo{courses: map[uuid.UUID]*entity.Course{course.ID: course}}
	userRepo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}
	svc := NewWebhookService(newTestRepo(courseRepo, userRepo, bookingRepo), notifier, zap.NewNop())

	err := svc.HandleEvent(context.Background(), completedEvent(course.ID, user.ID, "2026-09-15"))

	require.NoError(t, err)
	require.Len(t, notifier.confirmed, 1)
	assert.Equal(t, "Vinyasa Flow", notifier.confirmed[0])
}

func TestWebhookService_Completed_SlotFullAtConfirmation(t *testing.T) {
	course := testCourse(3, 45)
	user := testUser()
	bookingRepo := &fakeBookingRepo{activeCount: 3}
	svc := newWebhookFixture(course, user, bookingRepo)

	err := svc.HandleEvent(context.Background(), completedEvent(course.ID, user.ID, "2026-09-15"))

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrSlotFull)
}

func TestWebhookService_ExpiredAndFailedAreAcknowledged(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	svc := newWebhookFixture(nil, nil, bookingRepo)

	for _, eventType := range []string{payment.EventCheckoutExpired, payment.EventPaymentFailed, "invoice.paid"} {
		err := svc.HandleEvent(context.Background(), &payment.Event{ID: "evt_x", Type: eventType})
		require.NoError(t, err, eventType)
	}

	assert.Empty(t, bookingRepo.created)
}
