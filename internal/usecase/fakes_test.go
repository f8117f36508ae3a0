package usecase

import (
	"context"
	"fmt"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/payment"

	"github.com/google/uuid"
)

// In-memory repository fakes. Each implements just enough behavior for the
// service under test; unexpected calls fail loudly via the zero values.

type fakeCourseRepo struct {
	courses map[uuid.UUID]*entity.Course
	err     error
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *entity.Course) error {
	if f.err != nil {
		return f.err
	}
	if f.courses == nil {
		f.courses = make(map[uuid.UUID]*entity.Course)
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.courses[id], nil
}

func (f *fakeCourseRepo) FindAll(ctx context.Context) ([]*entity.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Course
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *entity.Course) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.courses[course.ID]; !ok {
		return fmt.Errorf("course %s: %w", course.ID.String(), entity.ErrCourseNotFound)
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.courses[id]; !ok {
		return fmt.Errorf("course %s: %w", id.String(), entity.ErrCourseNotFound)
	}
	delete(f.courses, id)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	err   error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	if f.users == nil {
		f.users = make(map[uuid.UUID]*entity.User)
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions []*entity.Session
	revoked  []string
	err      error
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if f.err != nil {
		return f.err
	}
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	for _, s := range f.sessions {
		if s.Token.String() == token && s.RevokedAt == nil {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	if f.err != nil {
		return f.err
	}
	f.revoked = append(f.revoked, token)
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	return f.err
}

type fakeBookingRepo struct {
	bookings    map[uuid.UUID]*entity.Booking
	activeCount int
	active      *entity.Booking
	created     []*entity.Booking
	confirmErr  error
	err         error
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, b := range f.bookings {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if f.err != nil {
		return f.err
	}
	b, ok := f.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %s: %w", bookingID.String(), entity.ErrBookingNotFound)
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) CountActiveBySlot(ctx context.Context, courseID uuid.UUID, date time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.activeCount, nil
}

func (f *fakeBookingRepo) FindActiveByUserAndSlot(ctx context.Context, courseID, userID uuid.UUID, date time.Time) (*entity.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.active, nil
}

func (f *fakeBookingRepo) CreateConfirmed(ctx context.Context, booking *entity.Booking, capacity int) error {
	if f.err != nil {
		return f.err
	}
	if f.confirmErr != nil {
		return f.confirmErr
	}
	if f.activeCount >= capacity {
		return fmt.Errorf("course %s: %w", booking.CourseID.String(), entity.ErrSlotFull)
	}
	f.created = append(f.created, booking)
	return nil
}

type fakeContentRepo struct {
	blocks map[string]*entity.ContentBlock
	err    error
}

func (f *fakeContentRepo) FindByKey(ctx context.Context, key string) (*entity.ContentBlock, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.blocks[key], nil
}

func (f *fakeContentRepo) Upsert(ctx context.Context, block *entity.ContentBlock) error {
	if f.err != nil {
		return f.err
	}
	if f.blocks == nil {
		f.blocks = make(map[string]*entity.ContentBlock)
	}
	f.blocks[block.Key] = block
	return nil
}

type fakeGateway struct {
	session    *payment.CheckoutSession
	createErr  error
	lastParams payment.SessionParams
	event      *payment.Event
	parseErr   error
}

func (f *fakeGateway) CreateSession(ctx context.Context, params payment.SessionParams) (*payment.CheckoutSession, error) {
	f.lastParams = params
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.session, nil
}

func (f *fakeGateway) ParseEvent(payload []byte, signature string) (*payment.Event, error) {
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	return f.event, nil
}

type fakeNotifier struct {
	contacts  []string
	confirmed []string
	reminders []string
}

func (f *fakeNotifier) ContactMessage(ctx context.Context, name, email, subject, message string) {
	f.contacts = append(f.contacts, subject)
}

func (f *fakeNotifier) BookingConfirmed(ctx context.Context, courseTitle string, date time.Time, clientName, clientEmail string) {
	f.confirmed = append(f.confirmed, courseTitle)
}

func (f *fakeNotifier) BookingReminder(ctx context.Context, courseTitle string, date time.Time, clientName, clientEmail string) {
	f.reminders = append(f.reminders, clientEmail)
}

func newTestRepo(course *fakeCourseRepo, user *fakeUserRepo, booking *fakeBookingRepo) *repository.Repository {
	if course == nil {
		course = &fakeCourseRepo{}
	}
	if user == nil {
		user = &fakeUserRepo{}
	}
	if booking == nil {
		booking = &fakeBookingRepo{}
	}
	return &repository.Repository{
		User:    user,
		Session: &fakeSessionRepo{},
		Course:  course,
		Booking: booking,
		Content: &fakeContentRepo{},
	}
}

func testCourse(capacity int, price float64) *entity.Course {
	now := time.Now()
	return &entity.Course{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       "Vinyasa Flow",
		Description: "Dynamic sequence linking breath and movement",
		Price:       price,
		Duration:    60,
		Capacity:    capacity,
		Level:       entity.LevelAllLevels,
	}
}

func testUser() *entity.User {
	now := time.Now()
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         "Anna",
		Email:        "anna@example.com",
		PasswordHash: "$2a$10$fakehash",
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
}
