package repository

import (
	"studio-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Course  CourseRepository
	Booking BookingRepository
	Content ContentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Course:  NewCourseRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Content: NewContentRepository(db, log),
	}
}
