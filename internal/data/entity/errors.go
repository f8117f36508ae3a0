package entity

import "errors"

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrContentNotFound = errors.New("content key not found")
)

var (
	ErrSlotFull         = errors.New("course is full for this date")
	ErrDuplicateBooking = errors.New("active booking already exists for this slot")
	ErrBookingNotActive = errors.New("booking is not active")
)

var (
	ErrInvalidDate        = errors.New("invalid date format")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotOwner           = errors.New("cannot book on behalf of another user")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)
