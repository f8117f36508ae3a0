package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking records a reservation for a (course, date) slot. Payment fields
// stay nil until the payment provider confirms the checkout session.
type Booking struct {
	BaseNoDelete
	CourseID              uuid.UUID     `db:"course_id"`
	UserID                uuid.UUID     `db:"user_id"`
	Date                  time.Time     `db:"date"`
	Status                BookingStatus `db:"status"`
	PaymentStatus         *string       `db:"payment_status"`
	StripePaymentIntentID *string       `db:"stripe_payment_intent_id"`
	Amount                *float64      `db:"amount"`
	Currency              *string       `db:"currency"`
}

// Active reports whether the booking still counts against slot capacity.
func (b *Booking) Active() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
