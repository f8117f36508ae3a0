package response

import (
	"time"

	"studio-booking/internal/data/entity"
)

type BookingResponse struct {
	ID                    string               `json:"id"`
	CourseID              string               `json:"course_id"`
	UserID                string               `json:"user_id"`
	CourseTitle           string               `json:"course_title,omitempty"`
	UserName              string               `json:"user_name,omitempty"`
	UserEmail             string               `json:"user_email,omitempty"`
	Date                  time.Time            `json:"date"`
	Status                entity.BookingStatus `json:"status"`
	PaymentStatus         *string              `json:"payment_status,omitempty"`
	StripePaymentIntentID *string              `json:"stripe_payment_intent_id,omitempty"`
	Amount                *float64             `json:"amount,omitempty"`
	Currency              *string              `json:"currency,omitempty"`
	CreatedAt             time.Time            `json:"created_at"`
}

// Helper converter
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:                    booking.ID.String(),
		CourseID:              booking.CourseID.String(),
		UserID:                booking.UserID.String(),
		Date:                  booking.Date,
		Status:                booking.Status,
		PaymentStatus:         booking.PaymentStatus,
		StripePaymentIntentID: booking.StripePaymentIntentID,
		Amount:                booking.Amount,
		Currency:              booking.Currency,
		CreatedAt:             booking.CreatedAt,
	}
}
