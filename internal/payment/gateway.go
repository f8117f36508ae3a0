package payment

import (
	"context"
	"errors"

	"studio-booking/pkg/utils"

	"go.uber.org/zap"
)

// BookingTypeCourse tags checkout sessions opened by the course booking flow.
// It is echoed back verbatim in webhook metadata.
const BookingTypeCourse = "course_booking"

// Event types delivered by the provider. Only completed sessions mutate
// booking state; the others are logged for operational visibility.
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventCheckoutExpired   = "checkout.session.expired"
	EventPaymentFailed     = "payment_intent.payment_failed"
)

var (
	ErrMissingSignature = errors.New("missing webhook signature")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
)

// SessionParams describes the checkout session to open with the provider.
type SessionParams struct {
	CourseID          string
	CourseTitle       string
	CourseDescription string
	CourseLevel       string
	Duration          int
	UnitAmount        int64 // EUR minor units
	Date              string
	UserID            string
}

// CheckoutSession is the provider-hosted payment page reference returned to
// the booking UI.
type CheckoutSession struct {
	ID  string
	URL string
}

// Session carries the checkout session data embedded in a webhook event.
type Session struct {
	ID              string
	PaymentIntentID string
	AmountTotal     int64 // minor units
	Currency        string
	Metadata        map[string]string
}

// Event is a provider notification, already authenticity-checked by the
// gateway that parsed it.
type Event struct {
	ID      string
	Type    string
	Session *Session
}

// Gateway abstracts the external payment provider. Two variants exist:
// StripeGateway against the live API and SimulatedGateway for demo mode.
// The variant is selected once at startup.
type Gateway interface {
	CreateSession(ctx context.Context, params SessionParams) (*CheckoutSession, error)
	ParseEvent(payload []byte, signature string) (*Event, error)
}

// SelectGateway picks the gateway variant from configuration. Missing
// credentials force demo mode so the rest of the system never sees a
// half-configured live integration.
func SelectGateway(cfg utils.StripeConfig, log *zap.Logger) Gateway {
	if cfg.DemoMode || cfg.SecretKey == "" || cfg.WebhookSecret == "" {
		log.Info("Payment gateway running in demo mode (simulated sessions)")
		return NewSimulatedGateway(log)
	}

	log.Info("Payment gateway running in live mode")
	return NewStripeGateway(cfg, log)
}
