package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studio-booking/pkg/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// StripeGateway talks to the live Stripe API. Webhook payloads are always
// verified against the shared webhook secret; there is no bypass here.
type StripeGateway struct {
	webhookSecret string
	baseURL       string
	sessionExpiry time.Duration
	log           *zap.Logger
}

func NewStripeGateway(cfg utils.StripeConfig, log *zap.Logger) *StripeGateway {
	stripe.Key = cfg.SecretKey

	return &StripeGateway{
		webhookSecret: cfg.WebhookSecret,
		baseURL:       cfg.BaseURL,
		sessionExpiry: time.Duration(cfg.SessionExpiryMinutes) * time.Minute,
		log:           log.With(zap.String("gateway", "stripe")),
	}
}

func (g *StripeGateway) CreateSession(ctx context.Context, p SessionParams) (*CheckoutSession, error) {
	if g.baseURL == "" {
		return nil, fmt.Errorf("no base URL configured for redirect URLs")
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("eur"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("%s - %d minute session", p.CourseTitle, p.Duration)),
						Description: stripe.String(p.CourseDescription),
					},
					UnitAmount: stripe.Int64(p.UnitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:               stripe.String(g.baseURL + "/reservation/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:                stripe.String(g.baseURL + "/reservation/cancel"),
		ExpiresAt:                stripe.Int64(time.Now().Add(g.sessionExpiry).Unix()),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		CustomerCreation:         stripe.String(string(stripe.CheckoutSessionCustomerCreationAlways)),
		PaymentIntentData:        &stripe.CheckoutSessionPaymentIntentDataParams{},
	}
	params.Context = ctx

	// The confirmation handler reads these back verbatim from the webhook.
	params.AddMetadata("courseId", p.CourseID)
	params.AddMetadata("date", p.Date)
	params.AddMetadata("userId", p.UserID)
	params.AddMetadata("bookingType", BookingTypeCourse)

	params.PaymentIntentData.AddMetadata("courseId", p.CourseID)
	params.PaymentIntentData.AddMetadata("userId", p.UserID)

	sess, err := session.New(params)
	if err != nil {
		g.log.Error("Failed to create checkout session",
			zap.Error(err),
			zap.String("course_id", p.CourseID),
			zap.String("user_id", p.UserID),
		)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func (g *StripeGateway) ParseEvent(payload []byte, signature string) (*Event, error) {
	if signature == "" {
		return nil, ErrMissingSignature
	}

	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		g.log.Warn("Webhook signature verification failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	out := &Event{
		ID:   event.ID,
		Type: string(event.Type),
	}

	switch out.Type {
	case EventCheckoutCompleted, EventCheckoutExpired:
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("%w: decode checkout session: %v", ErrInvalidPayload, err)
		}

		s := &Session{
			ID:          sess.ID,
			AmountTotal: sess.AmountTotal,
			Currency:    string(sess.Currency),
			Metadata:    sess.Metadata,
		}
		if sess.PaymentIntent != nil {
			s.PaymentIntentID = sess.PaymentIntent.ID
		}
		out.Session = s
	}

	return out, nil
}
