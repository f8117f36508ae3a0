package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// SimulatedGateway exercises the checkout contract without a live provider.
// Session IDs look like demo_<nanos> and the URL points at a simulated
// provider page. Webhook payloads are trusted as-is; this path must never
// run in production.
type SimulatedGateway struct {
	log *zap.Logger
}

func NewSimulatedGateway(log *zap.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		log: log.With(zap.String("gateway", "simulated")),
	}
}

func (g *SimulatedGateway) CreateSession(ctx context.Context, p SessionParams) (*CheckoutSession, error) {
	id := fmt.Sprintf("demo_%d", time.Now().UnixNano())

	g.log.Info("Simulated checkout session created",
		zap.String("session_id", id),
		zap.String("course_id", p.CourseID),
		zap.String("user_id", p.UserID),
	)

	return &CheckoutSession{
		ID:  id,
		URL: "https://checkout.stripe.com/pay/" + id,
	}, nil
}

// simulatedEvent is the unsigned demo webhook body.
type simulatedEvent struct {
	SessionID       string            `json:"sessionId"`
	EventType       string            `json:"eventType,omitempty"`
	PaymentIntentID string            `json:"paymentIntentId,omitempty"`
	AmountTotal     int64             `json:"amountTotal,omitempty"`
	Currency        string            `json:"currency,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

func (g *SimulatedGateway) ParseEvent(payload []byte, signature string) (*Event, error) {
	var ev simulatedEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if ev.SessionID == "" {
		return nil, fmt.Errorf("%w: missing sessionId", ErrInvalidPayload)
	}

	eventType := ev.EventType
	if eventType == "" {
		eventType = EventCheckoutCompleted
	}

	currency := ev.Currency
	if currency == "" {
		currency = "eur"
	}

	paymentIntentID := ev.PaymentIntentID
	if paymentIntentID == "" {
		paymentIntentID = "pi_" + ev.SessionID
	}

	return &Event{
		ID:   "evt_" + ev.SessionID,
		Type: eventType,
		Session: &Session{
			ID:              ev.SessionID,
			PaymentIntentID: paymentIntentID,
			AmountTotal:     ev.AmountTotal,
			Currency:        currency,
			Metadata:        ev.Metadata,
		},
	}, nil
}
