package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSimulatedGateway_CreateSession(t *testing.T) {
	g := NewSimulatedGateway(zap.NewNop())

	session, err := g.CreateSession(context.Background(), SessionParams{
		CourseID:   "c1",
		UnitAmount: 4500,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(session.ID, "demo_"), session.ID)
	assert.Equal(t, "https://checkout.stripe.com/pay/"+session.ID, session.URL)
}

func TestSimulatedGateway_ParseEvent_Defaults(t *testing.T) {
	g := NewSimulatedGateway(zap.NewNop())

	payload := []byte(`{
		"sessionId": "demo_42",
		"amountTotal": 4550,
		"metadata": {"courseId": "c1", "userId": "u1", "date": "2026-09-15", "bookingType": "course_booking"}
	}`)

	event, err := g.ParseEvent(payload, "")

	require.NoError(t, err)
	assert.Equal(t, "evt_demo_42", event.ID)
	assert.Equal(t, EventCheckoutCompleted, event.Type)

	require.NotNil(t, event.Session)
	assert.Equal(t, "demo_42", event.Session.ID)
	assert.Equal(t, "pi_demo_42", event.Session.PaymentIntentID)
	assert.Equal(t, int64(4550), event.Session.AmountTotal)
	assert.Equal(t, "eur", event.Session.Currency)
	assert.Equal(t, "course_booking", event.Session.Metadata["bookingType"])
}

func TestSimulatedGateway_ParseEvent_ExplicitType(t *testing.T) {
	g := NewSimulatedGateway(zap.NewNop())

	event, err := g.ParseEvent([]byte(`{"sessionId":"demo_7","eventType":"checkout.session.expired"}`), "")

	require.NoError(t, err)
	assert.Equal(t, EventCheckoutExpired, event.Type)
}

func TestSimulatedGateway_ParseEvent_MissingSessionID(t *testing.T) {
	g := NewSimulatedGateway(zap.NewNop())

	_, err := g.ParseEvent([]byte(`{"eventType":"checkout.session.completed"}`), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestSimulatedGateway_ParseEvent_Garbage(t *testing.T) {
	g := NewSimulatedGateway(zap.NewNop())

	_, err := g.ParseEvent([]byte(`not json`), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
