package payment

import (
	"testing"

	"studio-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testStripeConfig() utils.StripeConfig {
	return utils.StripeConfig{
		SecretKey:            "sk_test_x",
		WebhookSecret:        "whsec_test_x",
		BaseURL:              "https://studio.example.com",
		SessionExpiryMinutes: 30,
	}
}

func TestStripeGateway_ParseEvent_MissingSignature(t *testing.T) {
	g := NewStripeGateway(testStripeConfig(), zap.NewNop())

	_, err := g.ParseEvent([]byte(`{}`), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSignature)
}

func TestStripeGateway_ParseEvent_BadSignature(t *testing.T) {
	g := NewStripeGateway(testStripeConfig(), zap.NewNop())

	_, err := g.ParseEvent([]byte(`{"id":"evt_1","type":"checkout.session.completed"}`), "t=1,v1=deadbeef")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestSelectGateway(t *testing.T) {
	log := zap.NewNop()

	cfg := testStripeConfig()
	assert.IsType(t, &StripeGateway{}, SelectGateway(cfg, log))

	cfg.DemoMode = true
	assert.IsType(t, &SimulatedGateway{}, SelectGateway(cfg, log))

	cfg = testStripeConfig()
	cfg.WebhookSecret = ""
	assert.IsType(t, &SimulatedGateway{}, SelectGateway(cfg, log),
		"missing credentials must fall back to demo mode")
}
