package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTelegramNotifier_DisabledWithoutCredentials(t *testing.T) {
	notifier := NewTelegramNotifier("", 0, zap.NewNop())

	require.Nil(t, notifier.bot)

	// Disabled notifier logs and returns, no panic, no network.
	notifier.Send(context.Background(), "hello")
}

func TestEmailSender_DisabledWithoutAPIKey(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	sender := NewEmailSender("", "studio@example.com", zap.NewNop())
	sender.endpoint = server.URL

	sender.Send(context.Background(), "anna@example.com", "Reminder", "<p>hi</p>")

	assert.Zero(t, hits, "disabled sender must not call the provider")
}

func TestEmailSender_PostsResendPayload(t *testing.T) {
	var (
		gotAuth    string
		gotPayload emailPayload
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewEmailSender("re_test_key", "studio@example.com", zap.NewNop())
	sender.endpoint = server.URL

	sender.Send(context.Background(), "anna@example.com", "Reminder: Vinyasa Flow", "<p>See you soon</p>")

	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "studio@example.com", gotPayload.From)
	assert.Equal(t, []string{"anna@example.com"}, gotPayload.To)
	assert.Equal(t, "Reminder: Vinyasa Flow", gotPayload.Subject)
	assert.Equal(t, "<p>See you soon</p>", gotPayload.HTML)
}

func TestEmailSender_ProviderErrorIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	sender := NewEmailSender("re_test_key", "studio@example.com", zap.NewNop())
	sender.endpoint = server.URL

	// Must not panic or propagate; delivery is best-effort.
	sender.Send(context.Background(), "anna@example.com", "Reminder", "<p>hi</p>")
}

func TestNotifier_ReminderEmailsClient(t *testing.T) {
	var gotPayload emailPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewNotifier(utils.NotificationConfig{
		ResendAPIKey: "re_test_key",
		FromEmail:    "studio@example.com",
	}, zap.NewNop()).(*studioNotifier)
	notifier.email.endpoint = server.URL

	date := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	notifier.BookingReminder(context.Background(), "Vinyasa Flow", date, "Anna", "anna@example.com")

	assert.Equal(t, []string{"anna@example.com"}, gotPayload.To)
	assert.Equal(t, "Reminder: Vinyasa Flow", gotPayload.Subject)
	assert.Contains(t, gotPayload.HTML, "Vinyasa Flow")
	assert.Contains(t, gotPayload.HTML, "Anna")
}
