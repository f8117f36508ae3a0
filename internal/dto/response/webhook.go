package response

import "time"

// WebhookResponse acknowledges receipt of a payment provider event.
type WebhookResponse struct {
	Received  bool      `json:"received"`
	EventType string    `json:"eventType"`
	EventID   string    `json:"eventId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
