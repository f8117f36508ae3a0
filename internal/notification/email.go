package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const resendEndpoint = "https://api.resend.com/emails"

// EmailSender delivers transactional email through the Resend HTTP API.
// Without an API key it stays disabled and logs the send instead.
type EmailSender struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

func NewEmailSender(apiKey, from string, log *zap.Logger) *EmailSender {
	log = log.With(zap.String("notifier", "email"))

	if apiKey == "" {
		log.Warn("Email API key not configured, email notifications disabled")
	}

	return &EmailSender{
		apiKey:   apiKey,
		from:     from,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send posts one email. Errors are logged, not returned.
func (e *EmailSender) Send(ctx context.Context, to, subject, html string) {
	if e.apiKey == "" {
		e.log.Info("Email notification skipped",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return
	}

	body, err := json.Marshal(emailPayload{
		From:    e.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		e.log.Error("Failed to encode email payload", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		e.log.Error("Failed to build email request", zap.Error(err))
		return
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		e.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
		)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		e.log.Error("Email provider rejected the message",
			zap.Int("status", resp.StatusCode),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return
	}

	e.log.Info("Email sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
}
