package adaptor

import (
	"errors"
	"io"
	"net/http"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/dto/response"
	"studio-booking/internal/payment"
	"studio-booking/internal/usecase"
	"studio-booking/pkg/utils"

	"go.uber.org/zap"
)

// Provider payloads are small; cap the body read as a guard against junk.
const maxWebhookBodyBytes = 1 << 16

type WebhookHandler struct {
	service usecase.WebhookService
	gateway payment.Gateway
	log     *zap.Logger
}

func NewWebhookHandler(service usecase.WebhookService, gateway payment.Gateway, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		service: service,
		gateway: gateway,
		log:     log.With(zap.String("handler", "webhook")),
	}
}

// Handle handles POST /api/webhook
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		utils.ResponseBadRequest(w, "Failed to read request body", nil)
		return
	}

	signature := r.Header.Get("Stripe-Signature")

	event, err := h.gateway.ParseEvent(payload, signature)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrMissingSignature), errors.Is(err, payment.ErrInvalidSignature):
			h.log.Warn("Webhook signature verification failed", zap.Error(err))
			utils.ResponseUnauthorized(w, "Webhook signature verification failed")
		case errors.Is(err, payment.ErrInvalidPayload):
			h.log.Warn("Webhook payload invalid", zap.Error(err))
			utils.ResponseBadRequest(w, "Invalid webhook payload", nil)
		default:
			h.log.Error("Failed to parse webhook event", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	if err := h.service.HandleEvent(r.Context(), event); err != nil {
		switch {
		// Unknown course or user in a paid event cannot be fixed by a
		// provider retry. Acknowledge and leave the trail in the logs.
		case errors.Is(err, entity.ErrCourseNotFound), errors.Is(err, entity.ErrUserNotFound):
			h.log.Error("Paid event references missing records, acknowledging",
				zap.Error(err),
				zap.String("event_id", event.ID),
			)

		case errors.Is(err, entity.ErrInvalidInput), errors.Is(err, entity.ErrInvalidDate):
			h.log.Warn("Webhook event rejected", zap.Error(err), zap.String("event_id", event.ID))
			utils.ResponseBadRequest(w, "Invalid event data", nil)
			return

		case errors.Is(err, entity.ErrSlotFull):
			h.log.Warn("Paid event for a full slot", zap.Error(err), zap.String("event_id", event.ID))
			utils.ResponseConflict(w, "Slot capacity exceeded")
			return

		default:
			h.log.Error("Failed to process webhook event", zap.Error(err), zap.String("event_id", event.ID))
			utils.ResponseInternalError(w, "Internal server error")
			return
		}
	}

	utils.ResponseRaw(w, http.StatusOK, response.WebhookResponse{
		Received:  true,
		EventType: event.Type,
		EventID:   event.ID,
		Timestamp: time.Now().UTC(),
	})
}
