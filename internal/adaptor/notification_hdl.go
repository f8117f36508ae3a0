package adaptor

import (
	"encoding/json"
	"net/http"

	"studio-booking/internal/dto/request"
	"studio-booking/internal/usecase"
	"studio-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	service usecase.NotificationService
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log.With(zap.String("handler", "notification")),
	}
}

// Contact handles POST /api/contact
func (h *NotificationHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SubmitContact(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "submit contact message")
		return
	}

	utils.ResponseSuccess(w, "Message sent", nil)
}

// Reminder handles POST /api/admin/notifications/reminder
func (h *NotificationHandler) Reminder(w http.ResponseWriter, r *http.Request) {
	var req request.ReminderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	if err := h.service.SendReminder(r.Context(), bookingID); err != nil {
		handleServiceError(w, h.log, err, "send booking reminder")
		return
	}

	utils.ResponseSuccess(w, "Reminder sent", nil)
}
