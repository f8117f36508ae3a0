package adaptor

import (
	"net/http"

	"studio-booking/internal/dto/response"
	"studio-booking/internal/usecase"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ListAll handles GET /api/admin/bookings
func (h *BookingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", bookings)
}

// MyBookings handles GET /api/bookings?page=1&per_page=10
func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	page := utils.ParseInt(r.URL.Query().Get("page"), 1)
	perPage := utils.ParseInt(r.URL.Query().Get("per_page"), 10)

	bookings, total, err := h.service.GetUserBookings(r.Context(), userID, page, perPage)
	if err != nil {
		handleServiceError(w, h.log, err, "list user bookings")
		return
	}

	results := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		results = append(results, response.BookingToResponse(booking))
	}

	utils.ResponseSuccess(w, "Bookings retrieved",
		response.NewPaginatedResponse(results, page, perPage, total))
}

// Get handles GET /api/bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())
	if booking.UserID != userID && role != "admin" {
		utils.ResponseForbidden(w, "Access denied")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", response.BookingToResponse(booking))
}

// Cancel handles DELETE /api/bookings/{id}
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	if err := h.service.Cancel(r.Context(), id, userID, role == "admin"); err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", nil)
}
