package adaptor

import (
	"errors"
	"net/http"

	"studio-booking/internal/data/entity"
	"studio-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps domain errors to HTTP responses. Every handler
// funnels service failures through here so the status mapping stays in one
// place.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, entity.ErrInvalidDate):
		log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, entity.ErrNotOwner):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, entity.ErrCourseNotFound),
		errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrBookingNotFound),
		errors.Is(err, entity.ErrContentNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrSlotFull),
		errors.Is(err, entity.ErrDuplicateBooking),
		errors.Is(err, entity.ErrEmailTaken),
		errors.Is(err, entity.ErrBookingNotActive):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
