package wire

import (
	"studio-booking/internal/adaptor"
	"studio-booking/internal/data/repository"
	"studio-booking/pkg/middleware"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/bookings", func(protected chi.Router) {
		protected.Use(middleware.AuthSession(repo.Session, repo.User, log))

		protected.Get("/", bookingHandler.MyBookings)
		protected.Get("/{id}", bookingHandler.Get)
		protected.Delete("/{id}", bookingHandler.Cancel)
	})

	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.AuthSession(repo.Session, repo.User, log),
		middleware.Admin(repo.User, log),
	).Get("/api/admin/bookings", bookingHandler.ListAll)
}
