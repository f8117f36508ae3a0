package wire

import (
	"studio-booking/internal/adaptor"
	"studio-booking/internal/data/repository"
	"studio-booking/pkg/middleware"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCourse(
	r chi.Router,
	courseHandler *adaptor.CourseHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/courses", courseHandler.List)
	r.Get("/api/courses/{id}", courseHandler.Get)
	r.Get("/api/availability", courseHandler.Availability)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/courses", func(admin chi.Router) {
		admin.Use(middleware.AuthSession(repo.Session, repo.User, log))
		admin.Use(middleware.Admin(repo.User, log))

		admin.Post("/", courseHandler.Create)
		admin.Put("/{id}", courseHandler.Update)
		admin.Delete("/{id}", courseHandler.Delete)
	})
}
