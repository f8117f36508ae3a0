package wire

import (
	"time"

	"studio-booking/internal/adaptor"
	"studio-booking/internal/data/repository"
	"studio-booking/pkg/middleware"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCheckout(
	r chi.Router,
	checkoutHandler *adaptor.CheckoutHandler,
	webhookHandler *adaptor.WebhookHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	limiter := middleware.NewRateLimiter(
		config.RateLimit.CheckoutMax,
		time.Duration(config.RateLimit.CheckoutWindowMinutes)*time.Minute,
	)

	// ==================== PROTECTED ROUTES ====================
	r.With(
		middleware.RateLimit(limiter, log),
		middleware.AuthSession(repo.Session, repo.User, log),
	).Post("/api/create-checkout-session", checkoutHandler.CreateSession)

	// ==================== PROVIDER CALLBACK ====================
	// Authenticated by webhook signature, not by session.
	r.Post("/api/webhook", webhookHandler.Handle)
}
