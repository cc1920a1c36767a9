package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/proofdeck/server/internal/api/handlers"
	"github.com/proofdeck/server/internal/api/middleware"
	"github.com/proofdeck/server/internal/config"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/pkg/metrics"
)

// Handlers bundles all HTTP handlers for route registration
type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Form     *handlers.FormHandler
	Response *handlers.ResponseHandler
	Feedback *handlers.FeedbackHandler
	Share    *handlers.ShareHandler
	Usage    *handlers.UsageHandler
	Billing  *handlers.BillingHandler
}

// New builds the HTTP router
func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS(cfg.Server.FrontendURL))
	r.Use(metrics.Middleware)

	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		r.Get("/health", h.Health.Health)
		r.Get("/ready", h.Health.Ready)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())

		r.Post("/api/v1/auth/register", h.Auth.Register)
		r.Post("/api/v1/auth/login", h.Auth.Login)
		r.Post("/api/v1/auth/refresh", h.Auth.RefreshToken)
		r.Post("/api/v1/auth/logout", h.Auth.Logout)

		r.Get("/api/v1/billing/plans", h.Billing.Plans)

		// Hosted form page endpoints, rate limited since they take
		// anonymous traffic
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(10, 20))
			r.Get("/api/v1/f/{slug}", h.Form.GetBySlug)
			r.Post("/api/v1/f/{slug}/responses", h.Response.Submit)
		})
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Auth.JWTSecret))

		r.Get("/api/v1/auth/me", h.Auth.Me)

		r.Route("/api/v1/forms", func(r chi.Router) {
			r.Get("/", h.Form.List)
			r.Post("/", h.Form.Create)
			r.Get("/{id}", h.Form.Get)
			r.Put("/{id}", h.Form.Update)
			r.Delete("/{id}", h.Form.Delete)
			r.Get("/{id}/responses", h.Response.List)
			r.Get("/{id}/summary", h.Response.Summary)
			r.Get("/{id}/export", h.Response.Export)
		})

		r.Route("/api/v1/responses", func(r chi.Router) {
			r.Delete("/{id}", h.Response.Delete)
			r.Get("/{id}/testimonial", h.Share.Testimonial)
			r.Get("/{id}/testimonial/image", h.Share.Image)
		})

		r.Route("/api/v1/requests", func(r chi.Router) {
			r.Get("/", h.Feedback.List)
			r.Post("/", h.Feedback.Send)
		})

		r.Route("/api/v1/shares", func(r chi.Router) {
			r.Get("/", h.Share.List)
			r.Post("/", h.Share.Record)
		})

		r.Get("/api/v1/usage", h.Usage.Status)
		r.Get("/api/v1/billing", h.Billing.Info)
		r.Put("/api/v1/billing/plan", h.Billing.ChangePlan)
	})

	return r
}
