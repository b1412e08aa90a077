package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/redis/go-redis/v9"
	"github.com/tempobook/backend/internal/config"
	"github.com/tempobook/backend/internal/repository"
	"github.com/tempobook/backend/internal/webhook"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	redisClient *redis.Client
	verifier    *webhook.Verifier

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	verifier, err := webhook.NewVerifier(cfg.Webhook.Secret, time.Duration(cfg.Webhook.Tolerance)*time.Second)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		redisClient: rdb,
		verifier:    verifier,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	h.Mux.Post("/webhook/auth", h.AuthProviderWebhook)

	// Public booking-page surface: provider lookup by slug, a provider's
	// services, and booking creation by customers.
	h.Mux.Get("/providers", h.GetProviders)
	h.Mux.Get("/services", h.GetServices)
	h.Mux.Post("/bookings", h.CreateBooking)

	// Everything below requires a session.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.session)

		r.Post("/providers", h.CreateProvider)

		r.Route("/profile", func(r chi.Router) {
			r.Use(h.currentUser)
			r.Get("/", h.GetProfile)
			r.Patch("/", h.UpdateProfile)
		})

		// Dashboard routes, scoped to the session's provider row.
		r.Group(func(r chi.Router) {
			r.Use(h.currentProvider)

			r.Get("/bookings", h.GetBookings)
			r.Patch("/bookings", h.UpdateBooking)

			r.Post("/services", h.CreateService)
			r.Patch("/services", h.UpdateService)
			r.Delete("/services", h.DeleteService)

			r.Route("/availability", func(r chi.Router) {
				r.Get("/", h.GetAvailability)
				r.Put("/", h.SaveAvailability)
				r.Get("/resolve", h.ResolveAvailability)
			})
		})
	})
}
