package handlers

import (
	"net/http"

	_ "github.com/avoronin/eventpool/docs"
	authhandlers "github.com/avoronin/eventpool/internal/handlers/auth"
	eventshandlers "github.com/avoronin/eventpool/internal/handlers/events"
	monitoringhandlers "github.com/avoronin/eventpool/internal/handlers/monitoring"
	paymentshandlers "github.com/avoronin/eventpool/internal/handlers/payments"
	"github.com/avoronin/eventpool/internal/service"
	"github.com/avoronin/eventpool/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type EventHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Publish(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Simulate(w http.ResponseWriter, r *http.Request)
}

type MonitoringHandler interface {
	GetSnapshot(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	EventHandler      EventHandler
	PaymentHandler    PaymentHandler
	MonitoringHandler MonitoringHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		EventHandler:      eventshandlers.New(s.EventService),
		PaymentHandler:    paymentshandlers.New(s.PaymentService),
		MonitoringHandler: monitoringhandlers.New(s.MonitoringService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})
	r.Route("/api/events", func(r chi.Router) {
		r.Get("/", h.EventHandler.List)
		r.Get("/{id}", h.EventHandler.Get)
		r.Get("/{id}/monitoring", h.MonitoringHandler.GetSnapshot)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/", h.EventHandler.Create)
			r.Patch("/{id}/publish", h.EventHandler.Publish)
			r.Patch("/{id}/cancel", h.EventHandler.Cancel)
		})
	})
	r.Route("/api/payments", func(r chi.Router) {
		r.Use(auth.OptionalAuthMiddleware)
		r.Post("/simulate", h.PaymentHandler.Simulate)
	})

	return r
}
