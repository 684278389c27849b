package service

import (
	"github.com/avoronin/eventpool/internal/handlers/auth"
	"github.com/avoronin/eventpool/internal/handlers/events"
	"github.com/avoronin/eventpool/internal/handlers/monitoring"
	"github.com/avoronin/eventpool/internal/handlers/payments"

	pkgauth "github.com/avoronin/eventpool/pkg/auth"

	"github.com/avoronin/eventpool/internal/repo"
	"github.com/avoronin/eventpool/internal/service/authservice"
	"github.com/avoronin/eventpool/internal/service/eventservice"
	"github.com/avoronin/eventpool/internal/service/monitoringservice"
	"github.com/avoronin/eventpool/internal/service/paymentservice"
)

type Services struct {
	AuthService       auth.Service
	EventService      events.Service
	PaymentService    payments.Service
	MonitoringService monitoring.Service
}

func New(repo *repo.Repositories) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	eventService := eventservice.New(repo.EventRepo)
	paymentService := paymentservice.New(repo.EventRepo, repo.PaymentRepo)
	monitoringService := monitoringservice.New(repo.EventRepo, repo.PaymentRepo)

	return &Services{
		AuthService:       authService,
		EventService:      eventService,
		PaymentService:    paymentService,
		MonitoringService: monitoringService,
	}
}
