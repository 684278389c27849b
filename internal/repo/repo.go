package repo

import (
	"github.com/avoronin/eventpool/internal/pg"
	eventrepo "github.com/avoronin/eventpool/internal/repo/event-repo"
	paymentrepo "github.com/avoronin/eventpool/internal/repo/payment-repo"
	userrepo "github.com/avoronin/eventpool/internal/repo/user-repo"
)

// Repositories holds the concrete repositories; the event and payment repos
// are consumed through per-service interfaces by several services each.
type Repositories struct {
	UserRepo    *userrepo.Repository
	EventRepo   *eventrepo.Repository
	PaymentRepo *paymentrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	eventRepo := eventrepo.New(conn, txManager)
	paymentRepo := paymentrepo.New(conn)

	return &Repositories{
		UserRepo:    userRepo,
		EventRepo:   eventRepo,
		PaymentRepo: paymentRepo,
	}
}
