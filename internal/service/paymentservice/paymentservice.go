package paymentservice

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/avoronin/eventpool/internal/domain"
	"github.com/avoronin/eventpool/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

type EventRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Event, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
}

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrEventCancelled = errors.New("cannot pay for a cancelled event")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrCardRejected   = errors.New("card validation failed")
)

// Card carries the simulated card details. Numbers are validated and masked,
// never stored.
type Card struct {
	Number string
	Expiry string
	CVC    string
}

// defaultFlakeRate imitates acquiring: a small fraction of otherwise valid
// payments is declined.
const defaultFlakeRate = 0.01

type Service struct {
	eventRepo   EventRepo
	paymentRepo PaymentRepo
	flakeRate   float64
	now         func() time.Time
	roll        func() float64
}

func New(eventRepo EventRepo, paymentRepo PaymentRepo) *Service {
	return &Service{
		eventRepo:   eventRepo,
		paymentRepo: paymentRepo,
		flakeRate:   defaultFlakeRate,
		now:         time.Now,
		roll:        rand.Float64,
	}
}

// Simulate validates the card, records the payment and returns it. Payments
// at or above the flake rate succeed; a declined roll is still recorded with
// a FAILED status so monitoring only ever sees successful ones.
func (s *Service) Simulate(ctx context.Context, eventID, payerLogin string, card Card, amount int64, currency string) (*domain.Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		zap.L().Error("failed to load event", zap.Error(err))
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if event.IsCancelled {
		return nil, ErrEventCancelled
	}

	now := s.now()
	if !validate.IsLuhn(card.Number) || !validate.IsExpiryValid(card.Expiry, now) || !validate.IsCVC(card.CVC) {
		zap.L().Info("card rejected", zap.String("card", validate.MaskCard(card.Number)))
		return nil, ErrCardRejected
	}

	status := domain.SuccessPaymentStatus
	if s.roll() < s.flakeRate {
		status = domain.FailedPaymentStatus
	}

	if payerLogin == "" {
		payerLogin = domain.AnonymousPayer
	}
	if currency == "" {
		currency = "RUB"
	}

	payment := &domain.Payment{
		ID:            uuid.NewString(),
		EventID:       eventID,
		PayerLogin:    payerLogin,
		Amount:        amount,
		Currency:      currency,
		Status:        status,
		ProviderTxnID: "TEST-" + uuid.NewString(),
		IsTest:        true,
		CreatedAt:     now,
	}

	created, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		zap.L().Error("failed to record payment", zap.Error(err))
		return nil, err
	}

	zap.L().Info("payment simulated",
		zap.String("event_id", eventID),
		zap.String("status", status),
		zap.String("card", validate.MaskCard(card.Number)),
		zap.String("card_type", validate.CardType(card.Number)),
		zap.Int64("amount", amount),
	)
	return created, nil
}

// SetFlakeRate overrides the simulated decline probability; tests pin it to
// 0 or 1.
func (s *Service) SetFlakeRate(rate float64) {
	s.flakeRate = rate
}
