package monitoringservice

import (
	"context"
	"errors"
	"time"

	"github.com/avoronin/eventpool/internal/domain"
	"github.com/avoronin/eventpool/internal/settlement"
	"github.com/avoronin/eventpool/internal/timeline"
	"go.uber.org/zap"
)

//go:generate mockgen -source=monitoringservice.go -destination=mock_monitoringservice.go -package=monitoringservice

type EventRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	UpdateControlPoint(ctx context.Context, id string, point string) error
}

type PaymentRepo interface {
	FindSuccessfulByEventID(ctx context.Context, eventID string) ([]domain.Payment, error)
}

var (
	ErrEventNotFound = errors.New("event not found")
	// ErrNotAvailable monitoring opens once applications close (ti20).
	ErrNotAvailable = errors.New("monitoring is available after the applications window closes")
)

// Snapshot is the monitoring read-model: recomputed from payments and event
// economics on every request, never persisted.
type Snapshot struct {
	EventID              string                      `json:"eventId"`
	NowPoint             timeline.Point              `json:"nowPoint"`
	DeadlineNext         *time.Time                  `json:"deadlineNext,omitempty"`
	Collected            int64                       `json:"collected"`
	Deficit              int64                       `json:"deficit"`
	Surplus              int64                       `json:"surplus"`
	IsCancelled          bool                        `json:"isCancelled"`
	PricePerSeat         int64                       `json:"pricePerSeat"`
	TotalExtras          int64                       `json:"totalParticipantsExtras"`
	Applicants           []settlement.Applicant      `json:"applicants"`
	PersonalCalculations []settlement.PersonalResult `json:"personalCalculations"`
}

type Service struct {
	eventRepo   EventRepo
	paymentRepo PaymentRepo
	now         func() time.Time
}

func New(eventRepo EventRepo, paymentRepo PaymentRepo) *Service {
	return &Service{
		eventRepo:   eventRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}
}

// Snapshot builds the monitoring view of an event: current control point,
// collected/deficit/surplus totals, the ranked applicant list and every
// applicant's settlement result.
func (s *Service) Snapshot(ctx context.Context, eventID string) (*Snapshot, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		zap.L().Error("failed to load event", zap.Error(err))
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	now := s.now()

	// Settlement data is published only once applications have closed; an
	// event without a close timestamp keeps monitoring open.
	if event.EndApplicationsAt != nil && event.EndApplicationsAt.After(now) {
		return nil, ErrNotAvailable
	}

	current, nextDeadline := timeline.Resolve(now, event.Schedule())

	// Best-effort advisory cache: the stored point is always recomputable,
	// so a failed write must not fail the read.
	if event.CurrentControlPoint != current {
		if err := s.eventRepo.UpdateControlPoint(ctx, event.ID, string(current)); err != nil {
			zap.L().Warn("failed to update control point cache",
				zap.String("event_id", event.ID), zap.Error(err))
		}
	}

	payments, err := s.paymentRepo.FindSuccessfulByEventID(ctx, event.ID)
	if err != nil {
		zap.L().Error("failed to load payments", zap.Error(err))
		return nil, err
	}

	applicants := settlement.Aggregate(payments, event.ID)
	result := settlement.Settle(settlement.Economics{
		PriceTotal:   event.PriceTotal,
		SeatLimit:    event.SeatLimit,
		PricePerSeat: event.PricePerSeat,
		IsCancelled:  event.IsCancelled,
	}, applicants)

	return &Snapshot{
		EventID:              event.ID,
		NowPoint:             current,
		DeadlineNext:         nextDeadline,
		Collected:            result.Collected,
		Deficit:              result.Deficit,
		Surplus:              result.Surplus,
		IsCancelled:          event.IsCancelled,
		PricePerSeat:         result.PricePerSeat,
		TotalExtras:          result.TotalExtras,
		Applicants:           applicants,
		PersonalCalculations: result.Personal,
	}, nil
}
