package eventservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avoronin/eventpool/internal/domain"
	"github.com/avoronin/eventpool/internal/timeline"
	"go.uber.org/zap"
)

//go:generate mockgen -source=eventservice.go -destination=mock_eventservice.go -package=eventservice

type Repo interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Event, error)
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Event, error)
	SetCancelled(ctx context.Context, id string) (*domain.Event, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrAlreadyPublished = errors.New("event already published")
	ErrAlreadyCancelled = errors.New("event already cancelled")
)

// ScheduleError rejects a proposed event schedule, carrying one entry per
// violated timestamp pair.
type ScheduleError struct {
	Fields []timeline.FieldError
}

func (e *ScheduleError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("invalid schedule: %s", strings.Join(names, ", "))
}

func (s *Service) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	if event.Status == "" {
		event.Status = domain.DraftEventStatus
	}
	event.CurrentControlPoint = timeline.T0

	if event.PricePerSeat == 0 && event.SeatLimit > 0 {
		event.PricePerSeat = int64(math.Round(float64(event.PriceTotal) / float64(event.SeatLimit)))
	}

	if fieldErrs := timeline.Validate(event.Schedule()); len(fieldErrs) > 0 {
		zap.L().Info("rejected event schedule", zap.Int("violations", len(fieldErrs)))
		return nil, &ScheduleError{Fields: fieldErrs}
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		zap.L().Error("failed to create event", zap.Error(err))
		return nil, err
	}

	zap.L().Info("event created", zap.String("event_id", created.ID), zap.String("status", created.Status))
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get event", zap.Error(err))
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindByStatus(ctx, domain.PublishedEventStatus)
	if err != nil {
		zap.L().Error("failed to list events", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (s *Service) Publish(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.Status == domain.PublishedEventStatus {
		return nil, ErrAlreadyPublished
	}

	published, err := s.repo.UpdateStatus(ctx, id, domain.PublishedEventStatus)
	if err != nil {
		zap.L().Error("failed to publish event", zap.Error(err))
		return nil, err
	}
	zap.L().Info("event published", zap.String("event_id", id))
	return published, nil
}

func (s *Service) Cancel(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.IsCancelled {
		return nil, ErrAlreadyCancelled
	}

	cancelled, err := s.repo.SetCancelled(ctx, id)
	if err != nil {
		zap.L().Error("failed to cancel event", zap.Error(err))
		return nil, err
	}
	zap.L().Info("event cancelled", zap.String("event_id", id))
	return cancelled, nil
}
