package refresher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avoronin/eventpool/internal/config"
	"github.com/avoronin/eventpool/internal/domain"
	"github.com/avoronin/eventpool/internal/timeline"
)

//go:generate mockgen -source=refresher.go -destination=mock_refresher.go -package=refresher

type EventRepo interface {
	FindByStatus(ctx context.Context, status string) ([]domain.Event, error)
	UpdateControlPoint(ctx context.Context, id string, point string) error
}

var refreshingEvents sync.Map

// Service periodically re-resolves the control point of every published
// event so the stored value stays close to the wall clock even when nobody
// is polling monitoring.
type Service struct {
	eventRepo      EventRepo
	workerPool     WorkerPoolI
	updateInterval time.Duration
	now            func() time.Time
}

func New(cfg *config.Config, eventRepo EventRepo) *Service {
	return &Service{
		eventRepo:      eventRepo,
		workerPool:     NewWorkerPool(10),
		updateInterval: cfg.RefreshInterval,
		now:            time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Control point refresher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping refresher")
			return
		case <-ticker.C:
			s.refreshEvents(ctx)
		}
	}
}

func (s *Service) refreshEvents(ctx context.Context) {
	events, err := s.eventRepo.FindByStatus(ctx, domain.PublishedEventStatus)
	if err != nil {
		zap.L().Error("Failed to fetch events for refresh", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, event := range events {
		event := event

		if _, loaded := refreshingEvents.LoadOrStore(event.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer refreshingEvents.Delete(event.ID)
				return s.refreshEvent(ctx, event)
			})
			if err != nil {
				refreshingEvents.Delete(event.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error refreshing events", zap.Error(err))
	}
}

func (s *Service) refreshEvent(ctx context.Context, event domain.Event) error {
	current, _ := timeline.Resolve(s.now(), event.Schedule())
	if current == event.CurrentControlPoint {
		return nil
	}

	if err := s.eventRepo.UpdateControlPoint(ctx, event.ID, string(current)); err != nil {
		return err
	}

	zap.L().Info("Control point advanced",
		zap.String("event_id", event.ID),
		zap.String("from", string(event.CurrentControlPoint)),
		zap.String("to", string(current)),
	)
	return nil
}
