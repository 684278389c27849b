package eventrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/avoronin/eventpool/internal/domain"
	"github.com/avoronin/eventpool/internal/pg"
	"go.uber.org/zap"
)

const eventColumns = `id, title, author, location, description, category, status, producer_login,
        price_total, seat_limit, price_per_seat, is_cancelled, current_control_point,
        created_at, start_applications_at, end_applications_at, start_contracts_at, start_at, end_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var event domain.Event
	err := row.Scan(
		&event.ID, &event.Title, &event.Author, &event.Location, &event.Description,
		&event.Category, &event.Status, &event.ProducerLogin,
		&event.PriceTotal, &event.SeatLimit, &event.PricePerSeat, &event.IsCancelled,
		&event.CurrentControlPoint,
		&event.CreatedAt, &event.StartApplicationsAt, &event.EndApplicationsAt,
		&event.StartContractsAt, &event.StartAt, &event.EndAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *Repository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	query := `
        INSERT INTO events (id, title, author, location, description, category, status, producer_login,
            price_total, seat_limit, price_per_seat, is_cancelled, current_control_point,
            created_at, start_applications_at, end_applications_at, start_contracts_at, start_at, end_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
        RETURNING ` + eventColumns
	row := r.db.QueryRow(ctx, query,
		event.ID, event.Title, event.Author, event.Location, event.Description,
		event.Category, event.Status, event.ProducerLogin,
		event.PriceTotal, event.SeatLimit, event.PricePerSeat, event.IsCancelled,
		event.CurrentControlPoint,
		event.CreatedAt, event.StartApplicationsAt, event.EndApplicationsAt,
		event.StartContractsAt, event.StartAt, event.EndAt,
	)
	created, err := scanEvent(row)
	if err != nil {
		zap.L().Error("failed to create event", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get event", zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (r *Repository) FindByStatus(ctx context.Context, status string) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE status = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("failed to list events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			zap.L().Error("failed to scan event", zap.Error(err))
			return nil, err
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status string) (*domain.Event, error) {
	var updated *domain.Event
	query := `UPDATE events SET status = $1 WHERE id = $2 RETURNING ` + eventColumns
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		event, err := scanEvent(r.db.QueryRow(ctx, query, status, id))
		if err != nil {
			zap.L().Error("failed to update event status", zap.Error(err))
			return err
		}
		updated = event
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repository) SetCancelled(ctx context.Context, id string) (*domain.Event, error) {
	var updated *domain.Event
	query := `UPDATE events SET is_cancelled = TRUE WHERE id = $1 RETURNING ` + eventColumns
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		event, err := scanEvent(r.db.QueryRow(ctx, query, id))
		if err != nil {
			zap.L().Error("failed to cancel event", zap.Error(err))
			return err
		}
		updated = event
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateControlPoint persists the advisory control-point cache. Callers
// treat failures as non-fatal; the value is always recomputable.
func (r *Repository) UpdateControlPoint(ctx context.Context, id string, point string) error {
	query := `UPDATE events SET current_control_point = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, point, id); err != nil {
		zap.L().Error("failed to update control point", zap.Error(err))
		return err
	}
	return nil
}
