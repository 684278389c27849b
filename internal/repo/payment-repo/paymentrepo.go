package paymentrepo

import (
	"context"

	"github.com/avoronin/eventpool/internal/domain"
	"github.com/avoronin/eventpool/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (id, event_id, payer_login, amount, currency, status, provider_txn_id, is_test, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, event_id, payer_login, amount, currency, status, provider_txn_id, is_test, created_at
    `
	row := r.db.QueryRow(ctx, query,
		payment.ID, payment.EventID, payment.PayerLogin, payment.Amount,
		payment.Currency, payment.Status, payment.ProviderTxnID, payment.IsTest, payment.CreatedAt,
	)
	var created domain.Payment
	err := row.Scan(
		&created.ID, &created.EventID, &created.PayerLogin, &created.Amount,
		&created.Currency, &created.Status, &created.ProviderTxnID, &created.IsTest, &created.CreatedAt,
	)
	if err != nil {
		zap.L().Error("failed to create payment", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// FindSuccessfulByEventID returns the event's successful payments sorted
// ascending by creation time, the order the settlement core expects.
func (r *Repository) FindSuccessfulByEventID(ctx context.Context, eventID string) ([]domain.Payment, error) {
	query := `
        SELECT id, event_id, payer_login, amount, currency, status, provider_txn_id, is_test, created_at
        FROM payments
        WHERE event_id = $1 AND status = $2
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, eventID, domain.SuccessPaymentStatus)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(
			&p.ID, &p.EventID, &p.PayerLogin, &p.Amount,
			&p.Currency, &p.Status, &p.ProviderTxnID, &p.IsTest, &p.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan payment", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}
