package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/avoronin/eventpool/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var paymentColumns = []string{
	"id", "event_id", "payer_login", "amount", "currency",
	"status", "provider_txn_id", "is_test", "created_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	payment := &domain.Payment{
		ID:            "pay-1",
		EventID:       "event-1",
		PayerLogin:    "alice",
		Amount:        5000,
		Currency:      "RUB",
		Status:        domain.SuccessPaymentStatus,
		ProviderTxnID: "TEST-abc",
		IsTest:        true,
		CreatedAt:     now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create payment successfully",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
					WithArgs("pay-1", "event-1", "alice", int64(5000), "RUB",
						domain.SuccessPaymentStatus, "TEST-abc", true, now).
					WillReturnRows(pgxmock.NewRows(paymentColumns).
						AddRow("pay-1", "event-1", "alice", int64(5000), "RUB",
							domain.SuccessPaymentStatus, "TEST-abc", true, now))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
					WithArgs("pay-1", "event-1", "alice", int64(5000), "RUB",
						domain.SuccessPaymentStatus, "TEST-abc", true, now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), payment)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, payment, result)
			}
		})
	}
}

func TestRepository_FindSuccessfulByEventID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Payments found in creation order",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE event_id = $1 AND status = $2")).
					WithArgs("event-1", domain.SuccessPaymentStatus).
					WillReturnRows(pgxmock.NewRows(paymentColumns).
						AddRow("pay-1", "event-1", "alice", int64(5000), "RUB",
							domain.SuccessPaymentStatus, "TEST-a", true, now.Add(-time.Hour)).
						AddRow("pay-2", "event-1", "bob", int64(3000), "RUB",
							domain.SuccessPaymentStatus, "TEST-b", true, now))
			},
			expectErr: false,
			count:     2,
		},
		{
			name: "No payments",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE event_id = $1 AND status = $2")).
					WithArgs("event-1", domain.SuccessPaymentStatus).
					WillReturnRows(pgxmock.NewRows(paymentColumns))
			},
			expectErr: false,
			count:     0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE event_id = $1 AND status = $2")).
					WithArgs("event-1", domain.SuccessPaymentStatus).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			payments, err := repo.FindSuccessfulByEventID(context.Background(), "event-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, payments, tt.count)
			}
		})
	}
}
