package settlement

import (
	"testing"
	"time"

	"github.com/avoronin/eventpool/internal/domain"
	"github.com/avoronin/eventpool/pkg/anoncode"
	"github.com/stretchr/testify/assert"
)

const testEventID = "c0a80121-7ac0-4e1c-9f42-0c5a3f6b2d11"

func at(min int) time.Time {
	return time.Date(2025, time.March, 1, 10, min, 0, 0, time.UTC)
}

func payment(login string, amount int64, createdAt time.Time) domain.Payment {
	return domain.Payment{
		EventID:    testEventID,
		PayerLogin: login,
		Amount:     amount,
		Currency:   "RUB",
		Status:     domain.SuccessPaymentStatus,
		CreatedAt:  createdAt,
	}
}

func TestAggregateGrouping(t *testing.T) {
	payments := []domain.Payment{
		payment("alice", 3000, at(0)),
		payment("bob", 5000, at(1)),
		payment("alice", 2000, at(2)),
	}

	applicants := Aggregate(payments, testEventID)

	assert.Len(t, applicants, 2)
	// bob ранжируется выше: 5000 = 5000, но его платеж завершен раньше
	assert.Equal(t, "bob", applicants[0].Login)
	assert.Equal(t, int64(5000), applicants[0].PaidAmount)
	assert.Equal(t, "alice", applicants[1].Login)
	assert.Equal(t, int64(5000), applicants[1].PaidAmount)
	assert.Len(t, applicants[1].Payments, 2)
	// payment history keeps the input's chronological order
	assert.Equal(t, int64(3000), applicants[1].Payments[0].Amount)
	assert.Equal(t, int64(2000), applicants[1].Payments[1].Amount)
	assert.Equal(t, 1, applicants[0].Seats)
}

func TestAggregateAnonymousCollapse(t *testing.T) {
	payments := []domain.Payment{
		payment("", 1000, at(0)),
		payment("alice", 500, at(1)),
		payment("", 2000, at(2)),
	}

	applicants := Aggregate(payments, testEventID)

	assert.Len(t, applicants, 2)
	assert.Equal(t, anoncode.AnonymousCode, applicants[0].Code)
	assert.Empty(t, applicants[0].Login)
	assert.Equal(t, int64(3000), applicants[0].PaidAmount)
	assert.Len(t, applicants[0].Payments, 2)
}

func TestAggregateOrdering(t *testing.T) {
	tests := []struct {
		name       string
		payments   []domain.Payment
		wantLogins []string
	}{
		{
			name: "descending by paid amount",
			payments: []domain.Payment{
				payment("low", 1000, at(0)),
				payment("high", 9000, at(1)),
				payment("mid", 5000, at(2)),
			},
			wantLogins: []string{"high", "mid", "low"},
		},
		{
			name: "amount tie broken by earlier last payment",
			payments: []domain.Payment{
				payment("late", 5000, at(9)),
				payment("early", 5000, at(1)),
			},
			wantLogins: []string{"early", "late"},
		},
		{
			name: "several payments compare by the final one",
			payments: []domain.Payment{
				payment("split", 2000, at(0)),
				payment("single", 5000, at(3)),
				payment("split", 3000, at(8)),
			},
			wantLogins: []string{"single", "split"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applicants := Aggregate(tt.payments, testEventID)
			var logins []string
			for i := range applicants {
				logins = append(logins, applicants[i].Login)
			}
			assert.Equal(t, tt.wantLogins, logins)
		})
	}
}

func TestAggregateFullTieFallsBackToCode(t *testing.T) {
	payments := []domain.Payment{
		payment("alice", 5000, at(5)),
		payment("bob", 5000, at(5)),
	}

	applicants := Aggregate(payments, testEventID)

	assert.Len(t, applicants, 2)
	assert.Less(t, applicants[0].Code, applicants[1].Code)
}

func TestAggregateDeterministicCodes(t *testing.T) {
	payments := []domain.Payment{
		payment("alice", 5000, at(0)),
		payment("bob", 4000, at(1)),
	}

	first := Aggregate(payments, testEventID)
	second := Aggregate(payments, testEventID)
	assert.Equal(t, first, second)

	// same payer in another event gets another code
	other := Aggregate(payments, "another-event")
	assert.NotEqual(t, first[0].Code, other[0].Code)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil, testEventID))
}
