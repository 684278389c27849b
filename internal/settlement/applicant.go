// Package settlement contains the read-path core of the platform: folding
// raw payments into ranked applicants and computing the per-applicant
// settlement once an event's application window has closed. Everything here
// is a pure function of its inputs; snapshots are recomputed on every read
// and never persisted.
package settlement

import (
	"sort"
	"time"

	"github.com/avoronin/eventpool/internal/domain"
	"github.com/avoronin/eventpool/pkg/anoncode"
)

// PaymentRecord is one successful contribution retained in an applicant's
// history, in chronological order.
type PaymentRecord struct {
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// Applicant is a per-payer aggregate built fresh on every read. One
// applicant occupies exactly one seat regardless of how many payments they
// made.
type Applicant struct {
	Code       string          `json:"code"`
	Login      string          `json:"login,omitempty"`
	Seats      int             `json:"seats"`
	PaidAmount int64           `json:"paidAmount"`
	Payments   []PaymentRecord `json:"payments"`
}

// LastPaymentAt returns the timestamp of the applicant's most recent
// payment. The second value is false when the history is empty.
func (a *Applicant) LastPaymentAt() (time.Time, bool) {
	if len(a.Payments) == 0 {
		return time.Time{}, false
	}
	return a.Payments[len(a.Payments)-1].CreatedAt, true
}

// Aggregate folds a list of successful payments, pre-sorted ascending by
// creation time, into ranked applicants. Payments are grouped by payer
// login; payments without a login collapse into one synthetic anonymous
// applicant. Display codes are derived deterministically from the payer
// login and the event id.
//
// Ranking: paid amount descending, then last-payment time ascending (being
// first to reach an amount wins the seat), then display code ascending for
// full determinism.
func Aggregate(payments []domain.Payment, eventID string) []Applicant {
	byLogin := make(map[string]*Applicant)
	var order []string

	for _, p := range payments {
		login := p.PayerLogin
		if login == "" {
			login = domain.AnonymousPayer
		}

		record := PaymentRecord{Amount: p.Amount, CreatedAt: p.CreatedAt}

		if existing, ok := byLogin[login]; ok {
			existing.PaidAmount += p.Amount
			existing.Payments = append(existing.Payments, record)
			continue
		}

		applicant := &Applicant{
			Code:       displayCode(login, eventID),
			Seats:      1,
			PaidAmount: p.Amount,
			Payments:   []PaymentRecord{record},
		}
		if login != domain.AnonymousPayer {
			applicant.Login = login
		}
		byLogin[login] = applicant
		order = append(order, login)
	}

	applicants := make([]Applicant, 0, len(order))
	for _, login := range order {
		applicants = append(applicants, *byLogin[login])
	}

	sort.SliceStable(applicants, func(i, j int) bool {
		return rankLess(&applicants[i], &applicants[j])
	})

	return applicants
}

func displayCode(login, eventID string) string {
	if login == domain.AnonymousPayer {
		return anoncode.AnonymousCode
	}
	return anoncode.Code(login, eventID)
}

func rankLess(a, b *Applicant) bool {
	if a.PaidAmount != b.PaidAmount {
		return a.PaidAmount > b.PaidAmount
	}

	timeA, okA := a.LastPaymentAt()
	timeB, okB := b.LastPaymentAt()
	switch {
	case okA && okB && !timeA.Equal(timeB):
		return timeA.Before(timeB)
	case okA && !okB:
		return true
	case !okA && okB:
		return false
	}

	return a.Code < b.Code
}
