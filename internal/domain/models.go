package domain

import (
	"time"

	"github.com/avoronin/eventpool/internal/timeline"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Code         string    `db:"code"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	// DraftEventStatus черновик, виден только продюсеру;
	DraftEventStatus string = "draft"
	// PublishedEventStatus событие опубликовано в каталоге.
	PublishedEventStatus string = "published"
)

type Event struct {
	ID                  string         `db:"id"`
	Title               string         `db:"title"`
	Author              string         `db:"author"`
	Location            string         `db:"location"`
	Description         string         `db:"description"`
	Category            string         `db:"category"`
	Status              string         `db:"status"`
	ProducerLogin       string         `db:"producer_login"`
	PriceTotal          int64          `db:"price_total"`
	SeatLimit           int            `db:"seat_limit"`
	PricePerSeat        int64          `db:"price_per_seat"`
	IsCancelled         bool           `db:"is_cancelled"`
	CurrentControlPoint timeline.Point `db:"current_control_point"`
	CreatedAt           time.Time      `db:"created_at"`
	StartApplicationsAt *time.Time     `db:"start_applications_at"`
	EndApplicationsAt   *time.Time     `db:"end_applications_at"`
	StartContractsAt    *time.Time     `db:"start_contracts_at"`
	StartAt             *time.Time     `db:"start_at"`
	EndAt               *time.Time     `db:"end_at"`
}

// Schedule projects the event timestamps into the timeline walk order.
func (e *Event) Schedule() timeline.Schedule {
	createdAt := e.CreatedAt
	return timeline.Schedule{
		CreatedAt:           &createdAt,
		ApplicationsOpenAt:  e.StartApplicationsAt,
		ApplicationsCloseAt: e.EndApplicationsAt,
		ContractsStartAt:    e.StartContractsAt,
		EventStartAt:        e.StartAt,
		EventEndAt:          e.EndAt,
	}
}

const (
	// SuccessPaymentStatus платеж прошел;
	SuccessPaymentStatus string = "SUCCESS"
	// FailedPaymentStatus платеж отклонен.
	FailedPaymentStatus string = "FAILED"
)

// AnonymousPayer is the sentinel identity recorded for payments made without
// an account. All anonymous payments collapse into one synthetic applicant.
const AnonymousPayer = "anonymous"

type Payment struct {
	ID            string    `db:"id"`
	EventID       string    `db:"event_id"`
	PayerLogin    string    `db:"payer_login"`
	Amount        int64     `db:"amount"`
	Currency      string    `db:"currency"`
	Status        string    `db:"status"`
	ProviderTxnID string    `db:"provider_txn_id"`
	IsTest        bool      `db:"is_test"`
	CreatedAt     time.Time `db:"created_at"`
}
