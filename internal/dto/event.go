package dto

import (
	"time"

	"github.com/avoronin/eventpool/internal/domain"
)

type CreateEventRequestDTO struct {
	Title               string     `json:"title" example:"Гастрономический круиз"`
	Author              string     `json:"author" example:"Шеф Иванов"`
	Location            string     `json:"location" example:"Сахалин"`
	Description         string     `json:"description,omitempty"`
	Category            string     `json:"category,omitempty" example:"gastro-show"`
	PriceTotal          int64      `json:"priceTotal" example:"500000"`
	SeatLimit           int        `json:"seatLimit,omitempty" example:"5"`
	PricePerSeat        int64      `json:"pricePerSeat,omitempty" example:"100000"`
	StartApplicationsAt *time.Time `json:"startApplicationsAt,omitempty" example:"2025-11-01T10:00:00Z"`
	EndApplicationsAt   *time.Time `json:"endApplicationsAt,omitempty" example:"2025-12-10T23:59:59Z"`
	StartContractsAt    *time.Time `json:"startContractsAt,omitempty" example:"2025-12-11T10:00:00Z"`
	StartAt             *time.Time `json:"startAt,omitempty" example:"2025-12-20T10:00:00Z"`
	EndAt               *time.Time `json:"endAt,omitempty" example:"2025-12-21T18:00:00Z"`
}

type EventResponseDTO struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Author              string     `json:"author"`
	Location            string     `json:"location"`
	Description         string     `json:"description,omitempty"`
	Category            string     `json:"category,omitempty"`
	Status              string     `json:"status" example:"published"`
	PriceTotal          int64      `json:"priceTotal"`
	SeatLimit           int        `json:"seatLimit,omitempty"`
	PricePerSeat        int64      `json:"pricePerSeat,omitempty"`
	IsCancelled         bool       `json:"isCancelled"`
	CurrentControlPoint string     `json:"currentControlPoint" example:"ti20"`
	CreatedAt           time.Time  `json:"createdAt"`
	StartApplicationsAt *time.Time `json:"startApplicationsAt,omitempty"`
	EndApplicationsAt   *time.Time `json:"endApplicationsAt,omitempty"`
	StartContractsAt    *time.Time `json:"startContractsAt,omitempty"`
	StartAt             *time.Time `json:"startAt,omitempty"`
	EndAt               *time.Time `json:"endAt,omitempty"`
}

type ScheduleErrorDTO struct {
	Field   string `json:"field" example:"endApplicationsAt"`
	Message string `json:"message" example:"must be later than startApplicationsAt"`
}

type InvalidScheduleResponseDTO struct {
	Message string             `json:"message"`
	Errors  []ScheduleErrorDTO `json:"errors"`
}

func NewEventResponse(event *domain.Event) EventResponseDTO {
	return EventResponseDTO{
		ID:                  event.ID,
		Title:               event.Title,
		Author:              event.Author,
		Location:            event.Location,
		Description:         event.Description,
		Category:            event.Category,
		Status:              event.Status,
		PriceTotal:          event.PriceTotal,
		SeatLimit:           event.SeatLimit,
		PricePerSeat:        event.PricePerSeat,
		IsCancelled:         event.IsCancelled,
		CurrentControlPoint: string(event.CurrentControlPoint),
		CreatedAt:           event.CreatedAt,
		StartApplicationsAt: event.StartApplicationsAt,
		EndApplicationsAt:   event.EndApplicationsAt,
		StartContractsAt:    event.StartContractsAt,
		StartAt:             event.StartAt,
		EndAt:               event.EndAt,
	}
}
