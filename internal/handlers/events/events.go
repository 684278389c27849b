package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avoronin/eventpool/internal/domain"
	"github.com/avoronin/eventpool/internal/dto"
	"github.com/avoronin/eventpool/internal/service/eventservice"
	"github.com/avoronin/eventpool/pkg/auth"
	"github.com/avoronin/eventpool/pkg/utils"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=events

type Service interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Publish(ctx context.Context, id string) (*domain.Event, error)
	Cancel(ctx context.Context, id string) (*domain.Event, error)
}

type EventHandler struct {
	eventService Service
}

func New(eventService Service) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// Create godoc
//
//	@Summary		Create an event draft
//	@Description	Create a crowdfunded event with its six-point timeline; the schedule must be strictly chronological
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateEventRequestDTO	true	"Event payload"
//	@Success		201		{object}	dto.EventResponseDTO
//	@Failure		400		{object}	dto.InvalidScheduleResponseDTO	"Schedule ordering violations"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/events [post]
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Author == "" || req.Location == "" || req.PriceTotal <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields: title, author, location, priceTotal")
		return
	}

	event := &domain.Event{
		Title:               req.Title,
		Author:              req.Author,
		Location:            req.Location,
		Description:         req.Description,
		Category:            req.Category,
		ProducerLogin:       auth.LoginFromContext(r.Context()),
		PriceTotal:          req.PriceTotal,
		SeatLimit:           req.SeatLimit,
		PricePerSeat:        req.PricePerSeat,
		StartApplicationsAt: req.StartApplicationsAt,
		EndApplicationsAt:   req.EndApplicationsAt,
		StartContractsAt:    req.StartContractsAt,
		StartAt:             req.StartAt,
		EndAt:               req.EndAt,
	}

	created, err := h.eventService.Create(r.Context(), event)
	if err != nil {
		var scheduleErr *eventservice.ScheduleError
		if errors.As(err, &scheduleErr) {
			respondScheduleError(w, scheduleErr)
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewEventResponse(created))
}

func respondScheduleError(w http.ResponseWriter, scheduleErr *eventservice.ScheduleError) {
	resp := dto.InvalidScheduleResponseDTO{Message: "Invalid schedule"}
	for _, f := range scheduleErr.Fields {
		resp.Errors = append(resp.Errors, dto.ScheduleErrorDTO{Field: f.Field, Message: f.Message})
	}
	utils.RespondWithJSON(w, http.StatusBadRequest, resp)
}

// List godoc
//
//	@Summary		List published events
//	@Tags			Events
//	@Produce		json
//	@Success		200	{array}		dto.EventResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/events [get]
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	response := make([]dto.EventResponseDTO, len(events))
	for i := range events {
		response[i] = dto.NewEventResponse(&events[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get one event
//	@Tags			Events
//	@Produce		json
//	@Param			id	path		string	true	"Event ID"
//	@Success		200	{object}	dto.EventResponseDTO
//	@Failure		404	{object}	utils.Response	"Event not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/events/{id} [get]
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, eventservice.ErrEventNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Event not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventResponse(event))
}

// Publish godoc
//
//	@Summary		Publish an event draft
//	@Tags			Events
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Event ID"
//	@Success		200	{object}	dto.EventResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Event not found"
//	@Failure		409	{object}	utils.Response	"Event already published"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/events/{id}/publish [patch]
func (h *EventHandler) Publish(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventService.Publish(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, eventservice.ErrEventNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, eventservice.ErrAlreadyPublished):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventResponse(event))
}

// Cancel godoc
//
//	@Summary		Cancel an event
//	@Description	Mark the event cancelled: every applicant becomes eligible for a full refund
//	@Tags			Events
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Event ID"
//	@Success		200	{object}	dto.EventResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Event not found"
//	@Failure		409	{object}	utils.Response	"Event already cancelled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/events/{id}/cancel [patch]
func (h *EventHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventService.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, eventservice.ErrEventNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, eventservice.ErrAlreadyCancelled):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventResponse(event))
}
