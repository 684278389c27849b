package monitoring

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avoronin/eventpool/internal/service/monitoringservice"
	"github.com/avoronin/eventpool/pkg/utils"
)

//go:generate mockgen -source=monitoring.go -destination=mock_monitoring.go -package=monitoring

type Service interface {
	Snapshot(ctx context.Context, eventID string) (*monitoringservice.Snapshot, error)
}

type MonitoringHandler struct {
	monitoringService Service
}

func New(monitoringService Service) *MonitoringHandler {
	return &MonitoringHandler{
		monitoringService: monitoringService,
	}
}

// GetSnapshot godoc
//
//	@Summary		Get the monitoring snapshot of an event
//	@Description	Current control point, collected/deficit/surplus totals, ranked applicants and per-applicant settlement. Available once the applications window has closed.
//	@Tags			Monitoring
//	@Produce		json
//	@Param			id	path		string	true	"Event ID"
//	@Success		200	{object}	monitoringservice.Snapshot
//	@Failure		400	{object}	utils.Response	"Applications window still open"
//	@Failure		404	{object}	utils.Response	"Event not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/events/{id}/monitoring [get]
func (h *MonitoringHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.monitoringService.Snapshot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, monitoringservice.ErrEventNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, monitoringservice.ErrNotAvailable):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch monitoring data")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, snapshot)
}
