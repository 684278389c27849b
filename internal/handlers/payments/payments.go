package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avoronin/eventpool/internal/domain"
	"github.com/avoronin/eventpool/internal/dto"
	"github.com/avoronin/eventpool/internal/service/paymentservice"
	"github.com/avoronin/eventpool/pkg/auth"
	"github.com/avoronin/eventpool/pkg/utils"
	"github.com/avoronin/eventpool/pkg/validate"
)

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments

type Service interface {
	Simulate(ctx context.Context, eventID, payerLogin string, card paymentservice.Card, amount int64, currency string) (*domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Simulate godoc
//
//	@Summary		Simulate a card payment for an event
//	@Description	Validates the card, records the payment and returns the masked result. Anonymous payments are allowed; a bearer token or a login in the body attributes the payment.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SimulatePaymentRequestDTO	true	"Payment payload"
//	@Success		200		{object}	dto.SimulatePaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or cancelled event"
//	@Failure		402		{object}	utils.Response	"Card rejected"
//	@Failure		404		{object}	utils.Response	"Event not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/simulate [post]
func (h *PaymentHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req dto.SimulatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.EventID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required field: eventId")
		return
	}

	payerLogin := auth.LoginFromContext(r.Context())
	if payerLogin == "" {
		payerLogin = req.Login
	}

	card := paymentservice.Card{
		Number: req.CardNumber,
		Expiry: req.Expiry,
		CVC:    req.CVC,
	}
	payment, err := h.paymentService.Simulate(r.Context(), req.EventID, payerLogin, card, req.Amount, req.Currency)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrEventNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, paymentservice.ErrEventCancelled), errors.Is(err, paymentservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrCardRejected):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process payment")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SimulatePaymentResponseDTO{
		PaymentID:     payment.ID,
		Status:        payment.Status,
		MaskedCard:    validate.MaskCard(req.CardNumber),
		CardType:      validate.CardType(req.CardNumber),
		ProviderTxnID: payment.ProviderTxnID,
	})
}
