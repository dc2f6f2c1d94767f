package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/akibsaleh/dwellife-server/internal/dtos"
	"github.com/akibsaleh/dwellife-server/internal/middleware"
	"github.com/akibsaleh/dwellife-server/internal/services"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// POST /api/create-payment-intent
func (c *PaymentController) CreateIntentHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.PaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "rent must be a positive amount", nil, err)
		return
	}

	resp, err := c.payments.CreateIntent(r.Context(), req.Rent)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// POST /api/payment-history
func (c *PaymentController) RecordHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "email, month, rent and paymentDate required", nil, err)
		return
	}

	callerEmail, _ := middleware.UserEmail(r.Context())
	payment, err := c.payments.Record(r.Context(), callerEmail, &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, payment)
}

// GET /api/payment-history?email=&month=
func (c *PaymentController) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	month := r.URL.Query().Get("month")
	if email == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "email query parameter required", nil)
		return
	}

	callerEmail, _ := middleware.UserEmail(r.Context())
	payments, err := c.payments.History(r.Context(), callerEmail, email, month)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}
