package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/akibsaleh/dwellife-server/internal/dtos"
	"github.com/akibsaleh/dwellife-server/internal/middleware"
	"github.com/akibsaleh/dwellife-server/internal/services"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

type AgreementController struct {
	agreements *services.AgreementService
}

func NewAgreementController(agreements *services.AgreementService) *AgreementController {
	return &AgreementController{agreements: agreements}
}

// POST /api/agreement
func (c *AgreementController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateAgreementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Missing or malformed agreement fields", nil, err)
		return
	}

	agreement, err := c.agreements.Create(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, agreement)
}

// GET /api/single-agreement?email=
func (c *AgreementController) GetSingleHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "email query parameter required", nil)
		return
	}

	agreement, err := c.agreements.GetByEmail(r.Context(), email)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	// nil serializes as null; absence is not an error here.
	utils.RespondWithJSON(w, http.StatusOK, agreement)
}

// GET /api/make-payment?email=
//
// Member-gated read of the caller's own agreement, used to prefill
// the rent payment form.
func (c *AgreementController) MakePaymentHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	callerEmail, _ := middleware.UserEmail(r.Context())
	if email == "" || email != callerEmail {
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeForbidden, "Forbidden access", nil)
		return
	}

	agreement, err := c.agreements.GetByEmail(r.Context(), email)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, agreement)
}

// PATCH /api/agreements/{id}
func (c *AgreementController) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid agreement id", nil, err)
		return
	}

	var req dtos.UpdateAgreementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "status required", nil, err)
		return
	}

	if err := c.agreements.UpdateStatus(r.Context(), id, req.Status, req.AcceptDate); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"updated": true})
}
