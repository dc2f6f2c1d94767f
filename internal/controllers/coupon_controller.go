package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/akibsaleh/dwellife-server/internal/dtos"
	"github.com/akibsaleh/dwellife-server/internal/services"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

type CouponController struct {
	coupons *services.CouponService
}

func NewCouponController(coupons *services.CouponService) *CouponController {
	return &CouponController{coupons: coupons}
}

// GET /api/coupons
func (c *CouponController) ListAllHandler(w http.ResponseWriter, r *http.Request) {
	coupons, err := c.coupons.ListAll(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, coupons)
}

// GET /api/available-coupons
func (c *CouponController) ListAvailableHandler(w http.ResponseWriter, r *http.Request) {
	coupons, err := c.coupons.ListAvailable(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, coupons)
}

// GET /api/coupons/{code}
func (c *CouponController) GetByCodeHandler(w http.ResponseWriter, r *http.Request) {
	coupon, err := c.coupons.GetByCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, coupon)
}

// POST /api/coupons
func (c *CouponController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "code required, discount must be 0-100", nil, err)
		return
	}

	coupon, err := c.coupons.Create(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, coupon)
}

// PATCH /api/coupons/{id}
func (c *CouponController) UpdateAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid coupon id", nil, err)
		return
	}

	var req dtos.UpdateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "available required", nil, err)
		return
	}

	if err := c.coupons.SetAvailability(r.Context(), id, *req.Available); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// DELETE /api/coupons/{id}
func (c *CouponController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid coupon id", nil, err)
		return
	}

	if err := c.coupons.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
