package controllers

import (
	"net/http"
	"strconv"

	"github.com/akibsaleh/dwellife-server/internal/services"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

type ApartmentController struct {
	apartments *services.ApartmentService
}

func NewApartmentController(apartments *services.ApartmentService) *ApartmentController {
	return &ApartmentController{apartments: apartments}
}

// GET /api/apartments?page=N
func (c *ApartmentController) ListHandler(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "page must be an integer", nil, err)
			return
		}
		page = parsed
	}

	resp, err := c.apartments.ListPage(r.Context(), page)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
