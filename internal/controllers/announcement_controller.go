package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/akibsaleh/dwellife-server/internal/dtos"
	"github.com/akibsaleh/dwellife-server/internal/services"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

type AnnouncementController struct {
	announcements *services.AnnouncementService
}

func NewAnnouncementController(announcements *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcements: announcements}
}

// GET /api/announcements
func (c *AnnouncementController) ListHandler(w http.ResponseWriter, r *http.Request) {
	announcements, err := c.announcements.ListAll(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, announcements)
}

// POST /api/announcements
func (c *AnnouncementController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "title and details required", nil, err)
		return
	}

	announcement, err := c.announcements.Create(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, announcement)
}
