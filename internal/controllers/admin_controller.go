package controllers

import (
	"net/http"

	"github.com/akibsaleh/dwellife-server/internal/services"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

type AdminController struct {
	admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{admin: admin}
}

// GET /api/admin-profile-info
func (c *AdminController) ProfileInfoHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.admin.ProfileInfo(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
