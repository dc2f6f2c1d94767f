package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akibsaleh/dwellife-server/internal/dtos"
	"github.com/akibsaleh/dwellife-server/internal/middleware"
	"github.com/akibsaleh/dwellife-server/internal/models"
	"github.com/akibsaleh/dwellife-server/internal/services"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// POST /api/users
func (c *UserController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Name and valid email required", nil, err)
		return
	}

	resp, err := c.users.Register(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/users/admin/{email}
func (c *UserController) AdminCheckHandler(w http.ResponseWriter, r *http.Request) {
	c.roleCheck(w, r, models.RoleAdmin)
}

// GET /api/users/member/{email}
func (c *UserController) MemberCheckHandler(w http.ResponseWriter, r *http.Request) {
	c.roleCheck(w, r, models.RoleMember)
}

// roleCheck only answers for the caller's own email; asking about
// anyone else is forbidden.
func (c *UserController) roleCheck(w http.ResponseWriter, r *http.Request, role models.RoleType) {
	email := mux.Vars(r)["email"]
	callerEmail, _ := middleware.UserEmail(r.Context())
	if email != callerEmail {
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeForbidden, "Forbidden access", nil)
		return
	}

	has, err := c.users.HasRole(r.Context(), email, role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	if role == models.RoleAdmin {
		utils.RespondWithJSON(w, http.StatusOK, dtos.AdminCheckResponse{Admin: has})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MemberCheckResponse{Member: has})
}

// GET /api/users?role=
func (c *UserController) ListByRoleHandler(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	if role == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "role query parameter required", nil)
		return
	}

	users, err := c.users.ListByRole(r.Context(), role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

// PATCH /api/users/{email}
func (c *UserController) UpdateRoleHandler(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var req dtos.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "role required", nil, err)
		return
	}

	if err := c.users.UpdateRole(r.Context(), email, req.Role); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// PATCH /api/remove-member
func (c *UserController) RemoveMemberHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RemoveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Valid email required", nil, err)
		return
	}

	if err := c.users.RemoveMember(r.Context(), req.Email); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"updated": true})
}
