package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/akibsaleh/dwellife-server/internal/dtos"
	"github.com/akibsaleh/dwellife-server/internal/services"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

var validate = validator.New()

type AuthController struct {
	tokens *services.TokenService
}

func NewAuthController(tokens *services.TokenService) *AuthController {
	return &AuthController{tokens: tokens}
}

// POST /api/jwt
func (c *AuthController) IssueTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Email required / malformed", nil, err)
		return
	}

	token, err := c.tokens.Issue(req.Email)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Could not issue token", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.TokenResponse{Token: token})
}
