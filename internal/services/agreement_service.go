package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/akibsaleh/dwellife-server/internal/dtos"
	"github.com/akibsaleh/dwellife-server/internal/models"
	"github.com/akibsaleh/dwellife-server/internal/repositories"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

type AgreementService struct {
	agreements repositories.AgreementRepository
	users      repositories.UserRepository
}

func NewAgreementService(agreements repositories.AgreementRepository, users repositories.UserRepository) *AgreementService {
	return &AgreementService{agreements: agreements, users: users}
}

// Create files a new agreement application. Status always starts at
// pending; a live (non-rejected) agreement for the same email blocks
// a second application.
func (s *AgreementService) Create(ctx context.Context, req *dtos.CreateAgreementRequest) (*models.Agreement, error) {
	existing, err := s.agreements.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status != models.AgreementStatusRejected {
		return nil, &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "An agreement already exists for this email",
			Err:        utils.ErrAgreementExists,
		}
	}

	a := &models.Agreement{
		ID:          uuid.New(),
		UserName:    req.UserName,
		Email:       req.Email,
		FloorNo:     req.FloorNo,
		BlockName:   req.BlockName,
		ApartmentNo: req.ApartmentNo,
		Rent:        req.Rent,
		Status:      models.AgreementStatusPending,
	}
	if err := s.agreements.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetByEmail returns the agreement for an email, or nil when none
// exists; absence is not an error.
func (s *AgreementService) GetByEmail(ctx context.Context, email string) (*models.Agreement, error) {
	return s.agreements.GetByEmail(ctx, email)
}

// UpdateStatus sets an agreement's status and accept date. Accepting
// (checked in) also promotes the applicant to member, which is what
// feeds the dashboard's rented/available arithmetic.
func (s *AgreementService) UpdateStatus(ctx context.Context, id uuid.UUID, status, acceptDate string) error {
	parsed, err := models.ParseAgreementStatus(status)
	if err != nil {
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Unknown agreement status",
			Err:        err,
		}
	}

	agreement, err := s.agreements.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if agreement == nil {
		return &utils.AppError{
			StatusCode: http.StatusNotFound,
			Code:       utils.ErrCodeNotFound,
			Message:    "Agreement not found",
			Err:        utils.ErrNotFound,
		}
	}

	if _, err := s.agreements.UpdateStatus(ctx, id, parsed, acceptDate); err != nil {
		return err
	}

	if parsed == models.AgreementStatusCheckedIn {
		if _, err := s.users.UpdateRole(ctx, agreement.Email, models.RoleMember); err != nil {
			return err
		}
	}
	return nil
}
