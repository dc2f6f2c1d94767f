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

type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register saves a user, idempotently by email: a second call with the
// same email reports "already exists" and mutates nothing.
func (s *UserService) Register(ctx context.Context, req *dtos.RegisterUserRequest) (*dtos.RegisterUserResponse, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dtos.RegisterUserResponse{Message: "User Already Exists", InsertedID: nil}, nil
	}

	role := models.RoleUser
	if req.Role != "" {
		role, err = models.ParseRole(req.Role)
		if err != nil {
			return nil, &utils.AppError{
				StatusCode: http.StatusBadRequest,
				Code:       utils.ErrCodeValidation,
				Message:    "Unknown role",
				Err:        err,
			}
		}
	}

	u := &models.User{
		ID:    uuid.New(),
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	id := u.ID.String()
	return &dtos.RegisterUserResponse{InsertedID: &id}, nil
}

// HasRole reports whether the user behind email currently holds role.
// A missing user simply reports false.
func (s *UserService) HasRole(ctx context.Context, email string, role models.RoleType) (bool, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u != nil && u.Role == role, nil
}

func (s *UserService) ListByRole(ctx context.Context, role string) ([]*models.User, error) {
	parsed, err := models.ParseRole(role)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Unknown role",
			Err:        err,
		}
	}
	return s.users.ListByRole(ctx, parsed)
}

func (s *UserService) UpdateRole(ctx context.Context, email, role string) error {
	parsed, err := models.ParseRole(role)
	if err != nil {
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Unknown role",
			Err:        err,
		}
	}
	affected, err := s.users.UpdateRole(ctx, email, parsed)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &utils.AppError{
			StatusCode: http.StatusNotFound,
			Code:       utils.ErrCodeNotFound,
			Message:    "User not found",
			Err:        utils.ErrNotFound,
		}
	}
	return nil
}

// RemoveMember resets a user's role back to the baseline "user".
func (s *UserService) RemoveMember(ctx context.Context, email string) error {
	affected, err := s.users.UpdateRole(ctx, email, models.RoleUser)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &utils.AppError{
			StatusCode: http.StatusNotFound,
			Code:       utils.ErrCodeNotFound,
			Message:    "User not found",
			Err:        utils.ErrNotFound,
		}
	}
	return nil
}
