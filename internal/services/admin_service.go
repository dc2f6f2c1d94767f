package services

import (
	"context"

	"github.com/akibsaleh/dwellife-server/internal/dtos"
	"github.com/akibsaleh/dwellife-server/internal/models"
	"github.com/akibsaleh/dwellife-server/internal/repositories"
)

type AdminService struct {
	apartments repositories.ApartmentRepository
	users      repositories.UserRepository
}

func NewAdminService(apartments repositories.ApartmentRepository, users repositories.UserRepository) *AdminService {
	return &AdminService{apartments: apartments, users: users}
}

// ProfileInfo computes the dashboard numbers from live counts. An
// empty apartments table reports both percentages as zero instead of
// dividing by zero.
func (s *AdminService) ProfileInfo(ctx context.Context) (*dtos.AdminProfileResponse, error) {
	totalApartments, err := s.apartments.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalMembers, err := s.users.CountByRole(ctx, models.RoleMember)
	if err != nil {
		return nil, err
	}

	var availablePercent, rentedPercent float64
	if totalApartments > 0 {
		availablePercent = float64(totalApartments-totalMembers) / float64(totalApartments) * 100
		rentedPercent = 100 - availablePercent
	}

	return &dtos.AdminProfileResponse{
		TotalApartments:  totalApartments,
		TotalUsers:       totalUsers,
		TotalMembers:     totalMembers,
		AvailablePercent: availablePercent,
		RentedPercent:    rentedPercent,
	}, nil
}
