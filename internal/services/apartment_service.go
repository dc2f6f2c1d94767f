package services

import (
	"context"

	"github.com/akibsaleh/dwellife-server/internal/dtos"
	"github.com/akibsaleh/dwellife-server/internal/repositories"
)

// PageSize is the fixed apartment page size.
const PageSize = 6

type ApartmentService struct {
	apartments repositories.ApartmentRepository
}

func NewApartmentService(apartments repositories.ApartmentRepository) *ApartmentService {
	return &ApartmentService{apartments: apartments}
}

// ListPage returns one page of apartments plus the full collection
// count. Pages are 1-based; anything below 1 clamps to the first page.
func (s *ApartmentService) ListPage(ctx context.Context, page int) (*dtos.ApartmentListResponse, error) {
	if page < 1 {
		page = 1
	}
	total, err := s.apartments.Count(ctx)
	if err != nil {
		return nil, err
	}
	apartments, err := s.apartments.ListPage(ctx, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, err
	}
	return &dtos.ApartmentListResponse{
		Total:      total,
		Apartments: apartments,
	}, nil
}
