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

type CouponService struct {
	coupons repositories.CouponRepository
}

func NewCouponService(coupons repositories.CouponRepository) *CouponService {
	return &CouponService{coupons: coupons}
}

func (s *CouponService) Create(ctx context.Context, req *dtos.CreateCouponRequest) (*models.Coupon, error) {
	c := &models.Coupon{
		ID:          uuid.New(),
		Code:        req.Code,
		Discount:    req.Discount,
		Description: req.Description,
		Available:   true,
	}
	if err := s.coupons.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CouponService) ListAll(ctx context.Context) ([]*models.Coupon, error) {
	return s.coupons.ListAll(ctx)
}

func (s *CouponService) ListAvailable(ctx context.Context) ([]*models.Coupon, error) {
	return s.coupons.ListAvailable(ctx)
}

// GetByCode returns the coupon for a business code, or nil when none
// matches.
func (s *CouponService) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	return s.coupons.GetByCode(ctx, code)
}

func (s *CouponService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	affected, err := s.coupons.SetAvailability(ctx, id, available)
	if err != nil {
		return err
	}
	if affected == 0 {
		return s.notFound()
	}
	return nil
}

func (s *CouponService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.coupons.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return s.notFound()
	}
	return nil
}

func (s *CouponService) notFound() error {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    "Coupon not found",
		Err:        utils.ErrNotFound,
	}
}
