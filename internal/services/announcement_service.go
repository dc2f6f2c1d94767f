package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/akibsaleh/dwellife-server/internal/dtos"
	"github.com/akibsaleh/dwellife-server/internal/models"
	"github.com/akibsaleh/dwellife-server/internal/repositories"
)

type AnnouncementService struct {
	announcements repositories.AnnouncementRepository
}

func NewAnnouncementService(announcements repositories.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcements: announcements}
}

func (s *AnnouncementService) Create(ctx context.Context, req *dtos.CreateAnnouncementRequest) (*models.Announcement, error) {
	a := &models.Announcement{
		ID:      uuid.New(),
		Title:   req.Title,
		Details: req.Details,
	}
	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnnouncementService) ListAll(ctx context.Context) ([]*models.Announcement, error) {
	return s.announcements.ListAll(ctx)
}
