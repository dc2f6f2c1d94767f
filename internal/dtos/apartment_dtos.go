package dtos

import "github.com/akibsaleh/dwellife-server/internal/models"

// ApartmentListResponse pairs one page of apartments with the full
// collection count so the client can render pagination.
type ApartmentListResponse struct {
	Total      int64               `json:"total"`
	Apartments []*models.Apartment `json:"apartments"`
}
