package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akibsaleh/dwellife-server/internal/models"
	"github.com/akibsaleh/dwellife-server/internal/repositories"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

// SeedApartments loads a fixed set of apartments for development and
// demo environments. Inserts are ON CONFLICT DO NOTHING, so reruns
// are harmless.
func SeedApartments(ctx context.Context, apartments repositories.ApartmentRepository) error {
	blocks := []string{"A", "B"}
	var count int
	for floor := 1; floor <= 3; floor++ {
		for _, block := range blocks {
			for unit := 1; unit <= 2; unit++ {
				count++
				a := &models.Apartment{
					ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("apartment-%d-%s-%d", floor, block, unit))),
					ApartmentNo: fmt.Sprintf("%d0%d", floor, unit),
					FloorNo:     fmt.Sprintf("%d", floor),
					BlockName:   block,
					Image:       fmt.Sprintf("https://dwellife.example/apartments/%d0%d.jpg", floor, unit),
					Rent:        int64(800 + 150*floor),
				}
				if err := apartments.Create(ctx, a); err != nil {
					return err
				}
			}
		}
	}
	utils.Logger.Infof("Seeded %d apartments", count)
	return nil
}
