package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/akibsaleh/dwellife-server/internal/models"
	"github.com/akibsaleh/dwellife-server/internal/testhelpers"
)

func TestProfileInfoComputesPercentages(t *testing.T) {
	apartments := testhelpers.NewInMemApartmentRepo()
	users := testhelpers.NewInMemUserRepo()
	ctx := context.Background()

	seedApartments(t, apartments, 10)
	for i, role := range []models.RoleType{models.RoleMember, models.RoleMember, models.RoleUser, models.RoleAdmin} {
		require.NoError(t, users.Create(ctx, &models.User{
			ID:    uuid.New(),
			Name:  "u",
			Email: string(rune('a'+i)) + "@example.com",
			Role:  role,
		}))
	}

	resp, err := NewAdminService(apartments, users).ProfileInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(10), resp.TotalApartments)
	require.Equal(t, int64(4), resp.TotalUsers)
	require.Equal(t, int64(2), resp.TotalMembers)
	require.InDelta(t, 80.0, resp.AvailablePercent, 1e-9)
	require.InDelta(t, 20.0, resp.RentedPercent, 1e-9)
}

func TestProfileInfoZeroApartmentsReportsZeroPercent(t *testing.T) {
	apartments := testhelpers.NewInMemApartmentRepo()
	users := testhelpers.NewInMemUserRepo()

	resp, err := NewAdminService(apartments, users).ProfileInfo(context.Background())
	require.NoError(t, err)
	require.Zero(t, resp.AvailablePercent)
	require.Zero(t, resp.RentedPercent)
}
