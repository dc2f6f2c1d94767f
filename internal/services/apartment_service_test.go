package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/akibsaleh/dwellife-server/internal/models"
	"github.com/akibsaleh/dwellife-server/internal/testhelpers"
)

func seedApartments(t *testing.T, repo *testhelpers.InMemApartmentRepo, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		err := repo.Create(context.Background(), &models.Apartment{
			ID:          uuid.New(),
			ApartmentNo: fmt.Sprintf("10%d", i),
			FloorNo:     "1",
			BlockName:   "A",
			Rent:        1000,
		})
		require.NoError(t, err)
	}
}

func TestListPageReturnsAtMostPageSize(t *testing.T) {
	repo := testhelpers.NewInMemApartmentRepo()
	seedApartments(t, repo, 14)
	svc := NewApartmentService(repo)
	ctx := context.Background()

	for page := 1; page <= 3; page++ {
		resp, err := svc.ListPage(ctx, page)
		require.NoError(t, err)
		require.Equal(t, int64(14), resp.Total)
		require.LessOrEqual(t, len(resp.Apartments), PageSize)
	}

	first, err := svc.ListPage(ctx, 1)
	require.NoError(t, err)
	require.Len(t, first.Apartments, 6)

	last, err := svc.ListPage(ctx, 3)
	require.NoError(t, err)
	require.Len(t, last.Apartments, 2)
}

func TestListPageClampsNonPositivePages(t *testing.T) {
	repo := testhelpers.NewInMemApartmentRepo()
	seedApartments(t, repo, 8)
	svc := NewApartmentService(repo)
	ctx := context.Background()

	firstPage, err := svc.ListPage(ctx, 1)
	require.NoError(t, err)

	for _, page := range []int{0, -1, -100} {
		resp, err := svc.ListPage(ctx, page)
		require.NoError(t, err)
		require.Equal(t, firstPage.Apartments, resp.Apartments)
	}
}

func TestListPageBeyondEndIsEmpty(t *testing.T) {
	repo := testhelpers.NewInMemApartmentRepo()
	seedApartments(t, repo, 3)
	svc := NewApartmentService(repo)

	resp, err := svc.ListPage(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, int64(3), resp.Total)
	require.Empty(t, resp.Apartments)
}
