package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akibsaleh/dwellife-server/internal/dtos"
	"github.com/akibsaleh/dwellife-server/internal/testhelpers"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

func TestMinorUnitsRoundsInsteadOfTruncating(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{10, 1000},
		{10.99, 1099},
		{10.995, 1100},
		{1099.9999, 110000},
		{0.1 + 0.2, 30}, // classic float drift
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, MinorUnits(tc.amount), "amount %v", tc.amount)
	}
}

func TestRecordPaymentUpdatesAgreement(t *testing.T) {
	agreements := testhelpers.NewInMemAgreementRepo()
	users := testhelpers.NewInMemUserRepo()
	agreementSvc := NewAgreementService(agreements, users)
	paymentSvc := NewPaymentService(testhelpers.NewInMemPaymentHistoryRepo(agreements))
	ctx := context.Background()

	_, err := agreementSvc.Create(ctx, agreementReq("a@x.com"))
	require.NoError(t, err)

	_, err = paymentSvc.Record(ctx, "a@x.com", &dtos.RecordPaymentRequest{
		Email:       "a@x.com",
		Month:       "march",
		Rent:        1250,
		PaymentDate: "2024-03-01",
	})
	require.NoError(t, err)

	a, err := agreements.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, a.LastPayment)
	require.Equal(t, "2024-03-01", *a.LastPayment)
	require.NotNil(t, a.Month)
	require.Equal(t, "march", *a.Month)
}

func TestRecordPaymentForOtherEmailIsForbidden(t *testing.T) {
	agreements := testhelpers.NewInMemAgreementRepo()
	repo := testhelpers.NewInMemPaymentHistoryRepo(agreements)
	svc := NewPaymentService(repo)

	_, err := svc.Record(context.Background(), "mallory@example.com", &dtos.RecordPaymentRequest{
		Email:       "a@x.com",
		Month:       "march",
		Rent:        1250,
		PaymentDate: "2024-03-01",
	})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusForbidden, appErr.StatusCode)
	require.Empty(t, repo.Payments)
}

func TestHistoryFiltersByMonth(t *testing.T) {
	agreements := testhelpers.NewInMemAgreementRepo()
	repo := testhelpers.NewInMemPaymentHistoryRepo(agreements)
	svc := NewPaymentService(repo)
	ctx := context.Background()

	for _, month := range []string{"january", "february", "march"} {
		_, err := svc.Record(ctx, "a@x.com", &dtos.RecordPaymentRequest{
			Email:       "a@x.com",
			Month:       month,
			Rent:        1250,
			PaymentDate: "2024-03-01",
		})
		require.NoError(t, err)
	}

	all, err := svc.History(ctx, "a@x.com", "a@x.com", "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	march, err := svc.History(ctx, "a@x.com", "a@x.com", "march")
	require.NoError(t, err)
	require.Len(t, march, 1)
	require.Equal(t, "march", march[0].Month)

	_, err = svc.History(ctx, "a@x.com", "b@x.com", "")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusForbidden, appErr.StatusCode)
}
