package services

import (
	"context"
	"math"
	"net/http"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"github.com/akibsaleh/dwellife-server/internal/dtos"
	"github.com/akibsaleh/dwellife-server/internal/models"
	"github.com/akibsaleh/dwellife-server/internal/repositories"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

// PaymentCurrency is the fixed currency rent is collected in.
const PaymentCurrency = string(stripe.CurrencyUSD)

type PaymentService struct {
	payments repositories.PaymentHistoryRepository
}

func NewPaymentService(payments repositories.PaymentHistoryRepository) *PaymentService {
	return &PaymentService{payments: payments}
}

// MinorUnits converts a major-unit currency amount to cents. Rounding
// (not truncating) keeps float drift like 1099.9999 from shaving a cent.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateIntent requests a Stripe payment intent for the given rent
// amount and returns the client secret needed to complete payment.
// It does not record the payment; that is a separate client call.
func (s *PaymentService) CreateIntent(ctx context.Context, rent float64) (*dtos.PaymentIntentResponse, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(MinorUnits(rent)),
		Currency:           stripe.String(PaymentCurrency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadGateway,
			Code:       utils.ErrCodeExternalServiceFailure,
			Message:    "Payment provider rejected the request",
			Err:        err,
		}
	}
	return &dtos.PaymentIntentResponse{ClientSecret: pi.ClientSecret}, nil
}

// Record stores a completed payment and updates the payer's agreement
// in one transaction. Callers may only record payments for themselves.
func (s *PaymentService) Record(ctx context.Context, callerEmail string, req *dtos.RecordPaymentRequest) (*models.PaymentHistory, error) {
	if req.Email != callerEmail {
		return nil, emailMismatch()
	}
	p := &models.PaymentHistory{
		ID:          uuid.New(),
		Email:       req.Email,
		Month:       req.Month,
		Rent:        req.Rent,
		PaymentDate: req.PaymentDate,
	}
	if err := s.payments.Record(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// History lists a caller's own payments, optionally filtered by month.
func (s *PaymentService) History(ctx context.Context, callerEmail, email, month string) ([]*models.PaymentHistory, error) {
	if email != callerEmail {
		return nil, emailMismatch()
	}
	return s.payments.FindByEmail(ctx, email, month)
}

func emailMismatch() error {
	return &utils.AppError{
		StatusCode: http.StatusForbidden,
		Code:       utils.ErrCodeForbidden,
		Message:    "Forbidden access",
		Err:        utils.ErrEmailMismatch,
	}
}
