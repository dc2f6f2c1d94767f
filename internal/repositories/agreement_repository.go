package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/akibsaleh/dwellife-server/internal/models"
)

// AgreementRepository defines the data operations for rental agreements.
type AgreementRepository interface {
	Create(ctx context.Context, a *models.Agreement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Agreement, error)
	GetByEmail(ctx context.Context, email string) (*models.Agreement, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.AgreementStatusType, acceptDate string) (int64, error)
}

type agreementRepo struct {
	db DB
}

func NewAgreementRepository(db DB) AgreementRepository {
	return &agreementRepo{db: db}
}

func baseSelectAgreement() string {
	return `
		SELECT id, user_name, email, floor_no, block_name, apartment_no, rent,
		       status, accept_date, last_payment, month, created_at
		FROM agreements
	`
}

func scanAgreement(row pgx.Row) (*models.Agreement, error) {
	var a models.Agreement
	err := row.Scan(
		&a.ID, &a.UserName, &a.Email, &a.FloorNo, &a.BlockName, &a.ApartmentNo, &a.Rent,
		&a.Status, &a.AcceptDate, &a.LastPayment, &a.Month, &a.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *agreementRepo) Create(ctx context.Context, a *models.Agreement) error {
	q := `
		INSERT INTO agreements (
			id, user_name, email, floor_no, block_name, apartment_no, rent,
			status, accept_date, last_payment, month, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
	`
	_, err := r.db.Exec(ctx, q,
		a.ID, a.UserName, a.Email, a.FloorNo, a.BlockName, a.ApartmentNo, a.Rent,
		a.Status, a.AcceptDate, a.LastPayment, a.Month,
	)
	return err
}

func (r *agreementRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Agreement, error) {
	row := r.db.QueryRow(ctx, baseSelectAgreement()+" WHERE id = $1", id)
	return scanAgreement(row)
}

// GetByEmail returns the single agreement for an email, or nil.
// Emails with more than one agreement resolve to the most recent.
func (r *agreementRepo) GetByEmail(ctx context.Context, email string) (*models.Agreement, error) {
	q := baseSelectAgreement() + " WHERE email = $1 ORDER BY created_at DESC LIMIT 1"
	row := r.db.QueryRow(ctx, q, email)
	return scanAgreement(row)
}

// UpdateStatus is a pure update keyed by agreement id; no-match is
// reported through the affected-row count rather than an upsert.
func (r *agreementRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.AgreementStatusType, acceptDate string) (int64, error) {
	q := `UPDATE agreements SET status = $1, accept_date = $2 WHERE id = $3`
	tag, err := r.db.Exec(ctx, q, status, acceptDate, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
