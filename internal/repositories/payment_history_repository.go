package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/akibsaleh/dwellife-server/internal/models"
)

// PaymentHistoryRepository defines the data operations for rent
// payment records.
type PaymentHistoryRepository interface {
	// Record inserts a payment row and updates the payer's agreement
	// (last_payment, month) in a single transaction, so a reader can
	// never observe the history row without the agreement update.
	Record(ctx context.Context, p *models.PaymentHistory) error
	FindByEmail(ctx context.Context, email, month string) ([]*models.PaymentHistory, error)
}

type paymentHistoryRepo struct {
	db TxBeginner
}

func NewPaymentHistoryRepository(db TxBeginner) PaymentHistoryRepository {
	return &paymentHistoryRepo{db: db}
}

func baseSelectPayment() string {
	return `
		SELECT id, email, month, rent, payment_date, created_at
		FROM payment_history
	`
}

func scanPayment(row pgx.Row) (*models.PaymentHistory, error) {
	var p models.PaymentHistory
	err := row.Scan(&p.ID, &p.Email, &p.Month, &p.Rent, &p.PaymentDate, &p.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentHistoryRepo) Record(ctx context.Context, p *models.PaymentHistory) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO payment_history (id, email, month, rent, payment_date, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	if _, err := tx.Exec(ctx, insert, p.ID, p.Email, p.Month, p.Rent, p.PaymentDate); err != nil {
		return err
	}

	update := `UPDATE agreements SET last_payment = $1, month = $2 WHERE email = $3`
	if _, err := tx.Exec(ctx, update, p.PaymentDate, p.Month, p.Email); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *paymentHistoryRepo) FindByEmail(ctx context.Context, email, month string) ([]*models.PaymentHistory, error) {
	q := baseSelectPayment() + " WHERE email = $1"
	args := []interface{}{email}
	if month != "" {
		q += " AND month = $2"
		args = append(args, month)
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.PaymentHistory
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
