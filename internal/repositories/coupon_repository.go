package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/akibsaleh/dwellife-server/internal/models"
)

// CouponRepository defines the data operations for discount coupons.
// Lookup-by-code uses the business field; everything else keys on id.
type CouponRepository interface {
	Create(ctx context.Context, c *models.Coupon) error
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	ListAll(ctx context.Context) ([]*models.Coupon, error)
	ListAvailable(ctx context.Context) ([]*models.Coupon, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type couponRepo struct {
	db DB
}

func NewCouponRepository(db DB) CouponRepository {
	return &couponRepo{db: db}
}

func baseSelectCoupon() string {
	return `
		SELECT id, code, discount, description, available, created_at
		FROM coupons
	`
}

func scanCoupon(row pgx.Row) (*models.Coupon, error) {
	var c models.Coupon
	err := row.Scan(&c.ID, &c.Code, &c.Discount, &c.Description, &c.Available, &c.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *couponRepo) Create(ctx context.Context, c *models.Coupon) error {
	q := `
		INSERT INTO coupons (id, code, discount, description, available, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, q, c.ID, c.Code, c.Discount, c.Description, c.Available)
	return err
}

func (r *couponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	row := r.db.QueryRow(ctx, baseSelectCoupon()+" WHERE code = $1", code)
	return scanCoupon(row)
}

func (r *couponRepo) ListAll(ctx context.Context) ([]*models.Coupon, error) {
	return r.list(ctx, baseSelectCoupon()+" ORDER BY created_at DESC")
}

func (r *couponRepo) ListAvailable(ctx context.Context) ([]*models.Coupon, error) {
	return r.list(ctx, baseSelectCoupon()+" WHERE available ORDER BY created_at DESC")
}

func (r *couponRepo) list(ctx context.Context, q string) ([]*models.Coupon, error) {
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []*models.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func (r *couponRepo) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE coupons SET available = $1 WHERE id = $2`, available, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *couponRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
