package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/akibsaleh/dwellife-server/internal/models"
)

// ApartmentRepository defines the data operations for apartments.
// The API only ever reads apartments; Create exists for seeding.
type ApartmentRepository interface {
	Create(ctx context.Context, a *models.Apartment) error
	Count(ctx context.Context) (int64, error)
	ListPage(ctx context.Context, offset, limit int) ([]*models.Apartment, error)
}

type apartmentRepo struct {
	db DB
}

func NewApartmentRepository(db DB) ApartmentRepository {
	return &apartmentRepo{db: db}
}

func baseSelectApartment() string {
	return `
		SELECT id, apartment_no, floor_no, block_name, image, rent, created_at
		FROM apartments
	`
}

func scanApartment(row pgx.Row) (*models.Apartment, error) {
	var a models.Apartment
	err := row.Scan(&a.ID, &a.ApartmentNo, &a.FloorNo, &a.BlockName, &a.Image, &a.Rent, &a.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *apartmentRepo) Create(ctx context.Context, a *models.Apartment) error {
	q := `
		INSERT INTO apartments (id, apartment_no, floor_no, block_name, image, rent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, q, a.ID, a.ApartmentNo, a.FloorNo, a.BlockName, a.Image, a.Rent)
	return err
}

func (r *apartmentRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM apartments`).Scan(&n)
	return n, err
}

func (r *apartmentRepo) ListPage(ctx context.Context, offset, limit int) ([]*models.Apartment, error) {
	q := baseSelectApartment() + " ORDER BY created_at, id OFFSET $1 LIMIT $2"
	rows, err := r.db.Query(ctx, q, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apartments []*models.Apartment
	for rows.Next() {
		a, err := scanApartment(rows)
		if err != nil {
			return nil, err
		}
		apartments = append(apartments, a)
	}
	return apartments, rows.Err()
}
