package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/akibsaleh/dwellife-server/internal/models"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) error
	ListAll(ctx context.Context) ([]*models.Announcement, error)
}

type announcementRepo struct {
	db DB
}

func NewAnnouncementRepository(db DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(&a.ID, &a.Title, &a.Details, &a.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepo) Create(ctx context.Context, a *models.Announcement) error {
	q := `
		INSERT INTO announcements (id, title, details, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := r.db.Exec(ctx, q, a.ID, a.Title, a.Details)
	return err
}

func (r *announcementRepo) ListAll(ctx context.Context) ([]*models.Announcement, error) {
	q := `
		SELECT id, title, details, created_at
		FROM announcements
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}
