package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/akibsaleh/dwellife-server/internal/models"
)

// UserRepository defines the data operations for users. Email is the
// logical key for everything except Create's generated ID.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error)
	UpdateRole(ctx context.Context, email string, role models.RoleType) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role models.RoleType) (int64, error)
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func baseSelectUser() string {
	return `
		SELECT id, name, email, role, created_at
		FROM users
	`
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	q := `
		INSERT INTO users (id, name, email, role, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, q, u.ID, u.Name, u.Email, u.Role)
	return err
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE email = $1", email)
	return scanUser(row)
}

func (r *userRepo) ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	q := baseSelectUser() + " WHERE role = $1 ORDER BY created_at"
	rows, err := r.db.Query(ctx, q, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateRole is a pure update: it never creates a user on no-match.
// The affected-row count lets callers surface not_found.
func (r *userRepo) UpdateRole(ctx context.Context, email string, role models.RoleType) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE users SET role = $1 WHERE email = $2`, role, email)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *userRepo) CountByRole(ctx context.Context, role models.RoleType) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&n)
	return n, err
}
