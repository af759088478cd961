package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/promopulse/backend/internal/models"
)

type AdminRepo struct {
	pool *pgxpool.Pool
}

func NewAdminRepo(pool *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, email
		FROM admins WHERE email = $1
	`, email).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Email)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Upsert provisions an admin account, replacing the stored credentials when
// the email already exists. Used by the seedadmin binary.
func (r *AdminRepo) Upsert(ctx context.Context, a *models.Admin) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO admins (username, password_hash, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET
			username = EXCLUDED.username,
			password_hash = EXCLUDED.password_hash
		RETURNING id
	`, a.Username, a.PasswordHash, a.Email).Scan(&a.ID)
}
