package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/promopulse/backend/internal/models"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// CreateWithProfile inserts the user row and its role profile (sponsor or
// influencer) in a single transaction, so a failure on the second insert
// never leaves an orphaned user behind.
func (r *UserRepo) CreateWithProfile(ctx context.Context, u *models.User, industry string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO users (name, password_hash, email, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, u.Name, u.PasswordHash, u.Email, u.Role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return err
	}

	switch u.Role {
	case models.RoleSponsor:
		_, err = tx.Exec(ctx, `
			INSERT INTO sponsors (user_id, company_name, industry, budget)
			VALUES ($1, $2, $3, 0)
		`, u.ID, u.Name, industry)
	case models.RoleInfluencer:
		_, err = tx.Exec(ctx, `
			INSERT INTO influencers (user_id, profile_name, niche, reach)
			VALUES ($1, $2, $3, 0)
		`, u.ID, u.Name, industry)
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, password_hash, email, role, created_at
		FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, password_hash, email, role, created_at
		FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}
