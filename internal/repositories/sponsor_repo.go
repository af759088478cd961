package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/promopulse/backend/internal/models"
)

type SponsorRepo struct {
	pool *pgxpool.Pool
}

func NewSponsorRepo(pool *pgxpool.Pool) *SponsorRepo {
	return &SponsorRepo{pool: pool}
}

func (r *SponsorRepo) GetByUserID(ctx context.Context, userID int64) (*models.Sponsor, error) {
	var s models.Sponsor
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, company_name, industry, budget
		FROM sponsors WHERE user_id = $1
	`, userID).Scan(&s.ID, &s.UserID, &s.CompanyName, &s.Industry, &s.Budget)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SponsorRepo) GetByID(ctx context.Context, id int64) (*models.Sponsor, error) {
	var s models.Sponsor
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, company_name, industry, budget
		FROM sponsors WHERE id = $1
	`, id).Scan(&s.ID, &s.UserID, &s.CompanyName, &s.Industry, &s.Budget)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SponsorRepo) List(ctx context.Context) ([]models.Sponsor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, company_name, industry, budget
		FROM sponsors ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sponsors []models.Sponsor
	for rows.Next() {
		var s models.Sponsor
		if err := rows.Scan(&s.ID, &s.UserID, &s.CompanyName, &s.Industry, &s.Budget); err != nil {
			return nil, err
		}
		sponsors = append(sponsors, s)
	}
	return sponsors, rows.Err()
}

func (r *SponsorRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM sponsors`).Scan(&n)
	return n, err
}
