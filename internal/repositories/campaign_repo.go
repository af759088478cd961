package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/promopulse/backend/internal/models"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (sponsor_id, name, description, start_date, end_date, budget, visibility, goals)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, c.SponsorID, c.Name, c.Description, c.StartDate, c.EndDate,
		c.Budget, c.Visibility, c.Goals,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id int64) (*models.Campaign, error) {
	var c models.Campaign
	err := r.pool.QueryRow(ctx, `
		SELECT id, sponsor_id, name, description, start_date, end_date,
		       budget, visibility, goals, created_at
		FROM campaigns WHERE id = $1
	`, id).Scan(&c.ID, &c.SponsorID, &c.Name, &c.Description, &c.StartDate,
		&c.EndDate, &c.Budget, &c.Visibility, &c.Goals, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) ListBySponsor(ctx context.Context, sponsorID int64) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, sponsor_id, name, description, start_date, end_date,
		       budget, visibility, goals, created_at
		FROM campaigns WHERE sponsor_id = $1
		ORDER BY created_at DESC
	`, sponsorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.SponsorID, &c.Name, &c.Description, &c.StartDate,
			&c.EndDate, &c.Budget, &c.Visibility, &c.Goals, &c.CreatedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepo) List(ctx context.Context) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, sponsor_id, name, description, start_date, end_date,
		       budget, visibility, goals, created_at
		FROM campaigns ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.SponsorID, &c.Name, &c.Description, &c.StartDate,
			&c.EndDate, &c.Budget, &c.Visibility, &c.Goals, &c.CreatedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&n)
	return n, err
}
