package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/promopulse/backend/internal/models"
)

type AdRequestRepo struct {
	pool *pgxpool.Pool
}

func NewAdRequestRepo(pool *pgxpool.Pool) *AdRequestRepo {
	return &AdRequestRepo{pool: pool}
}

func (r *AdRequestRepo) Create(ctx context.Context, a *models.AdRequest) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO ad_requests (campaign_id, influencer_id, messages, requirements, payment_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, a.CampaignID, a.InfluencerID, a.Messages, a.Requirements,
		a.PaymentAmount, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AdRequestRepo) GetByID(ctx context.Context, id int64) (*models.AdRequest, error) {
	var a models.AdRequest
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, influencer_id, messages, requirements,
		       payment_amount, status, created_at, updated_at
		FROM ad_requests WHERE id = $1
	`, id).Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Messages,
		&a.Requirements, &a.PaymentAmount, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdRequestRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE ad_requests SET status = $1, updated_at = now() WHERE id = $2
	`, status, id)
	return err
}

// ListByInfluencer returns the requests targeting an influencer, with the
// owning campaign joined in to avoid N+1 queries.
func (r *AdRequestRepo) ListByInfluencer(ctx context.Context, influencerID int64) ([]models.AdRequestWithCampaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.campaign_id, a.influencer_id, a.messages, a.requirements,
		       a.payment_amount, a.status, a.created_at, a.updated_at,
		       c.name, c.sponsor_id
		FROM ad_requests a
		JOIN campaigns c ON c.id = a.campaign_id
		WHERE a.influencer_id = $1
		ORDER BY a.created_at DESC
	`, influencerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.AdRequestWithCampaign
	for rows.Next() {
		var a models.AdRequestWithCampaign
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Messages,
			&a.Requirements, &a.PaymentAmount, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.CampaignName, &a.SponsorID); err != nil {
			return nil, err
		}
		requests = append(requests, a)
	}
	return requests, rows.Err()
}

// ListBySponsor returns the requests a sponsor has sent across all of their
// campaigns, with campaign and influencer names joined in.
func (r *AdRequestRepo) ListBySponsor(ctx context.Context, sponsorID int64) ([]models.AdRequestWithCampaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.campaign_id, a.influencer_id, a.messages, a.requirements,
		       a.payment_amount, a.status, a.created_at, a.updated_at,
		       c.name, c.sponsor_id, i.profile_name
		FROM ad_requests a
		JOIN campaigns c ON c.id = a.campaign_id
		JOIN influencers i ON i.id = a.influencer_id
		WHERE c.sponsor_id = $1
		ORDER BY a.created_at DESC
	`, sponsorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.AdRequestWithCampaign
	for rows.Next() {
		var a models.AdRequestWithCampaign
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Messages,
			&a.Requirements, &a.PaymentAmount, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.CampaignName, &a.SponsorID, &a.InfluencerName); err != nil {
			return nil, err
		}
		requests = append(requests, a)
	}
	return requests, rows.Err()
}

func (r *AdRequestRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, count(*) FROM ad_requests GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
