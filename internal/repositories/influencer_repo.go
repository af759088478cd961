package repositories

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/promopulse/backend/internal/models"
)

type InfluencerRepo struct {
	pool *pgxpool.Pool
}

func NewInfluencerRepo(pool *pgxpool.Pool) *InfluencerRepo {
	return &InfluencerRepo{pool: pool}
}

// SearchPattern turns a raw query into an ILIKE pattern, escaping the LIKE
// metacharacters so user input always matches literally.
func SearchPattern(query string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(query)
	return "%" + escaped + "%"
}

// Search returns influencers whose profile name or niche contains the query,
// case-insensitively. An empty query returns all influencers.
func (r *InfluencerRepo) Search(ctx context.Context, query string) ([]models.Influencer, error) {
	if strings.TrimSpace(query) == "" {
		return r.List(ctx)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, profile_name, niche, reach
		FROM influencers
		WHERE profile_name ILIKE $1 OR niche ILIKE $1
		ORDER BY id
	`, SearchPattern(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var influencers []models.Influencer
	for rows.Next() {
		var inf models.Influencer
		if err := rows.Scan(&inf.ID, &inf.UserID, &inf.ProfileName, &inf.Niche, &inf.Reach); err != nil {
			return nil, err
		}
		influencers = append(influencers, inf)
	}
	return influencers, rows.Err()
}

func (r *InfluencerRepo) List(ctx context.Context) ([]models.Influencer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, profile_name, niche, reach
		FROM influencers ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var influencers []models.Influencer
	for rows.Next() {
		var inf models.Influencer
		if err := rows.Scan(&inf.ID, &inf.UserID, &inf.ProfileName, &inf.Niche, &inf.Reach); err != nil {
			return nil, err
		}
		influencers = append(influencers, inf)
	}
	return influencers, rows.Err()
}

func (r *InfluencerRepo) GetByUserID(ctx context.Context, userID int64) (*models.Influencer, error) {
	var inf models.Influencer
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, profile_name, niche, reach
		FROM influencers WHERE user_id = $1
	`, userID).Scan(&inf.ID, &inf.UserID, &inf.ProfileName, &inf.Niche, &inf.Reach)
	if err != nil {
		return nil, err
	}
	return &inf, nil
}

func (r *InfluencerRepo) GetByID(ctx context.Context, id int64) (*models.Influencer, error) {
	var inf models.Influencer
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, profile_name, niche, reach
		FROM influencers WHERE id = $1
	`, id).Scan(&inf.ID, &inf.UserID, &inf.ProfileName, &inf.Niche, &inf.Reach)
	if err != nil {
		return nil, err
	}
	return &inf, nil
}

func (r *InfluencerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM influencers`).Scan(&n)
	return n, err
}
