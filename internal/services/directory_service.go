package services

import (
	"context"

	"github.com/promopulse/backend/internal/models"
	"github.com/promopulse/backend/internal/repositories"
	"go.uber.org/zap"
)

// DirectoryService backs the sponsor-facing influencer browser.
type DirectoryService struct {
	influencerRepo *repositories.InfluencerRepo
	log            *zap.Logger
}

func NewDirectoryService(influencerRepo *repositories.InfluencerRepo, log *zap.Logger) *DirectoryService {
	return &DirectoryService{influencerRepo: influencerRepo, log: log}
}

// SearchInfluencers matches the query against profile name and niche,
// case-insensitively. An empty query returns the full set.
func (s *DirectoryService) SearchInfluencers(ctx context.Context, query string) ([]models.Influencer, error) {
	return s.influencerRepo.Search(ctx, query)
}

func (s *DirectoryService) GetInfluencerByUser(ctx context.Context, userID int64) (*models.Influencer, error) {
	return s.influencerRepo.GetByUserID(ctx, userID)
}
