package services

import (
	"context"

	"github.com/promopulse/backend/internal/models"
	"github.com/promopulse/backend/internal/repositories"
	"go.uber.org/zap"
)

type AdminService struct {
	userRepo       *repositories.UserRepo
	sponsorRepo    *repositories.SponsorRepo
	influencerRepo *repositories.InfluencerRepo
	campaignRepo   *repositories.CampaignRepo
	adRequestRepo  *repositories.AdRequestRepo
	auditRepo      *repositories.AuditRepo
	log            *zap.Logger
}

func NewAdminService(
	userRepo *repositories.UserRepo,
	sponsorRepo *repositories.SponsorRepo,
	influencerRepo *repositories.InfluencerRepo,
	campaignRepo *repositories.CampaignRepo,
	adRequestRepo *repositories.AdRequestRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *AdminService {
	return &AdminService{
		userRepo:       userRepo,
		sponsorRepo:    sponsorRepo,
		influencerRepo: influencerRepo,
		campaignRepo:   campaignRepo,
		adRequestRepo:  adRequestRepo,
		auditRepo:      auditRepo,
		log:            log,
	}
}

type PlatformOverview struct {
	Users           int64             `json:"users"`
	Sponsors        int64             `json:"sponsors"`
	Influencers     int64             `json:"influencers"`
	Campaigns       int64             `json:"campaigns"`
	AdRequests      map[string]int64  `json:"ad_requests_by_status"`
	RecentActivity  []models.AuditLog `json:"recent_activity"`
	RecentCampaigns []models.Campaign `json:"recent_campaigns"`
}

// Overview aggregates the platform-wide numbers shown on the admin dashboard.
func (s *AdminService) Overview(ctx context.Context) (*PlatformOverview, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	sponsors, err := s.sponsorRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	influencers, err := s.influencerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	campaigns, err := s.campaignRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.adRequestRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	activity, err := s.auditRepo.Recent(ctx, 20)
	if err != nil {
		s.log.Warn("failed to load recent activity", zap.Error(err))
		activity = nil
	}
	recent, err := s.campaignRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return &PlatformOverview{
		Users:           users,
		Sponsors:        sponsors,
		Influencers:     influencers,
		Campaigns:       campaigns,
		AdRequests:      byStatus,
		RecentActivity:  activity,
		RecentCampaigns: recent,
	}, nil
}
