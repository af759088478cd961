package services

import (
	"context"
	"fmt"

	"github.com/promopulse/backend/internal/models"
	"github.com/promopulse/backend/internal/rbac"
	"github.com/promopulse/backend/internal/repositories"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaignRepo *repositories.CampaignRepo
	sponsorRepo  *repositories.SponsorRepo
	auditRepo    *repositories.AuditRepo
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	sponsorRepo *repositories.SponsorRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		sponsorRepo:  sponsorRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

// Create associates the campaign with the sponsor profile of the
// authenticated user. The session carries the user id, not the sponsor id,
// so the profile row is resolved here.
func (s *CampaignService) Create(ctx context.Context, userID int64, role string, c *models.Campaign) error {
	if !rbac.HasPermission(role, rbac.PermCreateCampaign) {
		return fmt.Errorf("role %q cannot create campaigns", role)
	}

	sponsor, err := s.sponsorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("sponsor profile not found")
	}
	c.SponsorID = sponsor.ID

	if c.Visibility != models.VisibilityPublic && c.Visibility != models.VisibilityPrivate {
		return fmt.Errorf("visibility must be public or private")
	}
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("end date must not precede start date")
	}

	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &c.ID,
	})

	s.log.Info("campaign created", zap.Int64("campaign_id", c.ID), zap.Int64("sponsor_id", c.SponsorID))
	return nil
}

// ListForSponsorUser returns the campaigns owned by the user's sponsor profile.
func (s *CampaignService) ListForSponsorUser(ctx context.Context, userID int64) ([]models.Campaign, error) {
	sponsor, err := s.sponsorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sponsor profile not found")
	}
	return s.campaignRepo.ListBySponsor(ctx, sponsor.ID)
}
