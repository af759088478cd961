package services

import (
	"context"
	"fmt"

	"github.com/promopulse/backend/internal/models"
	"github.com/promopulse/backend/internal/rbac"
	"github.com/promopulse/backend/internal/repositories"
	"go.uber.org/zap"
)

type AdRequestService struct {
	adRequestRepo  *repositories.AdRequestRepo
	campaignRepo   *repositories.CampaignRepo
	sponsorRepo    *repositories.SponsorRepo
	influencerRepo *repositories.InfluencerRepo
	auditRepo      *repositories.AuditRepo
	log            *zap.Logger
}

func NewAdRequestService(
	adRequestRepo *repositories.AdRequestRepo,
	campaignRepo *repositories.CampaignRepo,
	sponsorRepo *repositories.SponsorRepo,
	influencerRepo *repositories.InfluencerRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *AdRequestService {
	return &AdRequestService{
		adRequestRepo:  adRequestRepo,
		campaignRepo:   campaignRepo,
		sponsorRepo:    sponsorRepo,
		influencerRepo: influencerRepo,
		auditRepo:      auditRepo,
		log:            log,
	}
}

// Create lets a sponsor target an influencer for one of their own campaigns.
// Status is always Pending at creation.
func (s *AdRequestService) Create(ctx context.Context, userID int64, role string, a *models.AdRequest) error {
	if !rbac.HasPermission(role, rbac.PermCreateAdRequest) {
		return fmt.Errorf("role %q cannot create ad requests", role)
	}

	sponsor, err := s.sponsorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("sponsor profile not found")
	}

	campaign, err := s.campaignRepo.GetByID(ctx, a.CampaignID)
	if err != nil {
		return fmt.Errorf("campaign not found")
	}
	if campaign.SponsorID != sponsor.ID {
		return fmt.Errorf("campaign not found")
	}

	if _, err := s.influencerRepo.GetByID(ctx, a.InfluencerID); err != nil {
		return fmt.Errorf("influencer not found")
	}

	a.Status = models.AdRequestStatusPending

	if err := s.adRequestRepo.Create(ctx, a); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "ad_request_created",
		EntityType:  "ad_request",
		EntityID:    &a.ID,
	})

	s.log.Info("ad request created",
		zap.Int64("ad_request_id", a.ID),
		zap.Int64("campaign_id", a.CampaignID),
		zap.Int64("influencer_id", a.InfluencerID),
	)
	return nil
}

// Accept moves a pending request to Accepted. Only the targeted influencer may act.
func (s *AdRequestService) Accept(ctx context.Context, userID int64, role string, requestID int64) error {
	return s.transition(ctx, userID, role, requestID, models.AdRequestStatusAccepted, rbac.PermAcceptAdRequest)
}

// Reject moves a pending request to Rejected. Only the targeted influencer may act.
func (s *AdRequestService) Reject(ctx context.Context, userID int64, role string, requestID int64) error {
	return s.transition(ctx, userID, role, requestID, models.AdRequestStatusRejected, rbac.PermRejectAdRequest)
}

func (s *AdRequestService) transition(ctx context.Context, userID int64, role string, requestID int64, newStatus, permission string) error {
	if !rbac.HasPermission(role, permission) {
		return fmt.Errorf("role %q cannot perform this action", role)
	}

	influencer, err := s.influencerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("influencer profile not found")
	}

	req, err := s.adRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("ad request not found")
	}
	if req.InfluencerID != influencer.ID {
		return fmt.Errorf("ad request not found")
	}

	if !models.IsValidTransition(req.Status, newStatus) {
		return fmt.Errorf("invalid status transition: %s -> %s", req.Status, newStatus)
	}

	if err := s.adRequestRepo.UpdateStatus(ctx, requestID, newStatus); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "ad_request_" + newStatus,
		EntityType:  "ad_request",
		EntityID:    &requestID,
	})

	s.log.Info("ad request transitioned",
		zap.Int64("ad_request_id", requestID),
		zap.String("from", req.Status),
		zap.String("to", newStatus),
	)
	return nil
}

// ListForUser returns requests for the user's side of the marketplace:
// sponsors see requests across their campaigns, influencers see requests
// targeting them.
func (s *AdRequestService) ListForUser(ctx context.Context, userID int64, role string) ([]models.AdRequestWithCampaign, error) {
	switch role {
	case models.RoleSponsor:
		sponsor, err := s.sponsorRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("sponsor profile not found")
		}
		return s.adRequestRepo.ListBySponsor(ctx, sponsor.ID)
	case models.RoleInfluencer:
		influencer, err := s.influencerRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("influencer profile not found")
		}
		return s.adRequestRepo.ListByInfluencer(ctx, influencer.ID)
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}
}
