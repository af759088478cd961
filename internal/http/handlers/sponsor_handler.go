package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/promopulse/backend/internal/http/dto"
	"github.com/promopulse/backend/internal/middleware"
	"github.com/promopulse/backend/internal/services"
	"go.uber.org/zap"
)

type SponsorHandler struct {
	directoryService *services.DirectoryService
	campaignService  *services.CampaignService
	log              *zap.Logger
}

func NewSponsorHandler(
	directoryService *services.DirectoryService,
	campaignService *services.CampaignService,
	log *zap.Logger,
) *SponsorHandler {
	return &SponsorHandler{
		directoryService: directoryService,
		campaignService:  campaignService,
		log:              log,
	}
}

// LandingPage is the sponsor landing view: the influencer browser, optionally
// filtered by the `search` query parameter.
func (h *SponsorHandler) LandingPage(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid sponsor id"})
	}
	name, err := decodeNameParam(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid name"})
	}

	influencers, err := h.directoryService.SearchInfluencers(c.Context(), c.Query("search"))
	if err != nil {
		h.log.Error("influencer search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.DashboardResponse{
		ID:   id,
		Name: name,
		Role: "sponsor",
		Data: influencers,
	})
}

// Dashboard lists the authenticated sponsor's campaigns.
func (h *SponsorHandler) Dashboard(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	campaigns, err := h.campaignService.ListForSponsorUser(c.Context(), userID)
	if err != nil {
		h.log.Error("sponsor dashboard failed", zap.Error(err), zap.Int64("user_id", userID))
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.DashboardResponse{
		ID:   userID,
		Name: middleware.GetUserName(c),
		Role: "sponsor",
		Data: campaigns,
	})
}
