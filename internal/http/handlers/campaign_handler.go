package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/promopulse/backend/internal/http/dto"
	"github.com/promopulse/backend/internal/middleware"
	"github.com/promopulse/backend/internal/models"
	"github.com/promopulse/backend/internal/services"
	"go.uber.org/zap"
)

const campaignDateFormat = "2006-01-02"

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

// CreateForm describes the campaign creation form.
func (h *CampaignHandler) CreateForm(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: fiber.Map{
		"fields":      []string{"campaignName", "description", "startDate", "endDate", "budget", "visibility", "goals"},
		"date_format": campaignDateFormat,
		"visibility":  []string{models.VisibilityPublic, models.VisibilityPrivate},
	}})
}

func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.CampaignName == "" || req.Visibility == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "campaignName and visibility are required"})
	}

	startDate, err := time.Parse(campaignDateFormat, req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "startDate must be formatted as " + campaignDateFormat})
	}
	endDate, err := time.Parse(campaignDateFormat, req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "endDate must be formatted as " + campaignDateFormat})
	}

	campaign := &models.Campaign{
		Name:       req.CampaignName,
		StartDate:  startDate,
		EndDate:    endDate,
		Budget:     req.Budget,
		Visibility: req.Visibility,
	}
	if req.Description != "" {
		campaign.Description = &req.Description
	}
	if req.Goals != "" {
		campaign.Goals = &req.Goals
	}

	userID := middleware.GetUserID(c)
	if err := h.campaignService.Create(c.Context(), userID, middleware.GetUserRole(c), campaign); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Redirect("/campaign-creation-success", fiber.StatusFound)
}

func (h *CampaignHandler) CreationSuccess(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: fiber.Map{"message": "Campaign created successfully!"}})
}
