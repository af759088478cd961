package handlers

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/promopulse/backend/internal/http/dto"
	"github.com/promopulse/backend/internal/middleware"
	"github.com/promopulse/backend/internal/services"
	"go.uber.org/zap"
)

type InfluencerHandler struct {
	directoryService *services.DirectoryService
	adRequestService *services.AdRequestService
	log              *zap.Logger
}

func NewInfluencerHandler(
	directoryService *services.DirectoryService,
	adRequestService *services.AdRequestService,
	log *zap.Logger,
) *InfluencerHandler {
	return &InfluencerHandler{
		directoryService: directoryService,
		adRequestService: adRequestService,
		log:              log,
	}
}

// LandingPage is the influencer landing view reached right after login.
func (h *InfluencerHandler) LandingPage(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid influencer id"})
	}
	name, err := decodeNameParam(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid name"})
	}

	return c.JSON(dto.DashboardResponse{
		ID:   id,
		Name: name,
		Role: "influencer",
	})
}

// Dashboard lists the ad requests targeting the authenticated influencer.
func (h *InfluencerHandler) Dashboard(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	requests, err := h.adRequestService.ListForUser(c.Context(), userID, middleware.GetUserRole(c))
	if err != nil {
		h.log.Error("influencer dashboard failed", zap.Error(err), zap.Int64("user_id", userID))
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.DashboardResponse{
		ID:   userID,
		Name: middleware.GetUserName(c),
		Role: "influencer",
		Data: requests,
	})
}

// decodeNameParam reverses the path escaping applied when building the
// role landing URL at login.
func decodeNameParam(raw string) (string, error) {
	return url.PathUnescape(raw)
}
