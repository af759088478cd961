package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/promopulse/backend/internal/http/dto"
	"github.com/promopulse/backend/internal/middleware"
	"github.com/promopulse/backend/internal/models"
	"github.com/promopulse/backend/internal/services"
	"go.uber.org/zap"
)

type AdRequestHandler struct {
	adRequestService *services.AdRequestService
	log              *zap.Logger
}

func NewAdRequestHandler(adRequestService *services.AdRequestService, log *zap.Logger) *AdRequestHandler {
	return &AdRequestHandler{adRequestService: adRequestService, log: log}
}

func (h *AdRequestHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAdRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.CampaignID == 0 || req.InfluencerID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "campaign_id and influencer_id are required"})
	}
	if req.PaymentAmount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "payment_amount must not be negative"})
	}

	adRequest := &models.AdRequest{
		CampaignID:    req.CampaignID,
		InfluencerID:  req.InfluencerID,
		Messages:      req.Messages,
		Requirements:  req.Requirements,
		PaymentAmount: req.PaymentAmount,
	}

	userID := middleware.GetUserID(c)
	if err := h.adRequestService.Create(c.Context(), userID, middleware.GetUserRole(c), adRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: adRequest})
}

func (h *AdRequestHandler) Accept(c *fiber.Ctx) error {
	return h.transition(c, h.adRequestService.Accept)
}

func (h *AdRequestHandler) Reject(c *fiber.Ctx) error {
	return h.transition(c, h.adRequestService.Reject)
}

func (h *AdRequestHandler) transition(c *fiber.Ctx, fn func(ctx context.Context, userID int64, role string, requestID int64) error) error {
	requestID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid ad request id"})
	}

	userID := middleware.GetUserID(c)
	if err := fn(c.Context(), userID, middleware.GetUserRole(c), requestID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *AdRequestHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	requests, err := h.adRequestService.ListForUser(c.Context(), userID, middleware.GetUserRole(c))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: requests})
}
