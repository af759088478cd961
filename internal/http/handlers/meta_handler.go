package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/promopulse/backend/internal/http/dto"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type MetaNiche struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Serves both the influencer niche picker and the sponsor industry picker.
var predefinedNiches = []MetaNiche{
	{ID: "tech", Label: "Technology"},
	{ID: "fashion", Label: "Fashion & Beauty"},
	{ID: "fitness", Label: "Health & Fitness"},
	{ID: "food", Label: "Food & Cooking"},
	{ID: "travel", Label: "Travel"},
	{ID: "gaming", Label: "Gaming"},
	{ID: "finance", Label: "Finance"},
	{ID: "education", Label: "Education"},
	{ID: "entertainment", Label: "Entertainment"},
	{ID: "lifestyle", Label: "Lifestyle"},
	{ID: "music", Label: "Music"},
	{ID: "sports", Label: "Sports"},
	{ID: "retail", Label: "Retail"},
	{ID: "automotive", Label: "Automotive"},
	{ID: "other", Label: "Other"},
}

func (h *MetaHandler) GetNiches(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedNiches})
}
