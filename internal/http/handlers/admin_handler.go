package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/promopulse/backend/internal/config"
	"github.com/promopulse/backend/internal/http/dto"
	"github.com/promopulse/backend/internal/services"
	"go.uber.org/zap"
)

type AdminHandler struct {
	authService  *services.AuthService
	adminService *services.AdminService
	cfg          *config.Config
	log          *zap.Logger
}

func NewAdminHandler(
	authService *services.AuthService,
	adminService *services.AdminService,
	cfg *config.Config,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		adminService: adminService,
		cfg:          cfg,
		log:          log,
	}
}

// LoginPage is the separate admin login entry point.
func (h *AdminHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(dto.PageResponse{Page: "admin-login", Message: c.Query("message")})
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	_, token, err := h.authService.AdminLogin(c.Context(), req.Email, req.Password)
	if err != nil {
		return redirectWithMessage(c, "/admin", "Invalid username or password")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.SessionTTL),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
	})

	return c.Redirect("/admin/dashboard", fiber.StatusFound)
}

// Dashboard aggregates the platform-wide view.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	overview, err := h.adminService.Overview(c.Context())
	if err != nil {
		h.log.Error("admin overview failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: overview})
}
