package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/promopulse/backend/internal/config"
	"github.com/promopulse/backend/internal/http/dto"
	"github.com/promopulse/backend/internal/services"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
	log         *zap.Logger
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg, log: log}
}

// Home renders the landing page.
func (h *AuthHandler) Home(c *fiber.Ctx) error {
	return c.JSON(dto.PageResponse{Page: "home"})
}

// LoginPage surfaces the optional flash message carried in the query string.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(dto.PageResponse{Page: "login", Message: c.Query("message")})
}

func (h *AuthHandler) SignupPage(c *fiber.Ctx) error {
	return c.JSON(dto.PageResponse{Page: "signup", Message: c.Query("message")})
}

func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.Name == "" || req.Role == "" || req.Pwd == "" || req.Email == "" {
		return redirectWithMessage(c, "/signup", "name, role, pwd and email are required")
	}

	_, err := h.authService.Register(c.Context(), req.Name, req.Role, req.Pwd, req.Email, req.Industry)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return redirectWithMessage(c, "/signup", "Account with this email already exists!")
		case errors.Is(err, services.ErrInvalidRole):
			return redirectWithMessage(c, "/signup", "Role must be sponsor or influencer")
		default:
			h.log.Error("registration failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
		}
	}

	return redirectWithMessage(c, "/login", "User registered successfully!")
}

func (h *AuthHandler) UserLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	user, token, err := h.authService.Login(c.Context(), req.Email, req.Pwd)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			return redirectWithMessage(c, "/login", "Account with this email doesn't exist!")
		case errors.Is(err, services.ErrIncorrectPassword):
			return redirectWithMessage(c, "/login", "Incorrect password entered!")
		default:
			h.log.Error("login failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
		}
	}

	h.setSessionCookie(c, token)

	// Role landing page: /sponsor/{id}/{name} or /influencer/{id}/{name}
	landing := fmt.Sprintf("/%s/%d/%s", user.Role, user.ID, url.PathEscape(user.Name))
	return c.Redirect(landing, fiber.StatusFound)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
	})
	return redirectWithMessage(c, "/login", "LOG OUT Successful!")
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.SessionTTL),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
	})
}

func redirectWithMessage(c *fiber.Ctx, path, message string) error {
	return c.Redirect(path+"?message="+url.QueryEscape(message), fiber.StatusFound)
}
