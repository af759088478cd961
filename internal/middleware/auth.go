package middleware

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/promopulse/backend/internal/auth"
	"github.com/promopulse/backend/internal/config"
	"github.com/promopulse/backend/internal/models"
	"go.uber.org/zap"
)

const (
	CtxUserID   = "user_id"
	CtxUserName = "user_name"
	CtxUserRole = "user_role"
	CtxIsAdmin  = "is_admin"
)

// SessionMiddleware reads the session token from the cookie or the
// Authorization header and stores the authenticated identity in
// request-scoped locals. It never rejects: the guards below decide
// per-route what is required.
func SessionMiddleware(cfg *config.Config, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(cfg.SessionCookieName)
		if tokenStr == "" {
			authHeader := c.Get("Authorization")
			if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
				tokenStr = after
			}
		}
		if tokenStr == "" {
			return c.Next()
		}

		claims, err := auth.ParseSession(cfg.SessionSecret, tokenStr)
		if err != nil {
			log.Debug("session parse error", zap.Error(err))
			return c.Next()
		}

		c.Locals(CtxUserID, claims.UserID)
		c.Locals(CtxUserName, claims.Name)
		c.Locals(CtxUserRole, claims.Role)
		c.Locals(CtxIsAdmin, claims.Admin)

		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(CtxUserID).(int64)
	return id
}

func GetUserName(c *fiber.Ctx) string {
	name, _ := c.Locals(CtxUserName).(string)
	return name
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(CtxUserRole).(string)
	return role
}

func IsAdmin(c *fiber.Ctx) bool {
	admin, _ := c.Locals(CtxIsAdmin).(bool)
	return admin
}

func redirectWithMessage(c *fiber.Ctx, path, message string) error {
	return c.Redirect(path+"?message="+url.QueryEscape(message), fiber.StatusFound)
}

// RequireUser admits any authenticated non-admin session.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == 0 || GetUserName(c) == "" || GetUserRole(c) == "" {
			return redirectWithMessage(c, "/login", "Please login first")
		}
		return c.Next()
	}
}

// RequireSponsor admits only sponsor sessions.
func RequireSponsor() fiber.Handler {
	return requireRole(models.RoleSponsor)
}

// RequireInfluencer admits only influencer sessions.
func RequireInfluencer() fiber.Handler {
	return requireRole(models.RoleInfluencer)
}

func requireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserRole(c) != role {
			return redirectWithMessage(c, "/login", "Invalid access. Login first")
		}
		return c.Next()
	}
}

// RequireAdmin admits only sessions carrying the admin flag.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(c) {
			return redirectWithMessage(c, "/admin", "Must be logged in as an admin")
		}
		return c.Next()
	}
}
