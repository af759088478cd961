package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/promopulse/backend/internal/auth"
	"github.com/promopulse/backend/internal/config"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		SessionSecret:     "test-secret",
		SessionTTL:        time.Hour,
		SessionCookieName: "pp_session",
	}

	app := fiber.New()
	app.Use(SessionMiddleware(cfg, zap.NewNop()))

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/any", RequireUser(), ok)
	app.Get("/sponsor-only", RequireUser(), RequireSponsor(), ok)
	app.Get("/influencer-only", RequireUser(), RequireInfluencer(), ok)
	app.Get("/admin-only", RequireAdmin(), ok)

	return app, cfg
}

func request(t *testing.T, app *fiber.App, path, cookie string) (int, string) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "pp_session", Value: cookie})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, resp.Header.Get("Location")
}

func sponsorToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := auth.GenerateSession(cfg.SessionSecret, 7, "Acme", "sponsor", cfg.SessionTTL)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func influencerToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := auth.GenerateSession(cfg.SessionSecret, 8, "Tina", "influencer", cfg.SessionTTL)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func TestRequireUser_Unauthenticated(t *testing.T) {
	app, _ := newTestApp(t)

	status, location := request(t, app, "/any", "")
	if status != fiber.StatusFound {
		t.Fatalf("expected 302, got %d", status)
	}
	if location != "/login?message=Please+login+first" {
		t.Errorf("unexpected redirect target: %s", location)
	}
}

func TestRequireUser_Authenticated(t *testing.T) {
	app, cfg := newTestApp(t)

	status, _ := request(t, app, "/any", sponsorToken(t, cfg))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}

func TestRequireUser_GarbageToken(t *testing.T) {
	app, _ := newTestApp(t)

	status, location := request(t, app, "/any", "not-a-token")
	if status != fiber.StatusFound {
		t.Fatalf("expected 302, got %d", status)
	}
	if location == "" {
		t.Error("expected redirect to login")
	}
}

func TestRequireSponsor_WrongRole(t *testing.T) {
	app, cfg := newTestApp(t)

	status, location := request(t, app, "/sponsor-only", influencerToken(t, cfg))
	if status != fiber.StatusFound {
		t.Fatalf("expected 302 for influencer on sponsor route, got %d", status)
	}
	if location != "/login?message=Invalid+access.+Login+first" {
		t.Errorf("unexpected redirect target: %s", location)
	}
}

func TestRequireSponsor_RightRole(t *testing.T) {
	app, cfg := newTestApp(t)

	status, _ := request(t, app, "/sponsor-only", sponsorToken(t, cfg))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}

func TestRequireInfluencer(t *testing.T) {
	app, cfg := newTestApp(t)

	if status, _ := request(t, app, "/influencer-only", influencerToken(t, cfg)); status != fiber.StatusOK {
		t.Fatalf("expected 200 for influencer, got %d", status)
	}
	if status, _ := request(t, app, "/influencer-only", sponsorToken(t, cfg)); status != fiber.StatusFound {
		t.Fatalf("expected 302 for sponsor, got %d", status)
	}
}

func TestRequireAdmin(t *testing.T) {
	app, cfg := newTestApp(t)

	adminToken, err := auth.GenerateAdminSession(cfg.SessionSecret, 1, "root", cfg.SessionTTL)
	if err != nil {
		t.Fatalf("failed to generate admin token: %v", err)
	}

	if status, _ := request(t, app, "/admin-only", adminToken); status != fiber.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", status)
	}

	// A regular user session never passes the admin guard.
	status, location := request(t, app, "/admin-only", sponsorToken(t, cfg))
	if status != fiber.StatusFound {
		t.Fatalf("expected 302 for non-admin, got %d", status)
	}
	if location != "/admin?message=Must+be+logged+in+as+an+admin" {
		t.Errorf("unexpected redirect target: %s", location)
	}
}

func TestSessionMiddleware_BearerHeader(t *testing.T) {
	app, cfg := newTestApp(t)

	req := httptest.NewRequest("GET", "/any", nil)
	req.Header.Set("Authorization", "Bearer "+sponsorToken(t, cfg))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 via bearer header, got %d", resp.StatusCode)
	}
}
