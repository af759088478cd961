package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/promopulse/backend/internal/config"
	"github.com/promopulse/backend/internal/http/handlers"
	"github.com/promopulse/backend/internal/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	sponsorHandler *handlers.SponsorHandler,
	influencerHandler *handlers.InfluencerHandler,
	campaignHandler *handlers.CampaignHandler,
	adRequestHandler *handlers.AdRequestHandler,
	adminHandler *handlers.AdminHandler,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))
	app.Use(middleware.SessionMiddleware(cfg, log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public pages
	app.Get("/", authHandler.Home)
	app.Get("/login", authHandler.LoginPage)
	app.Get("/signup", authHandler.SignupPage)
	app.Get("/logout", authHandler.Logout)

	// Meta (public, no auth required)
	metaHandler := handlers.NewMetaHandler()
	app.Get("/meta/niches", metaHandler.GetNiches)

	// Credential endpoints, rate-limited
	authLimiter := middleware.RateLimitMiddleware(rdb, cfg.AuthRateLimit, cfg.AuthRateWindow)
	app.Post("/registerUser", authLimiter, authHandler.RegisterUser)
	app.Post("/userLogin", authLimiter, authHandler.UserLogin)
	app.Post("/admin/login", authLimiter, adminHandler.Login)

	// Admin
	app.Get("/admin", adminHandler.LoginPage)
	app.Get("/admin/dashboard", middleware.RequireAdmin(), adminHandler.Dashboard)

	// Role landing pages: any authenticated user
	app.Get("/sponsor/:id/:name", middleware.RequireUser(), sponsorHandler.LandingPage)
	app.Post("/sponsor/:id/:name", middleware.RequireUser(), sponsorHandler.LandingPage)
	app.Get("/influencer/:id/:name", middleware.RequireUser(), influencerHandler.LandingPage)

	// Sponsor-only
	app.Get("/sponsor/dashboard", middleware.RequireUser(), middleware.RequireSponsor(), sponsorHandler.Dashboard)
	app.Get("/create-campaign", middleware.RequireUser(), middleware.RequireSponsor(), campaignHandler.CreateForm)
	app.Post("/create_campaign", middleware.RequireUser(), middleware.RequireSponsor(), campaignHandler.Create)
	app.Get("/campaign-creation-success", middleware.RequireUser(), middleware.RequireSponsor(), campaignHandler.CreationSuccess)

	// Ad requests
	app.Post("/ad-requests", middleware.RequireUser(), middleware.RequireSponsor(), adRequestHandler.Create)
	app.Get("/ad-requests", middleware.RequireUser(), adRequestHandler.List)
	app.Post("/ad-requests/:id/accept", middleware.RequireUser(), middleware.RequireInfluencer(), adRequestHandler.Accept)
	app.Post("/ad-requests/:id/reject", middleware.RequireUser(), middleware.RequireInfluencer(), adRequestHandler.Reject)

	// Influencer-only
	app.Get("/influencer/dashboard", middleware.RequireUser(), middleware.RequireInfluencer(), influencerHandler.Dashboard)
}
