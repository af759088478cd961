package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/promopulse/backend/internal/config"
	"github.com/promopulse/backend/internal/db"
	apphttp "github.com/promopulse/backend/internal/http"
	"github.com/promopulse/backend/internal/http/handlers"
	"github.com/promopulse/backend/internal/repositories"
	"github.com/promopulse/backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	sponsorRepo := repositories.NewSponsorRepo(pool)
	influencerRepo := repositories.NewInfluencerRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	adRequestRepo := repositories.NewAdRequestRepo(pool)
	adminRepo := repositories.NewAdminRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Services
	authService := services.NewAuthService(userRepo, adminRepo, auditRepo, cfg, log)
	campaignService := services.NewCampaignService(campaignRepo, sponsorRepo, auditRepo, log)
	adRequestService := services.NewAdRequestService(adRequestRepo, campaignRepo, sponsorRepo, influencerRepo, auditRepo, log)
	directoryService := services.NewDirectoryService(influencerRepo, log)
	adminService := services.NewAdminService(userRepo, sponsorRepo, influencerRepo, campaignRepo, adRequestRepo, auditRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg, log)
	sponsorHandler := handlers.NewSponsorHandler(directoryService, campaignService, log)
	influencerHandler := handlers.NewInfluencerHandler(directoryService, adRequestService, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	adRequestHandler := handlers.NewAdRequestHandler(adRequestService, log)
	adminHandler := handlers.NewAdminHandler(authService, adminService, cfg, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, sponsorHandler, influencerHandler, campaignHandler, adRequestHandler, adminHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
