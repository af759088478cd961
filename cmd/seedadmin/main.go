package main

import (
	"context"
	"flag"
	"os"

	"github.com/promopulse/backend/internal/auth"
	"github.com/promopulse/backend/internal/config"
	"github.com/promopulse/backend/internal/db"
	"github.com/promopulse/backend/internal/models"
	"github.com/promopulse/backend/internal/repositories"
	"github.com/promopulse/backend/internal/services"
	"go.uber.org/zap"
)

// Provisions (or rotates) the platform admin account. Admin credentials are
// always stored hashed; there is no plaintext path.
func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	username := flag.String("username", "admin", "admin display name")
	email := flag.String("email", "", "admin email (required)")
	flag.Parse()

	password := os.Getenv("ADMIN_PASSWORD")
	if *email == "" || password == "" {
		log.Fatal("both -email and the ADMIN_PASSWORD env var are required")
	}

	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal("failed to hash password", zap.Error(err))
	}

	admin := &models.Admin{
		Username:     *username,
		PasswordHash: hash,
		Email:        services.NormalizeEmail(*email),
	}
	if err := repositories.NewAdminRepo(pool).Upsert(ctx, admin); err != nil {
		log.Fatal("failed to upsert admin", zap.Error(err))
	}

	log.Info("admin provisioned", zap.Int64("admin_id", admin.ID), zap.String("email", admin.Email))
}
