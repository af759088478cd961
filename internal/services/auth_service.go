package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/promopulse/backend/internal/auth"
	"github.com/promopulse/backend/internal/config"
	"github.com/promopulse/backend/internal/models"
	"github.com/promopulse/backend/internal/repositories"
	"go.uber.org/zap"
)

var (
	ErrEmailTaken         = errors.New("account with this email already exists")
	ErrInvalidRole        = errors.New("role must be sponsor or influencer")
	ErrAccountNotFound    = errors.New("account with this email doesn't exist")
	ErrIncorrectPassword  = errors.New("incorrect password entered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthService struct {
	userRepo  *repositories.UserRepo
	adminRepo *repositories.AdminRepo
	auditRepo *repositories.AuditRepo
	cfg       *config.Config
	log       *zap.Logger
}

func NewAuthService(
	userRepo *repositories.UserRepo,
	adminRepo *repositories.AdminRepo,
	auditRepo *repositories.AuditRepo,
	cfg *config.Config,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		auditRepo: auditRepo,
		cfg:       cfg,
		log:       log,
	}
}

// NormalizeEmail lowercases and trims an email address. Applied on both
// registration and login so case never splits one account into two.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the user row and its sponsor/influencer profile. The
// profile's numeric field (budget or reach) starts at zero.
func (s *AuthService) Register(ctx context.Context, name, role, password, email, industry string) (*models.User, error) {
	if !models.IsValidRole(role) {
		return nil, ErrInvalidRole
	}

	email = NormalizeEmail(email)

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		PasswordHash: hash,
		Email:        email,
		Role:         role,
	}
	if err := s.userRepo.CreateWithProfile(ctx, user, industry); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &user.ID,
		ActorType:   "user",
		Action:      "user_registered",
		EntityType:  "user",
		EntityID:    &user.ID,
	})

	s.log.Info("user registered", zap.Int64("user_id", user.ID), zap.String("role", role))
	return user, nil
}

// Login verifies the credentials and returns the user plus a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrAccountNotFound
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrIncorrectPassword
	}

	token, err := auth.GenerateSession(s.cfg.SessionSecret, user.ID, user.Name, user.Role, s.cfg.SessionTTL)
	if err != nil {
		return nil, "", err
	}

	s.log.Info("user logged in", zap.Int64("user_id", user.ID), zap.String("role", user.Role))
	return user, token, nil
}

// AdminLogin verifies admin credentials against the stored hash. The
// comparison is always hashed; plaintext equality is deliberately not
// supported.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*models.Admin, string, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateAdminSession(s.cfg.SessionSecret, admin.ID, admin.Username, s.cfg.SessionTTL)
	if err != nil {
		return nil, "", err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &admin.ID,
		ActorType:   "admin",
		Action:      "admin_logged_in",
		EntityType:  "admin",
		EntityID:    &admin.ID,
	})

	return admin, token, nil
}
