package services

import (
	"context"
	"errors"
	"strings"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/adapters/persistence/repositories"
	"dealerhub/internal/config"
	"dealerhub/internal/core/domain"
	"dealerhub/internal/pkg/jwt"
	"dealerhub/internal/pkg/password"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthService handles admin authentication
type AuthService struct {
	adminRepo repositories.AdminRepository
	cfg       *config.Config
	logger    *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo repositories.AdminRepository, cfg *config.Config, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required" normalize:"-"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Admin       *models.Admin `json:"admin"`
	AccessToken string        `json:"access_token"`
}

// Login verifies admin credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, admin.Password) {
		s.logger.Info("admin login rejected", zap.String("username", admin.Username))
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(admin.ID, admin.Username, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}

	s.logger.Info("admin logged in", zap.Uint("admin_id", admin.ID))

	return &AuthResponse{
		Admin:       admin,
		AccessToken: token,
	}, nil
}

// Me returns the admin behind a validated token
func (s *AuthService) Me(ctx context.Context, adminID uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrAdminNotFound)
	}
	return admin, nil
}
