package config

import (
	"context"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/adapters/persistence/repositories"
	"dealerhub/internal/pkg/password"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	zap.L().Info("🌱 Running database seeders...")

	if err := s.seedAdmin(); err != nil {
		zap.L().Warn("⚠️ Admin seeder skipped", zap.Error(err))
	}

	if s.cfg.IsDev() {
		if err := SeedMasterData(s.db); err != nil {
			zap.L().Warn("⚠️ Catalog seeder skipped", zap.Error(err))
		}
	}

	zap.L().Info("✅ Database seeding completed")
	return nil
}

// seedAdmin creates the bootstrap admin from ADMIN_* settings when the
// admins table is empty
func (s *Seeder) seedAdmin() error {
	ctx := context.Background()
	admins := repositories.NewAdminRepository(s.db)

	count, err := admins.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := s.cfg.Admin
	if seed.Username == "" || seed.Password == "" {
		zap.L().Warn("⚠️ No admin account exists and ADMIN_USERNAME / ADMIN_PASSWORD are not set")
		return nil
	}
	if !password.ValidatePassword(seed.Password) {
		zap.L().Warn("⚠️ ADMIN_PASSWORD is shorter than 8 characters, admin not created")
		return nil
	}

	hashed, err := password.Hash(seed.Password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Username: seed.Username,
		Email:    seed.Email,
		Password: hashed,
	}
	if err := admins.Create(ctx, admin); err != nil {
		return err
	}

	zap.L().Info("✅ Admin user created", zap.String("username", admin.Username))
	return nil
}
