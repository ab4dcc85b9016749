package handlers

import (
	"context"
	"fmt"
	"time"

	"dealerhub/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/hellofresh/health-go/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const appVersion = "1.0.0"

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg    *config.Config
	health *health.Health
}

// NewHealthHandler registers the database check and, when a client is given,
// the redis check
func NewHealthHandler(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*HealthHandler, error) {
	checks := []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
		},
	}
	if rdb != nil {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check: func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "dealerhub",
			Version: appVersion,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return &HealthHandler{cfg: cfg, health: h}, nil
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "🚀 Dealer Hub API v1.0 is running",
		"mode":    h.cfg.AppMode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck reports the status of the database and cache
// @Summary Health check
// @Description Check API, database and redis health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck() fiber.Handler {
	return adaptor.HTTPHandler(h.health.Handler())
}

// APIInfo handles API v1 info
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Dealer Hub API v1.0",
		"version": appVersion,
	})
}
