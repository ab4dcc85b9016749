package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"dealerhub/internal/adapters/http/middleware"
	"dealerhub/internal/adapters/http/routes"
	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/config"
	"dealerhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	_ "dealerhub/docs" // Swagger docs
)

// @title Dealer Hub API
// @version 1.0
// @description Back-office API for the dealer network: dealers, sub-accounts, catalog, discounts, RMA and training courses.

// @contact.name API Support
// @contact.email support@dealerhub.in

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Fatal("❌ Failed to connect to database", zap.Error(err))
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		logger.Fatal("❌ Failed to auto migrate", zap.Error(err))
	}
	logger.Info("✅ Database migration completed")

	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		logger.Warn("⚠️ Seeding failed", zap.Error(err))
	}

	rdb := config.ConnectRedis(cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	container := routes.NewContainer(db, rdb, cfg, logger)

	// Expired discount sweep
	cronService := services.NewCronService(container.Discount, cfg.DiscountCron.Spec, cfg.DiscountCron.RetentionDays, logger)
	if err := cronService.Start(); err != nil {
		logger.Fatal("❌ Failed to start cron", zap.Error(err))
	}
	defer cronService.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "Dealer Hub API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	middleware.Setup(app, cfg)

	if err := routes.Setup(app, container); err != nil {
		logger.Fatal("❌ Failed to setup routes", zap.Error(err))
	}

	go gracefulShutdown(app, logger)

	logger.Info("🚀 Server starting", zap.String("port", cfg.Port), zap.String("mode", cfg.AppMode))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("❌ Server stopped with error", zap.Error(err))
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logger.Error("❌ Error during shutdown", zap.Error(err))
	}
	logger.Info("✅ Server stopped gracefully")
}
