package routes

import (
	"dealerhub/internal/adapters/cache"
	"dealerhub/internal/adapters/external/mail"
	"dealerhub/internal/adapters/external/pincode"
	"dealerhub/internal/adapters/external/sms"
	"dealerhub/internal/adapters/persistence/repositories"
	"dealerhub/internal/config"
	"dealerhub/internal/core/services"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container holds the infrastructure handles and the domain services built on them
type Container struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client

	Auth         *services.AuthService
	Dealer       *services.DealerService
	Registration *services.RegistrationService
	Technician   *services.TechnicianService
	BackOffice   *services.BackOfficeService
	Catalog      *services.CatalogService
	Discount     *services.DiscountService
	RMA          *services.RMAService
	Course       *services.CourseService
	Notification *services.NotificationService
	Pincode      *services.PincodeService
	Dashboard    *services.DashboardService
}

// NewContainer wires repositories, outbound clients and services. rdb may be nil.
func NewContainer(db *gorm.DB, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Container {
	// Initialize repositories
	adminRepo := repositories.NewAdminRepository(db)
	dealerRepo := repositories.NewDealerRepository(db)
	technicianRepo := repositories.NewTechnicianRepository(db)
	backOfficeRepo := repositories.NewBackOfficeRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	subcategoryRepo := repositories.NewSubcategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	discountRepo := repositories.NewDiscountRepository(db)
	rmaRepo := repositories.NewRMARepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Outbound clients
	mailer := mail.NewSendGridSender(cfg.Mail.SendGridAPIKey, cfg.Mail.FromEmail, cfg.Mail.FromName)
	smsGateway := sms.NewGatewayClient(cfg.SMS.APIURL, cfg.SMS.APIKey, cfg.SMS.SenderID)
	postal := pincode.NewClient(cfg.Pincode.APIURL)
	pincodeCache := cache.NewRedisCache(rdb, cfg.Pincode.CacheTTL)

	// Initialize services
	notificationService := services.NewNotificationService(notificationRepo, mailer, smsGateway, logger)
	pincodeService := services.NewPincodeService(postal, pincodeCache, cfg.Pincode.CacheTTL, logger)
	dealerService := services.NewDealerService(dealerRepo, notificationService, logger)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  rdb,

		Auth:         services.NewAuthService(adminRepo, cfg, logger),
		Dealer:       dealerService,
		Registration: services.NewRegistrationService(dealerService, pincodeService, logger),
		Technician:   services.NewTechnicianService(technicianRepo, dealerRepo, logger),
		BackOffice:   services.NewBackOfficeService(backOfficeRepo, dealerRepo, logger),
		Catalog:      services.NewCatalogService(categoryRepo, subcategoryRepo, productRepo, logger),
		Discount:     services.NewDiscountService(discountRepo, dealerRepo, productRepo, logger),
		RMA:          services.NewRMAService(rmaRepo, dealerRepo, technicianRepo, backOfficeRepo, logger),
		Course:       services.NewCourseService(courseRepo, logger),
		Notification: notificationService,
		Pincode:      pincodeService,
		Dashboard:    services.NewDashboardService(db),
	}
}
