package routes

import (
	"time"

	"dealerhub/internal/adapters/http/handlers"
	"dealerhub/internal/adapters/http/middleware"
	"dealerhub/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const catalogMaxAge = 5 * time.Minute

// Setup configures all routes for the application
func Setup(app *fiber.App, c *Container) error {
	cfg := c.Config

	// Initialize handlers
	healthHandler, err := handlers.NewHealthHandler(cfg, c.DB, c.Redis)
	if err != nil {
		return err
	}
	authHandler := handlers.NewAuthHandler(c.Auth, cfg)
	dealerHandler := handlers.NewDealerHandler(c.Dealer, c.Registration)
	technicianHandler := handlers.NewTechnicianHandler(c.Technician)
	backOfficeHandler := handlers.NewBackOfficeHandler(c.BackOffice)
	catalogHandler := handlers.NewCatalogHandler(c.Catalog)
	discountHandler := handlers.NewDiscountHandler(c.Discount)
	rmaHandler := handlers.NewRMAHandler(c.RMA)
	courseHandler := handlers.NewCourseHandler(c.Course)
	pincodeHandler := handlers.NewPincodeHandler(c.Pincode)
	dashboardHandler := handlers.NewDashboardHandler(c.Dashboard, c.Notification)

	// ============================================================
	// Infra
	// ============================================================
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck())
	app.Get("/metrics", middleware.MetricsHandler())
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")
	api.Get("/", healthHandler.APIInfo)

	setupAuthRoutes(api, authHandler, cfg)
	setupPublicRoutes(api, publicHandlers{
		dealer:     dealerHandler,
		technician: technicianHandler,
		backOffice: backOfficeHandler,
		catalog:    catalogHandler,
		discount:   discountHandler,
		rma:        rmaHandler,
		course:     courseHandler,
		pincode:    pincodeHandler,
	})

	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.NoCacheHeaders())
	setupDealerAdminRoutes(admin, dealerHandler, technicianHandler, backOfficeHandler)
	setupSubAccountAdminRoutes(admin, technicianHandler, backOfficeHandler)
	setupCatalogAdminRoutes(admin, catalogHandler)
	setupDiscountAdminRoutes(admin, discountHandler)
	setupRMAAdminRoutes(admin, rmaHandler)
	setupCourseAdminRoutes(admin, courseHandler)
	admin.Get("/dashboard", dashboardHandler.GetAdminDashboard)
	admin.Get("/notifications", dashboardHandler.ListNotifications)

	// 404 for anything else
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	return nil
}

// ============================================================
// Auth
// ============================================================

func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	auth := router.Group("/auth")

	auth.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// ============================================================
// Public (mobile app)
// ============================================================

type publicHandlers struct {
	dealer     *handlers.DealerHandler
	technician *handlers.TechnicianHandler
	backOffice *handlers.BackOfficeHandler
	catalog    *handlers.CatalogHandler
	discount   *handlers.DiscountHandler
	rma        *handlers.RMAHandler
	course     *handlers.CourseHandler
	pincode    *handlers.PincodeHandler
}

func setupPublicRoutes(router fiber.Router, h publicHandlers) {
	dealers := router.Group("/dealers")
	dealers.Post("/register", middleware.StrictRateLimiter(), h.dealer.Register)
	dealers.Post("/:id/technicians", middleware.StrictRateLimiter(), h.technician.Create)
	dealers.Post("/:id/backoffice", middleware.StrictRateLimiter(), h.backOffice.Create)
	dealers.Get("/:id/discounts", h.discount.ListForDealer)

	router.Post("/rma", h.rma.File)
	router.Get("/rma/:id", h.rma.Get)

	cached := middleware.CatalogCache(catalogMaxAge)
	router.Get("/categories", cached, h.catalog.ListCategories)
	router.Get("/categories/:id", cached, h.catalog.GetCategory)
	router.Get("/subcategories", cached, h.catalog.ListSubcategories)
	router.Get("/subcategories/:id", cached, h.catalog.GetSubcategory)
	router.Get("/products", cached, h.catalog.ListProducts)
	router.Get("/products/category/:name", cached, h.catalog.GetProductsByCategory)
	router.Get("/products/subcategory/:name", cached, h.catalog.GetProductsBySubcategory)
	router.Get("/products/:id", cached, h.catalog.GetProduct)

	router.Get("/courses/published", h.course.ListPublished)
	router.Get("/courses/:id", h.course.GetPublished)

	router.Get("/pincode/:code", h.pincode.Lookup)
}

// ============================================================
// Admin
// ============================================================

func setupDealerAdminRoutes(router fiber.Router, handler *handlers.DealerHandler, technicians *handlers.TechnicianHandler, backOffice *handlers.BackOfficeHandler) {
	dealers := router.Group("/dealers")

	dealers.Get("/", handler.List)
	dealers.Get("/approved", handler.ListApproved)
	dealers.Get("/not-approved", handler.ListNotApproved)
	dealers.Get("/distributors", handler.ListDistributors)
	dealers.Get("/:id", handler.Get)
	dealers.Patch("/:id", handler.Update)
	dealers.Put("/:id/approve", handler.Approve)
	dealers.Put("/:id/disapprove", handler.Disapprove)
	dealers.Put("/:id/distributor", handler.PromoteToDistributor)
	dealers.Put("/:id/dealer", handler.DemoteToDealer)
	dealers.Delete("/:id", handler.Delete)

	// Sub-accounts scoped to their dealer
	dealers.Get("/:id/technicians", technicians.List)
	dealers.Put("/:id/technicians/:account_id/approve", technicians.Approve)
	dealers.Put("/:id/technicians/:account_id/disapprove", technicians.Disapprove)
	dealers.Put("/:id/technicians/:account_id/pass", technicians.Pass)
	dealers.Put("/:id/technicians/:account_id/fail", technicians.Fail)

	dealers.Get("/:id/backoffice", backOffice.List)
	dealers.Put("/:id/backoffice/:account_id/approve", backOffice.Approve)
	dealers.Put("/:id/backoffice/:account_id/disapprove", backOffice.Disapprove)
}

func setupSubAccountAdminRoutes(router fiber.Router, technicians *handlers.TechnicianHandler, backOffice *handlers.BackOfficeHandler) {
	tech := router.Group("/technicians")
	tech.Get("/", technicians.List)
	tech.Get("/:id", technicians.Get)
	tech.Patch("/:id", technicians.Update)
	tech.Delete("/:id", technicians.Delete)

	bo := router.Group("/backoffice")
	bo.Get("/", backOffice.List)
	bo.Get("/:id", backOffice.Get)
	bo.Patch("/:id", backOffice.Update)
	bo.Delete("/:id", backOffice.Delete)
}

func setupCatalogAdminRoutes(router fiber.Router, handler *handlers.CatalogHandler) {
	router.Post("/categories", handler.AddCategory)
	router.Put("/categories/:id", handler.UpdateCategory)
	router.Delete("/categories/:id", handler.DeleteCategory)

	router.Post("/subcategories", handler.AddSubcategory)
	router.Put("/subcategories/:id", handler.UpdateSubcategory)
	router.Delete("/subcategories/:id", handler.DeleteSubcategory)

	router.Get("/products", handler.ListAllProducts)
	router.Get("/products/:id", handler.GetAnyProduct)
	router.Post("/products", handler.AddProduct)
	router.Patch("/products/:id", handler.UpdateProduct)
	router.Delete("/products/:id", handler.DeleteProduct)
}

func setupDiscountAdminRoutes(router fiber.Router, handler *handlers.DiscountHandler) {
	discounts := router.Group("/discounts")
	discounts.Get("/", handler.List)
	discounts.Post("/", handler.Assign)
	discounts.Get("/:id", handler.Get)
	discounts.Delete("/:id", handler.Delete)
}

func setupRMAAdminRoutes(router fiber.Router, handler *handlers.RMAHandler) {
	rma := router.Group("/rma")
	rma.Get("/", handler.List)
	rma.Get("/:id", handler.Get)
	rma.Put("/:id/accept", handler.Accept)
	rma.Put("/:id/reject", handler.Reject)
	rma.Put("/:id/resolved", handler.Resolve)
	rma.Delete("/:id", handler.Delete)
}

func setupCourseAdminRoutes(router fiber.Router, handler *handlers.CourseHandler) {
	courses := router.Group("/courses")
	courses.Get("/", handler.List)
	courses.Post("/", handler.Create)
	courses.Get("/:id", handler.Get)
	courses.Put("/:id", handler.Update)
	courses.Put("/:id/publish", handler.Publish)
	courses.Put("/:id/unpublish", handler.Unpublish)
	courses.Delete("/:id", handler.Delete)
}
