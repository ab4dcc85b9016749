package services

import (
	"context"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/core/domain"

	"gorm.io/gorm"
)

// DashboardService handles dashboard operations
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// AdminDashboardData represents the admin home page counters
type AdminDashboardData struct {
	// Customers
	TotalDealers       int64 `json:"total_dealers"`
	ApprovedDealers    int64 `json:"approved_dealers"`
	PendingDealers     int64 `json:"pending_dealers"`
	Distributors       int64 `json:"distributors"`
	TotalTechnicians   int64 `json:"total_technicians"`
	PassedTechnicians  int64 `json:"passed_technicians"`
	TotalBackOffice    int64 `json:"total_backoffice"`
	PendingSubAccounts int64 `json:"pending_sub_accounts"`

	// Catalog
	TotalCategories    int64 `json:"total_categories"`
	TotalSubcategories int64 `json:"total_subcategories"`
	TotalProducts      int64 `json:"total_products"`
	HiddenProducts     int64 `json:"hidden_products"`
	ActiveDiscounts    int64 `json:"active_discounts"`

	// Support
	RMAByStatus      map[string]int64 `json:"rma_by_status"`
	PublishedCourses int64            `json:"published_courses"`
	FailedNotices    int64            `json:"failed_notifications"`
}

// counter runs a sequence of counts and keeps the first error
type counter struct {
	db  *gorm.DB
	err error
}

func (c *counter) count(dest *int64, model interface{}, query string, args ...interface{}) {
	if c.err != nil {
		return
	}
	tx := c.db.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	c.err = tx.Count(dest).Error
}

// GetAdminDashboard returns admin dashboard data
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboardData, error) {
	data := &AdminDashboardData{
		RMAByStatus: map[string]int64{},
	}
	c := &counter{db: s.db.WithContext(ctx)}

	c.count(&data.TotalDealers, &models.Dealer{}, "")
	c.count(&data.ApprovedDealers, &models.Dealer{}, "is_approved = ?", true)
	c.count(&data.PendingDealers, &models.Dealer{}, "is_approved = ?", false)
	c.count(&data.Distributors, &models.Dealer{}, "is_distributor = ?", true)
	c.count(&data.TotalTechnicians, &models.Technician{}, "")
	c.count(&data.PassedTechnicians, &models.Technician{}, "is_passed = ?", true)
	c.count(&data.TotalBackOffice, &models.BackOffice{}, "")

	var pendingTech, pendingBO int64
	c.count(&pendingTech, &models.Technician{}, "is_approved = ?", false)
	c.count(&pendingBO, &models.BackOffice{}, "is_approved = ?", false)
	data.PendingSubAccounts = pendingTech + pendingBO

	c.count(&data.TotalCategories, &models.Category{}, "")
	c.count(&data.TotalSubcategories, &models.Subcategory{}, "")
	c.count(&data.TotalProducts, &models.Product{}, "")
	c.count(&data.HiddenProducts, &models.Product{}, "is_visible = ?", false)
	c.count(&data.ActiveDiscounts, &models.Discount{}, "expiry_date >= ?", startOfDay(timeNow()))

	for _, status := range []domain.RMAStatus{domain.RMAPending, domain.RMAAccepted, domain.RMARejected, domain.RMAResolved} {
		var n int64
		c.count(&n, &models.RMARequest{}, "status = ?", string(status))
		data.RMAByStatus[string(status)] = n
	}

	c.count(&data.PublishedCourses, &models.Course{}, "is_published = ?", true)
	c.count(&data.FailedNotices, &models.Notification{}, "status = ?", domain.NotificationFailed)

	if c.err != nil {
		return nil, c.err
	}
	return data, nil
}
