package repositories

import (
	"context"
	"time"

	"dealerhub/internal/adapters/persistence/models"
)

// AdminRepository defines admin repository interface
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id uint) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	Count(ctx context.Context) (int64, error)
}

// DealerListParams filters dealer listings
type DealerListParams struct {
	Approved    *bool
	Distributor *bool
	Search      string
	Offset      int
	Limit       int
}

// DealerRepository defines dealer repository interface
type DealerRepository interface {
	Create(ctx context.Context, dealer *models.Dealer) error
	GetByID(ctx context.Context, id uint) (*models.Dealer, error)
	Update(ctx context.Context, dealer *models.Dealer) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params DealerListParams) ([]*models.Dealer, int64, error)
	ExistsByIdentity(ctx context.Context, email, phone, gstin string, excludeID uint) (bool, error)
}

// TechnicianRepository defines technician repository interface
type TechnicianRepository interface {
	Create(ctx context.Context, technician *models.Technician) error
	GetByID(ctx context.Context, id uint) (*models.Technician, error)
	GetByDealerAndID(ctx context.Context, dealerID, id uint) (*models.Technician, error)
	Update(ctx context.Context, technician *models.Technician) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, dealerID *uint, offset, limit int) ([]*models.Technician, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// BackOfficeRepository defines back-office repository interface
type BackOfficeRepository interface {
	Create(ctx context.Context, account *models.BackOffice) error
	GetByID(ctx context.Context, id uint) (*models.BackOffice, error)
	GetByDealerAndID(ctx context.Context, dealerID, id uint) (*models.BackOffice, error)
	Update(ctx context.Context, account *models.BackOffice) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, dealerID *uint, offset, limit int) ([]*models.BackOffice, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CategoryRepository defines category repository interface
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}

// SubcategoryRepository defines subcategory repository interface
type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *models.Subcategory) error
	GetByID(ctx context.Context, id uint) (*models.Subcategory, error)
	GetByName(ctx context.Context, name string) (*models.Subcategory, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, categoryID *uint) ([]*models.Subcategory, error)
	Update(ctx context.Context, subcategory *models.Subcategory) error
	Delete(ctx context.Context, id uint) error
}

// ProductListParams filters product listings
type ProductListParams struct {
	Search      string
	VisibleOnly bool
	Offset      int
	Limit       int
}

// ProductRepository defines product repository interface
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params ProductListParams) ([]*models.Product, int64, error)
	ListByCategoryOrSubcategories(ctx context.Context, categoryID *uint, subcategoryIDs []uint) ([]*models.Product, error)
}

// DiscountRepository defines discount repository interface
type DiscountRepository interface {
	Create(ctx context.Context, discount *models.Discount) error
	GetByID(ctx context.Context, id uint) (*models.Discount, error)
	List(ctx context.Context, dealerID *uint, activeAt *time.Time) ([]*models.Discount, error)
	Delete(ctx context.Context, id uint) error
	DeleteExpiredBefore(ctx context.Context, before time.Time) (int64, error)
}

// RMARepository defines rma request repository interface
type RMARepository interface {
	Create(ctx context.Context, rma *models.RMARequest) error
	GetByID(ctx context.Context, id uint) (*models.RMARequest, error)
	List(ctx context.Context, status string, offset, limit int) ([]*models.RMARequest, int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

// CourseRepository defines course repository interface
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uint) (*models.Course, error)
	List(ctx context.Context, publishedOnly bool) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	SetPublished(ctx context.Context, id uint, published bool) error
	Delete(ctx context.Context, id uint) error
}

// NotificationRepository defines notification log repository interface
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	UpdateStatus(ctx context.Context, id uint, status, errMsg string) error
	List(ctx context.Context, offset, limit int) ([]*models.Notification, int64, error)
}
