package repositories

import (
	"context"

	"dealerhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ============================================================
// Category Repository
// ============================================================

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes the category with its subcategories, their products and any
// discounts on those products
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subIDs := tx.Model(&models.Subcategory{}).Select("id").Where("category_id = ?", id)
		productIDs := tx.Model(&models.Product{}).Select("id").
			Where("category_id = ? OR subcategory_id IN (?)", id, subIDs)

		if err := tx.Where("product_id IN (?)", productIDs).Delete(&models.Discount{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ? OR subcategory_id IN (?)", id, subIDs).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.Subcategory{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ============================================================
// Subcategory Repository
// ============================================================

type subcategoryRepository struct {
	db *gorm.DB
}

// NewSubcategoryRepository creates a new subcategory repository
func NewSubcategoryRepository(db *gorm.DB) SubcategoryRepository {
	return &subcategoryRepository{db: db}
}

func (r *subcategoryRepository) Create(ctx context.Context, subcategory *models.Subcategory) error {
	return r.db.WithContext(ctx).Omit("Category").Create(subcategory).Error
}

func (r *subcategoryRepository) GetByID(ctx context.Context, id uint) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&subcategory).Error
	if err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *subcategoryRepository) GetByName(ctx context.Context, name string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&subcategory).Error
	if err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *subcategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Subcategory{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// List lists subcategories, optionally only those of one category
func (r *subcategoryRepository) List(ctx context.Context, categoryID *uint) ([]*models.Subcategory, error) {
	var subcategories []*models.Subcategory
	query := r.db.WithContext(ctx).Preload("Category")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	err := query.Order("name ASC").Find(&subcategories).Error
	return subcategories, err
}

func (r *subcategoryRepository) Update(ctx context.Context, subcategory *models.Subcategory) error {
	return r.db.WithContext(ctx).Omit("Category").Save(subcategory).Error
}

// Delete removes the subcategory with its products and their discounts
func (r *subcategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productIDs := tx.Model(&models.Product{}).Select("id").Where("subcategory_id = ?", id)

		if err := tx.Where("product_id IN (?)", productIDs).Delete(&models.Discount{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subcategory_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Subcategory{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ============================================================
// Product Repository
// ============================================================

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Omit("Category", "Subcategory").Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Subcategory").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("title = ?", title).Count(&count).Error
	return count > 0, err
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Omit("Category", "Subcategory").Save(product).Error
}

// Delete removes the product and the discounts granted on it
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.Discount{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Product{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List lists products with optional title/keyword search
func (r *productRepository) List(ctx context.Context, params ProductListParams) ([]*models.Product, int64, error) {
	var products []*models.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Product{})
	if params.VisibleOnly {
		query = query.Where("is_visible = ?", true)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("title LIKE ? OR keywords LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if params.Limit > 0 {
		query = query.Offset(params.Offset).Limit(params.Limit)
	}
	err := query.
		Preload("Category").
		Preload("Subcategory").
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ListByCategoryOrSubcategories returns every product whose category is
// categoryID or whose subcategory is one of subcategoryIDs. Each product
// appears once.
func (r *productRepository) ListByCategoryOrSubcategories(ctx context.Context, categoryID *uint, subcategoryIDs []uint) ([]*models.Product, error) {
	var products []*models.Product

	if categoryID == nil && len(subcategoryIDs) == 0 {
		return products, nil
	}

	query := r.db.WithContext(ctx).Preload("Category").Preload("Subcategory")
	switch {
	case categoryID != nil && len(subcategoryIDs) > 0:
		query = query.Where("category_id = ? OR subcategory_id IN ?", *categoryID, subcategoryIDs)
	case categoryID != nil:
		query = query.Where("category_id = ?", *categoryID)
	default:
		query = query.Where("subcategory_id IN ?", subcategoryIDs)
	}

	err := query.Order("id ASC").Find(&products).Error
	return products, err
}
