package repositories

import (
	"context"
	"time"

	"dealerhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// discountRepository implements DiscountRepository interface
type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository creates a new discount repository
func NewDiscountRepository(db *gorm.DB) DiscountRepository {
	return &discountRepository{db: db}
}

func (r *discountRepository) Create(ctx context.Context, discount *models.Discount) error {
	return r.db.WithContext(ctx).Omit("Dealer", "Product").Create(discount).Error
}

func (r *discountRepository) GetByID(ctx context.Context, id uint) (*models.Discount, error) {
	var discount models.Discount
	err := r.db.WithContext(ctx).
		Preload("Dealer").
		Preload("Product").
		Where("id = ?", id).
		First(&discount).Error
	if err != nil {
		return nil, err
	}
	return &discount, nil
}

// List lists discounts, optionally for one dealer and/or only those still
// valid at activeAt
func (r *discountRepository) List(ctx context.Context, dealerID *uint, activeAt *time.Time) ([]*models.Discount, error) {
	var discounts []*models.Discount

	query := r.db.WithContext(ctx).Preload("Dealer").Preload("Product")
	if dealerID != nil {
		query = query.Where("dealer_id = ?", *dealerID)
	}
	if activeAt != nil {
		query = query.Where("expiry_date >= ?", *activeAt)
	}

	err := query.Order("expiry_date ASC, id ASC").Find(&discounts).Error
	return discounts, err
}

func (r *discountRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Discount{}, id)
}

// DeleteExpiredBefore purges discounts whose expiry date is older than before
func (r *discountRepository) DeleteExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expiry_date < ?", before).Delete(&models.Discount{})
	return result.RowsAffected, result.Error
}
