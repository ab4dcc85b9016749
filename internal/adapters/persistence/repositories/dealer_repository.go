package repositories

import (
	"context"

	"dealerhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// dealerRepository implements DealerRepository interface
type dealerRepository struct {
	db *gorm.DB
}

// NewDealerRepository creates a new dealer repository
func NewDealerRepository(db *gorm.DB) DealerRepository {
	return &dealerRepository{db: db}
}

// Create creates a new dealer
func (r *dealerRepository) Create(ctx context.Context, dealer *models.Dealer) error {
	return r.db.WithContext(ctx).Create(dealer).Error
}

// GetByID gets a dealer by ID
func (r *dealerRepository) GetByID(ctx context.Context, id uint) (*models.Dealer, error) {
	var dealer models.Dealer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dealer).Error
	if err != nil {
		return nil, err
	}
	return &dealer, nil
}

// Update saves every column of the dealer
func (r *dealerRepository) Update(ctx context.Context, dealer *models.Dealer) error {
	return r.db.WithContext(ctx).Save(dealer).Error
}

// UpdateFields updates the given columns only
func (r *dealerRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, &models.Dealer{}, id, fields)
}

// Delete hard deletes a dealer together with its sub-accounts and discounts
func (r *dealerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dealer_id = ?", id).Delete(&models.Discount{}).Error; err != nil {
			return err
		}
		if err := tx.Where("dealer_id = ?", id).Delete(&models.Technician{}).Error; err != nil {
			return err
		}
		if err := tx.Where("dealer_id = ?", id).Delete(&models.BackOffice{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Dealer{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List lists dealers matching params, newest first
func (r *dealerRepository) List(ctx context.Context, params DealerListParams) ([]*models.Dealer, int64, error) {
	var dealers []*models.Dealer
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Dealer{})
	if params.Approved != nil {
		query = query.Where("is_approved = ?", *params.Approved)
	}
	if params.Distributor != nil {
		query = query.Where("is_distributor = ?", *params.Distributor)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where(
			"business_name LIKE ? OR first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR gstin LIKE ?",
			like, like, like, like, like,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Limit > 0 {
		query = query.Offset(params.Offset).Limit(params.Limit)
	}
	if err := query.Order("created_at DESC, id DESC").Find(&dealers).Error; err != nil {
		return nil, 0, err
	}

	return dealers, total, nil
}

// ExistsByIdentity checks if any of email / phone / gstin is already registered
// to a dealer other than excludeID
func (r *dealerRepository) ExistsByIdentity(ctx context.Context, email, phone, gstin string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Dealer{}).
		Where("email = ? OR phone = ? OR gstin = ?", email, phone, gstin)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
