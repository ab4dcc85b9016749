package repositories

import (
	"context"

	"dealerhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ============================================================
// Technicians
// ============================================================

type technicianRepository struct {
	db *gorm.DB
}

// NewTechnicianRepository creates a new technician repository
func NewTechnicianRepository(db *gorm.DB) TechnicianRepository {
	return &technicianRepository{db: db}
}

func (r *technicianRepository) Create(ctx context.Context, technician *models.Technician) error {
	return r.db.WithContext(ctx).Create(technician).Error
}

func (r *technicianRepository) GetByID(ctx context.Context, id uint) (*models.Technician, error) {
	var technician models.Technician
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&technician).Error
	if err != nil {
		return nil, err
	}
	return &technician, nil
}

// GetByDealerAndID only matches a technician owned by dealerID
func (r *technicianRepository) GetByDealerAndID(ctx context.Context, dealerID, id uint) (*models.Technician, error) {
	var technician models.Technician
	err := r.db.WithContext(ctx).Where("id = ? AND dealer_id = ?", id, dealerID).First(&technician).Error
	if err != nil {
		return nil, err
	}
	return &technician, nil
}

func (r *technicianRepository) Update(ctx context.Context, technician *models.Technician) error {
	return r.db.WithContext(ctx).Omit("Dealer").Save(technician).Error
}

func (r *technicianRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, &models.Technician{}, id, fields)
}

func (r *technicianRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Technician{}, id)
}

// List lists technicians, optionally only those of one dealer
func (r *technicianRepository) List(ctx context.Context, dealerID *uint, offset, limit int) ([]*models.Technician, int64, error) {
	var technicians []*models.Technician
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Technician{})
	if dealerID != nil {
		query = query.Where("dealer_id = ?", *dealerID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Preload("Dealer").Order("id DESC").Find(&technicians).Error; err != nil {
		return nil, 0, err
	}
	return technicians, total, nil
}

func (r *technicianRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Technician{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// ============================================================
// Back-office users
// ============================================================

type backOfficeRepository struct {
	db *gorm.DB
}

// NewBackOfficeRepository creates a new back-office repository
func NewBackOfficeRepository(db *gorm.DB) BackOfficeRepository {
	return &backOfficeRepository{db: db}
}

func (r *backOfficeRepository) Create(ctx context.Context, account *models.BackOffice) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *backOfficeRepository) GetByID(ctx context.Context, id uint) (*models.BackOffice, error) {
	var account models.BackOffice
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByDealerAndID only matches a back-office user owned by dealerID
func (r *backOfficeRepository) GetByDealerAndID(ctx context.Context, dealerID, id uint) (*models.BackOffice, error) {
	var account models.BackOffice
	err := r.db.WithContext(ctx).Where("id = ? AND dealer_id = ?", id, dealerID).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *backOfficeRepository) Update(ctx context.Context, account *models.BackOffice) error {
	return r.db.WithContext(ctx).Omit("Dealer").Save(account).Error
}

func (r *backOfficeRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, &models.BackOffice{}, id, fields)
}

func (r *backOfficeRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.BackOffice{}, id)
}

// List lists back-office users, optionally only those of one dealer
func (r *backOfficeRepository) List(ctx context.Context, dealerID *uint, offset, limit int) ([]*models.BackOffice, int64, error) {
	var accounts []*models.BackOffice
	var total int64

	query := r.db.WithContext(ctx).Model(&models.BackOffice{})
	if dealerID != nil {
		query = query.Where("dealer_id = ?", *dealerID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Preload("Dealer").Order("id DESC").Find(&accounts).Error; err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

func (r *backOfficeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BackOffice{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// ============================================================
// helpers
// ============================================================

// updateFields applies a column map to one row. MySQL reports unchanged rows
// as unaffected, so callers check existence before calling.
func updateFields(ctx context.Context, db *gorm.DB, model interface{}, id uint, fields map[string]interface{}) error {
	return db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(fields).Error
}

// deleteByID hard deletes one row, reporting a missing row as gorm.ErrRecordNotFound
func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id uint) error {
	result := db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
