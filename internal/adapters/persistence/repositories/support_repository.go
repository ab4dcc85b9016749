package repositories

import (
	"context"

	"dealerhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ============================================================
// RMA Repository
// ============================================================

type rmaRepository struct {
	db *gorm.DB
}

// NewRMARepository creates a new rma repository
func NewRMARepository(db *gorm.DB) RMARepository {
	return &rmaRepository{db: db}
}

func (r *rmaRepository) Create(ctx context.Context, rma *models.RMARequest) error {
	return r.db.WithContext(ctx).Create(rma).Error
}

func (r *rmaRepository) GetByID(ctx context.Context, id uint) (*models.RMARequest, error) {
	var rma models.RMARequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rma).Error
	if err != nil {
		return nil, err
	}
	return &rma, nil
}

// List lists rma requests newest first, optionally filtered by status
func (r *rmaRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.RMARequest, int64, error) {
	var requests []*models.RMARequest
	var total int64

	query := r.db.WithContext(ctx).Model(&models.RMARequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *rmaRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return updateFields(ctx, r.db, &models.RMARequest{}, id, map[string]interface{}{"status": status})
}

func (r *rmaRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.RMARequest{}, id)
}

// ============================================================
// Course Repository
// ============================================================

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) List(ctx context.Context, publishedOnly bool) ([]*models.Course, error) {
	var courses []*models.Course
	query := r.db.WithContext(ctx)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Order("id DESC").Find(&courses).Error
	return courses, err
}

func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepository) SetPublished(ctx context.Context, id uint, published bool) error {
	return updateFields(ctx, r.db, &models.Course{}, id, map[string]interface{}{"is_published": published})
}

func (r *courseRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Course{}, id)
}

// ============================================================
// Notification Repository
// ============================================================

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification log repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) UpdateStatus(ctx context.Context, id uint, status, errMsg string) error {
	return r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        status,
			"error_message": errMsg,
		}).Error
}

func (r *notificationRepository) List(ctx context.Context, offset, limit int) ([]*models.Notification, int64, error) {
	var notifications []*models.Notification
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Notification{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Order("id DESC").Find(&notifications).Error; err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}
