package services

import (
	"context"
	"strings"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/adapters/persistence/repositories"
	"dealerhub/internal/core/domain"

	"go.uber.org/zap"
)

// CreateSubAccountInput represents a technician or back-office signup under a dealer
type CreateSubAccountInput struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,phone"`
	ProfilePic string `json:"profile_pic" validate:"omitempty,url"`
}

// UpdateSubAccountInput is a partial patch; nil fields are left unchanged.
// IsPassed only applies to technicians.
type UpdateSubAccountInput struct {
	FirstName  *string `json:"first_name" validate:"omitnil,notblank,max=100"`
	LastName   *string `json:"last_name" validate:"omitempty,max=100"`
	Phone      *string `json:"phone" validate:"omitempty,phone"`
	ProfilePic *string `json:"profile_pic" validate:"omitempty,url"`
	IsApproved *bool   `json:"is_approved"`
	IsPassed   *bool   `json:"is_passed"`
}

// ListSubAccountsInput narrows a sub-account listing
type ListSubAccountsInput struct {
	DealerID *uint
	Page     int
	Limit    int
}

func (in *ListSubAccountsInput) window() (offset, limit int) {
	if in.Limit <= 0 {
		return 0, 0
	}
	page := in.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * in.Limit, in.Limit
}

// ============================================================
// Technicians
// ============================================================

// TechnicianService handles technician sub-accounts
type TechnicianService struct {
	technicianRepo repositories.TechnicianRepository
	dealerRepo     repositories.DealerRepository
	logger         *zap.Logger
}

// NewTechnicianService creates a new technician service
func NewTechnicianService(
	technicianRepo repositories.TechnicianRepository,
	dealerRepo repositories.DealerRepository,
	logger *zap.Logger,
) *TechnicianService {
	return &TechnicianService{
		technicianRepo: technicianRepo,
		dealerRepo:     dealerRepo,
		logger:         logger,
	}
}

// Create registers a technician under an existing dealer
func (s *TechnicianService) Create(ctx context.Context, dealerID uint, input *CreateSubAccountInput) (*models.Technician, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	if _, err := s.dealerRepo.GetByID(ctx, dealerID); err != nil {
		return nil, notFoundAs(err, domain.ErrDealerNotFound)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	exists, err := s.technicianRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrTechnicianExists
	}

	technician := &models.Technician{
		DealerID:   dealerID,
		FirstName:  strings.TrimSpace(input.FirstName),
		LastName:   strings.TrimSpace(input.LastName),
		Email:      email,
		Phone:      strings.TrimSpace(input.Phone),
		ProfilePic: strings.TrimSpace(input.ProfilePic),
	}
	if err := s.technicianRepo.Create(ctx, technician); err != nil {
		return nil, duplicateAs(err, domain.ErrTechnicianExists)
	}

	s.logger.Info("technician created", zap.Uint("dealer_id", dealerID), zap.Uint("technician_id", technician.ID))
	return technician, nil
}

// List lists technicians, optionally for one dealer
func (s *TechnicianService) List(ctx context.Context, input *ListSubAccountsInput) ([]*models.Technician, int64, error) {
	if input.DealerID != nil {
		if _, err := s.dealerRepo.GetByID(ctx, *input.DealerID); err != nil {
			return nil, 0, notFoundAs(err, domain.ErrDealerNotFound)
		}
	}
	offset, limit := input.window()
	return s.technicianRepo.List(ctx, input.DealerID, offset, limit)
}

// Get gets a technician by ID
func (s *TechnicianService) Get(ctx context.Context, id uint) (*models.Technician, error) {
	technician, err := s.technicianRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrTechnicianNotFound)
	}
	return technician, nil
}

// Approve approves a technician owned by dealerID
func (s *TechnicianService) Approve(ctx context.Context, dealerID, id uint) (*models.Technician, error) {
	return s.setFlag(ctx, dealerID, id, "is_approved", true)
}

// Disapprove clears the approval of a technician owned by dealerID
func (s *TechnicianService) Disapprove(ctx context.Context, dealerID, id uint) (*models.Technician, error) {
	return s.setFlag(ctx, dealerID, id, "is_approved", false)
}

// MarkPassed records that the technician passed training
func (s *TechnicianService) MarkPassed(ctx context.Context, dealerID, id uint) (*models.Technician, error) {
	return s.setFlag(ctx, dealerID, id, "is_passed", true)
}

// MarkFailed clears the training pass flag
func (s *TechnicianService) MarkFailed(ctx context.Context, dealerID, id uint) (*models.Technician, error) {
	return s.setFlag(ctx, dealerID, id, "is_passed", false)
}

// Update applies a partial patch to a technician
func (s *TechnicianService) Update(ctx context.Context, id uint, input *UpdateSubAccountInput) (*models.Technician, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	technician, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if v := trimPtr(input.FirstName); v != nil {
		technician.FirstName = *v
	}
	if v := trimPtr(input.LastName); v != nil {
		technician.LastName = *v
	}
	if v := trimPtr(input.Phone); v != nil {
		technician.Phone = *v
	}
	if v := trimPtr(input.ProfilePic); v != nil {
		technician.ProfilePic = *v
	}
	if input.IsApproved != nil {
		technician.IsApproved = *input.IsApproved
	}
	if input.IsPassed != nil {
		technician.IsPassed = *input.IsPassed
	}

	if err := s.technicianRepo.Update(ctx, technician); err != nil {
		return nil, err
	}
	return technician, nil
}

// Delete hard deletes a technician
func (s *TechnicianService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.technicianRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, domain.ErrTechnicianNotFound)
	}
	s.logger.Info("technician deleted", zap.Uint("technician_id", id))
	return nil
}

// setFlag only touches a technician that belongs to dealerID; any other
// pairing is reported as not found
func (s *TechnicianService) setFlag(ctx context.Context, dealerID, id uint, column string, value bool) (*models.Technician, error) {
	technician, err := s.technicianRepo.GetByDealerAndID(ctx, dealerID, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrTechnicianNotFound)
	}
	if err := s.technicianRepo.UpdateFields(ctx, id, map[string]interface{}{column: value}); err != nil {
		return nil, err
	}

	switch column {
	case "is_approved":
		technician.IsApproved = value
	case "is_passed":
		technician.IsPassed = value
	}

	s.logger.Info("technician updated",
		zap.Uint("dealer_id", dealerID),
		zap.Uint("technician_id", id),
		zap.String("field", column),
		zap.Bool("value", value),
	)
	return technician, nil
}

// ============================================================
// Back-office users
// ============================================================

// BackOfficeService handles back-office sub-accounts
type BackOfficeService struct {
	backOfficeRepo repositories.BackOfficeRepository
	dealerRepo     repositories.DealerRepository
	logger         *zap.Logger
}

// NewBackOfficeService creates a new back-office service
func NewBackOfficeService(
	backOfficeRepo repositories.BackOfficeRepository,
	dealerRepo repositories.DealerRepository,
	logger *zap.Logger,
) *BackOfficeService {
	return &BackOfficeService{
		backOfficeRepo: backOfficeRepo,
		dealerRepo:     dealerRepo,
		logger:         logger,
	}
}

// Create registers a back-office user under an existing dealer
func (s *BackOfficeService) Create(ctx context.Context, dealerID uint, input *CreateSubAccountInput) (*models.BackOffice, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	if _, err := s.dealerRepo.GetByID(ctx, dealerID); err != nil {
		return nil, notFoundAs(err, domain.ErrDealerNotFound)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	exists, err := s.backOfficeRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrBackOfficeExists
	}

	account := &models.BackOffice{
		DealerID:   dealerID,
		FirstName:  strings.TrimSpace(input.FirstName),
		LastName:   strings.TrimSpace(input.LastName),
		Email:      email,
		Phone:      strings.TrimSpace(input.Phone),
		ProfilePic: strings.TrimSpace(input.ProfilePic),
	}
	if err := s.backOfficeRepo.Create(ctx, account); err != nil {
		return nil, duplicateAs(err, domain.ErrBackOfficeExists)
	}

	s.logger.Info("back-office user created", zap.Uint("dealer_id", dealerID), zap.Uint("backoffice_id", account.ID))
	return account, nil
}

// List lists back-office users, optionally for one dealer
func (s *BackOfficeService) List(ctx context.Context, input *ListSubAccountsInput) ([]*models.BackOffice, int64, error) {
	if input.DealerID != nil {
		if _, err := s.dealerRepo.GetByID(ctx, *input.DealerID); err != nil {
			return nil, 0, notFoundAs(err, domain.ErrDealerNotFound)
		}
	}
	offset, limit := input.window()
	return s.backOfficeRepo.List(ctx, input.DealerID, offset, limit)
}

// Get gets a back-office user by ID
func (s *BackOfficeService) Get(ctx context.Context, id uint) (*models.BackOffice, error) {
	account, err := s.backOfficeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrBackOfficeNotFound)
	}
	return account, nil
}

// Approve approves a back-office user owned by dealerID
func (s *BackOfficeService) Approve(ctx context.Context, dealerID, id uint) (*models.BackOffice, error) {
	return s.setApproved(ctx, dealerID, id, true)
}

// Disapprove clears the approval of a back-office user owned by dealerID
func (s *BackOfficeService) Disapprove(ctx context.Context, dealerID, id uint) (*models.BackOffice, error) {
	return s.setApproved(ctx, dealerID, id, false)
}

// Update applies a partial patch to a back-office user
func (s *BackOfficeService) Update(ctx context.Context, id uint, input *UpdateSubAccountInput) (*models.BackOffice, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	if input.IsPassed != nil {
		return nil, &ValidationError{Message: "is_passed does not apply to back-office users"}
	}

	account, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if v := trimPtr(input.FirstName); v != nil {
		account.FirstName = *v
	}
	if v := trimPtr(input.LastName); v != nil {
		account.LastName = *v
	}
	if v := trimPtr(input.Phone); v != nil {
		account.Phone = *v
	}
	if v := trimPtr(input.ProfilePic); v != nil {
		account.ProfilePic = *v
	}
	if input.IsApproved != nil {
		account.IsApproved = *input.IsApproved
	}

	if err := s.backOfficeRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Delete hard deletes a back-office user
func (s *BackOfficeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.backOfficeRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, domain.ErrBackOfficeNotFound)
	}
	s.logger.Info("back-office user deleted", zap.Uint("backoffice_id", id))
	return nil
}

func (s *BackOfficeService) setApproved(ctx context.Context, dealerID, id uint, value bool) (*models.BackOffice, error) {
	account, err := s.backOfficeRepo.GetByDealerAndID(ctx, dealerID, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrBackOfficeNotFound)
	}
	if err := s.backOfficeRepo.UpdateFields(ctx, id, map[string]interface{}{"is_approved": value}); err != nil {
		return nil, err
	}
	account.IsApproved = value

	s.logger.Info("back-office user updated",
		zap.Uint("dealer_id", dealerID),
		zap.Uint("backoffice_id", id),
		zap.Bool("is_approved", value),
	)
	return account, nil
}
