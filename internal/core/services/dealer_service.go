package services

import (
	"context"
	"strings"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/adapters/persistence/repositories"
	"dealerhub/internal/core/domain"

	"go.uber.org/zap"
)

// DealerNotifier is told about dealer lifecycle events
type DealerNotifier interface {
	NotifyDealerApproved(ctx context.Context, dealer *models.Dealer) error
}

// DealerService handles the dealer account lifecycle
type DealerService struct {
	dealerRepo repositories.DealerRepository
	notifier   DealerNotifier
	logger     *zap.Logger
}

// NewDealerService creates a new dealer service
func NewDealerService(
	dealerRepo repositories.DealerRepository,
	notifier DealerNotifier,
	logger *zap.Logger,
) *DealerService {
	return &DealerService{
		dealerRepo: dealerRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// AddressInput is a postal address as submitted by a client
type AddressInput struct {
	Line1   string `json:"line1" validate:"required,max=255"`
	Line2   string `json:"line2" validate:"max=255"`
	City    string `json:"city" validate:"max=100"`
	State   string `json:"state" validate:"max=100"`
	Pincode string `json:"pincode" validate:"required,pincode"`
}

func (a AddressInput) toModel() models.Address {
	return models.Address{
		Line1:   strings.TrimSpace(a.Line1),
		Line2:   strings.TrimSpace(a.Line2),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		Pincode: strings.TrimSpace(a.Pincode),
	}
}

// RegisterDealerInput represents a dealer registration
type RegisterDealerInput struct {
	FirstName       string       `json:"first_name" validate:"required,max=100"`
	LastName        string       `json:"last_name" validate:"max=100"`
	BusinessName    string       `json:"business_name" validate:"required,max=200"`
	GSTIN           string       `json:"gstin" validate:"required,gstin"`
	Email           string       `json:"email" validate:"required,email"`
	Phone           string       `json:"phone" validate:"required,phone"`
	ShippingAddress AddressInput `json:"shipping_address" validate:"required"`
	BillingAddress  AddressInput `json:"billing_address" validate:"required"`
	ProfilePic      string       `json:"profile_pic" validate:"omitempty,url"`
}

// UpdateDealerInput is a partial patch; nil fields are left unchanged
type UpdateDealerInput struct {
	FirstName       *string       `json:"first_name" validate:"omitnil,notblank,max=100"`
	LastName        *string       `json:"last_name" validate:"omitempty,max=100"`
	BusinessName    *string       `json:"business_name" validate:"omitnil,notblank,max=200"`
	GSTIN           *string       `json:"gstin" validate:"omitnil,gstin"`
	Email           *string       `json:"email" validate:"omitnil,email"`
	Phone           *string       `json:"phone" validate:"omitnil,phone"`
	ShippingAddress *AddressInput `json:"shipping_address"`
	BillingAddress  *AddressInput `json:"billing_address"`
	ProfilePic      *string       `json:"profile_pic" validate:"omitempty,url"`
}

// ListDealersInput represents list dealers input
type ListDealersInput struct {
	Filter domain.DealerFilter
	Search string
	Page   int
	Limit  int
}

// Register creates an unapproved, non-distributor dealer
func (s *DealerService) Register(ctx context.Context, input *RegisterDealerInput) (*models.Dealer, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := strings.TrimSpace(input.Phone)
	gstin := strings.ToUpper(strings.TrimSpace(input.GSTIN))

	exists, err := s.dealerRepo.ExistsByIdentity(ctx, email, phone, gstin, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDealerExists
	}

	dealer := &models.Dealer{
		FirstName:       strings.TrimSpace(input.FirstName),
		LastName:        strings.TrimSpace(input.LastName),
		BusinessName:    strings.TrimSpace(input.BusinessName),
		GSTIN:           gstin,
		Email:           email,
		Phone:           phone,
		ShippingAddress: input.ShippingAddress.toModel(),
		BillingAddress:  input.BillingAddress.toModel(),
		ProfilePic:      strings.TrimSpace(input.ProfilePic),
	}

	if err := s.dealerRepo.Create(ctx, dealer); err != nil {
		return nil, duplicateAs(err, domain.ErrDealerExists)
	}

	s.logger.Info("dealer registered", zap.Uint("dealer_id", dealer.ID), zap.String("business", dealer.BusinessName))
	return dealer, nil
}

// List lists dealers by approval / distributor filter
func (s *DealerService) List(ctx context.Context, input *ListDealersInput) ([]*models.Dealer, int64, error) {
	params := repositories.DealerListParams{
		Search: strings.TrimSpace(input.Search),
	}
	if input.Limit > 0 {
		page := input.Page
		if page < 1 {
			page = 1
		}
		params.Limit = input.Limit
		params.Offset = (page - 1) * input.Limit
	}

	yes, no := true, false
	switch input.Filter {
	case domain.DealerFilterAll:
	case domain.DealerFilterApproved:
		params.Approved = &yes
	case domain.DealerFilterNotApproved:
		params.Approved = &no
	case domain.DealerFilterDistributor:
		params.Distributor = &yes
	default:
		return nil, 0, &ValidationError{Message: "status must be one of [approved not-approved distributor]"}
	}

	return s.dealerRepo.List(ctx, params)
}

// Get gets a dealer by ID
func (s *DealerService) Get(ctx context.Context, id uint) (*models.Dealer, error) {
	dealer, err := s.dealerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrDealerNotFound)
	}
	return dealer, nil
}

// Update applies a partial patch to a dealer
func (s *DealerService) Update(ctx context.Context, id uint, input *UpdateDealerInput) (*models.Dealer, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	dealer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if v := trimPtr(input.FirstName); v != nil {
		dealer.FirstName = *v
	}
	if v := trimPtr(input.LastName); v != nil {
		dealer.LastName = *v
	}
	if v := trimPtr(input.BusinessName); v != nil {
		dealer.BusinessName = *v
	}
	if v := trimPtr(input.GSTIN); v != nil {
		dealer.GSTIN = strings.ToUpper(*v)
	}
	if v := trimPtr(input.Email); v != nil {
		dealer.Email = strings.ToLower(*v)
	}
	if v := trimPtr(input.Phone); v != nil {
		dealer.Phone = *v
	}
	if v := trimPtr(input.ProfilePic); v != nil {
		dealer.ProfilePic = *v
	}
	if input.ShippingAddress != nil {
		dealer.ShippingAddress = input.ShippingAddress.toModel()
	}
	if input.BillingAddress != nil {
		dealer.BillingAddress = input.BillingAddress.toModel()
	}

	if input.Email != nil || input.Phone != nil || input.GSTIN != nil {
		exists, err := s.dealerRepo.ExistsByIdentity(ctx, dealer.Email, dealer.Phone, dealer.GSTIN, dealer.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDealerExists
		}
	}

	if err := s.dealerRepo.Update(ctx, dealer); err != nil {
		return nil, duplicateAs(err, domain.ErrDealerExists)
	}
	return dealer, nil
}

// Approve marks the dealer approved, then notifies them. A failed
// notification is logged and never undoes the approval.
func (s *DealerService) Approve(ctx context.Context, id uint) (*models.Dealer, error) {
	dealer, err := s.setFlag(ctx, id, "is_approved", true)
	if err != nil {
		return nil, err
	}
	dealer.IsApproved = true

	s.logger.Info("dealer approved", zap.Uint("dealer_id", id))

	if s.notifier != nil {
		if err := s.notifier.NotifyDealerApproved(ctx, dealer); err != nil {
			s.logger.Warn("dealer approval notification failed",
				zap.Uint("dealer_id", id),
				zap.Error(err),
			)
		}
	}
	return dealer, nil
}

// Disapprove clears the approval flag
func (s *DealerService) Disapprove(ctx context.Context, id uint) (*models.Dealer, error) {
	dealer, err := s.setFlag(ctx, id, "is_approved", false)
	if err != nil {
		return nil, err
	}
	dealer.IsApproved = false

	s.logger.Info("dealer disapproved", zap.Uint("dealer_id", id))
	return dealer, nil
}

// PromoteToDistributor flags the dealer as a distributor. Approval is not a
// precondition.
func (s *DealerService) PromoteToDistributor(ctx context.Context, id uint) (*models.Dealer, error) {
	dealer, err := s.setFlag(ctx, id, "is_distributor", true)
	if err != nil {
		return nil, err
	}
	dealer.IsDistributor = true

	s.logger.Info("dealer promoted to distributor", zap.Uint("dealer_id", id))
	return dealer, nil
}

// DemoteDistributorToDealer clears the distributor flag
func (s *DealerService) DemoteDistributorToDealer(ctx context.Context, id uint) (*models.Dealer, error) {
	dealer, err := s.setFlag(ctx, id, "is_distributor", false)
	if err != nil {
		return nil, err
	}
	dealer.IsDistributor = false

	s.logger.Info("distributor demoted to dealer", zap.Uint("dealer_id", id))
	return dealer, nil
}

// Delete removes the dealer with its technicians, back-office users and
// discounts in one transaction
func (s *DealerService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.dealerRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, domain.ErrDealerNotFound)
	}

	s.logger.Info("dealer deleted", zap.Uint("dealer_id", id))
	return nil
}

func (s *DealerService) setFlag(ctx context.Context, id uint, column string, value bool) (*models.Dealer, error) {
	dealer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.dealerRepo.UpdateFields(ctx, id, map[string]interface{}{column: value}); err != nil {
		return nil, err
	}
	return dealer, nil
}
