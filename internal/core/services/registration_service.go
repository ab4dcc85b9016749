package services

import (
	"context"
	"errors"

	"dealerhub/internal/adapters/persistence/models"

	"go.uber.org/zap"
)

// Registration wizard steps, in order
const (
	StepBusiness = "business"
	StepContact  = "contact"
	StepAddress  = "address"
	StepDone     = "done"
)

// BusinessStep is the first wizard page
type BusinessStep struct {
	BusinessName string `json:"business_name" validate:"required,max=200"`
	GSTIN        string `json:"gstin" validate:"required,gstin"`
}

// ContactStep is the second wizard page
type ContactStep struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,phone"`
	ProfilePic string `json:"profile_pic" validate:"omitempty,url"`
}

// AddressStep is the last wizard page. Billing may be omitted when
// BillingSameAsShipping is set.
type AddressStep struct {
	Shipping              AddressInput  `json:"shipping" validate:"required"`
	Billing               *AddressInput `json:"billing"`
	BillingSameAsShipping bool          `json:"billing_same_as_shipping"`
}

// RegistrationDraft accumulates the wizard pages. It is a value: every With*
// method returns a new draft and leaves the receiver unchanged.
type RegistrationDraft struct {
	business *BusinessStep
	contact  *ContactStep
	address  *AddressStep
}

// NewRegistrationDraft starts an empty wizard
func NewRegistrationDraft() RegistrationDraft {
	return RegistrationDraft{}
}

// WithBusiness validates and records the business page
func (d RegistrationDraft) WithBusiness(step BusinessStep) (RegistrationDraft, error) {
	if err := validate(&step); err != nil {
		return d, err
	}
	d.business = &step
	return d, nil
}

// WithContact validates and records the contact page
func (d RegistrationDraft) WithContact(step ContactStep) (RegistrationDraft, error) {
	if err := validate(&step); err != nil {
		return d, err
	}
	d.contact = &step
	return d, nil
}

// WithAddress validates and records the address page
func (d RegistrationDraft) WithAddress(step AddressStep) (RegistrationDraft, error) {
	if step.Billing != nil {
		billing := *step.Billing
		step.Billing = &billing
	}
	if err := validate(&step); err != nil {
		return d, err
	}
	if step.BillingSameAsShipping {
		billing := step.Shipping
		step.Billing = &billing
	}
	if step.Billing == nil {
		return d, &ValidationError{Message: "billing is required unless billing_same_as_shipping is set"}
	}
	if err := validate(step.Billing); err != nil {
		return d, err
	}
	d.address = &step
	return d, nil
}

// NextStep names the first page still missing
func (d RegistrationDraft) NextStep() string {
	switch {
	case d.business == nil:
		return StepBusiness
	case d.contact == nil:
		return StepContact
	case d.address == nil:
		return StepAddress
	default:
		return StepDone
	}
}

// Build assembles the registration once every page is present
func (d RegistrationDraft) Build() (*RegisterDealerInput, error) {
	if next := d.NextStep(); next != StepDone {
		return nil, &ValidationError{Message: "registration is incomplete: " + next + " step is missing"}
	}

	return &RegisterDealerInput{
		FirstName:       d.contact.FirstName,
		LastName:        d.contact.LastName,
		BusinessName:    d.business.BusinessName,
		GSTIN:           d.business.GSTIN,
		Email:           d.contact.Email,
		Phone:           d.contact.Phone,
		ShippingAddress: d.address.Shipping,
		BillingAddress:  *d.address.Billing,
		ProfilePic:      d.contact.ProfilePic,
	}, nil
}

// RegistrationSubmission is the assembled wizard as posted by the mobile app
type RegistrationSubmission struct {
	Business BusinessStep `json:"business"`
	Contact  ContactStep  `json:"contact"`
	Address  AddressStep  `json:"address"`
}

// PincodeLocator resolves a pincode to its city and state
type PincodeLocator interface {
	Locate(ctx context.Context, code string) (city, state string, err error)
}

// RegistrationService drives the dealer signup wizard
type RegistrationService struct {
	dealers *DealerService
	locator PincodeLocator
	logger  *zap.Logger
}

// NewRegistrationService creates a new registration service. locator may be nil.
func NewRegistrationService(dealers *DealerService, locator PincodeLocator, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{
		dealers: dealers,
		locator: locator,
		logger:  logger,
	}
}

// Submit walks the submission through the wizard pages and registers the dealer
func (s *RegistrationService) Submit(ctx context.Context, sub *RegistrationSubmission) (*models.Dealer, error) {
	draft, err := NewRegistrationDraft().WithBusiness(sub.Business)
	if err != nil {
		return nil, err
	}
	if draft, err = draft.WithContact(sub.Contact); err != nil {
		return nil, err
	}
	if draft, err = draft.WithAddress(sub.Address); err != nil {
		return nil, err
	}
	return s.Register(ctx, draft)
}

// Register builds the draft, fills blank city / state from the pincode and
// creates the dealer
func (s *RegistrationService) Register(ctx context.Context, draft RegistrationDraft) (*models.Dealer, error) {
	input, err := draft.Build()
	if err != nil {
		return nil, err
	}

	s.fillLocation(ctx, &input.ShippingAddress)
	s.fillLocation(ctx, &input.BillingAddress)

	return s.dealers.Register(ctx, input)
}

func (s *RegistrationService) fillLocation(ctx context.Context, addr *AddressInput) {
	if s.locator == nil || (addr.City != "" && addr.State != "") {
		return
	}

	city, state, err := s.locator.Locate(ctx, addr.Pincode)
	if err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			s.logger.Warn("pincode lookup failed during registration", zap.String("pincode", addr.Pincode), zap.Error(err))
		}
		return
	}
	if addr.City == "" {
		addr.City = city
	}
	if addr.State == "" {
		addr.State = state
	}
}
