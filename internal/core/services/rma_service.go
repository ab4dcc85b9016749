package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/adapters/persistence/repositories"
	"dealerhub/internal/core/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RMAService records return requests and moves them through their statuses
type RMAService struct {
	rmaRepo        repositories.RMARepository
	dealerRepo     repositories.DealerRepository
	technicianRepo repositories.TechnicianRepository
	backOfficeRepo repositories.BackOfficeRepository
	logger         *zap.Logger
}

// NewRMAService creates a new rma service
func NewRMAService(
	rmaRepo repositories.RMARepository,
	dealerRepo repositories.DealerRepository,
	technicianRepo repositories.TechnicianRepository,
	backOfficeRepo repositories.BackOfficeRepository,
	logger *zap.Logger,
) *RMAService {
	return &RMAService{
		rmaRepo:        rmaRepo,
		dealerRepo:     dealerRepo,
		technicianRepo: technicianRepo,
		backOfficeRepo: backOfficeRepo,
		logger:         logger,
	}
}

// FileRMAInput represents a new return request
type FileRMAInput struct {
	CustomerType string `json:"customer_type" validate:"required,oneof=DEALER TECHNICIAN BACKOFFICE"`
	CustomerID   uint   `json:"customer_id" validate:"required"`
	ProductName  string `json:"product_name" validate:"required,max=255"`
	SerialNumber string `json:"serial_number" validate:"max=100"`
	Reason       string `json:"reason" validate:"required"`
}

// ListRMAInput represents list rma input
type ListRMAInput struct {
	Status string
	Page   int
	Limit  int
}

// File records a pending return request for an existing customer
func (s *RMAService) File(ctx context.Context, input *FileRMAInput) (*models.RMARequest, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	customerType := domain.CustomerType(input.CustomerType)
	if err := s.ensureCustomer(ctx, customerType, input.CustomerID); err != nil {
		return nil, err
	}

	rma := &models.RMARequest{
		RMANumber:    newRMANumber(time.Now()),
		CustomerType: string(customerType),
		CustomerID:   input.CustomerID,
		ProductName:  strings.TrimSpace(input.ProductName),
		SerialNumber: strings.TrimSpace(input.SerialNumber),
		Reason:       strings.TrimSpace(input.Reason),
		Status:       string(domain.RMAPending),
	}
	if err := s.rmaRepo.Create(ctx, rma); err != nil {
		return nil, err
	}

	s.logger.Info("rma filed",
		zap.Uint("rma_id", rma.ID),
		zap.String("rma_number", rma.RMANumber),
		zap.String("customer_type", rma.CustomerType),
		zap.Uint("customer_id", rma.CustomerID),
	)
	return rma, nil
}

// List lists rma requests, optionally by status
func (s *RMAService) List(ctx context.Context, input *ListRMAInput) ([]*models.RMARequest, int64, error) {
	status := strings.ToUpper(strings.TrimSpace(input.Status))
	if status != "" && !domain.RMAStatus(status).Valid() {
		return nil, 0, &ValidationError{Message: "status must be one of [PENDING ACCEPTED REJECTED RESOLVED]"}
	}

	offset, limit := 0, 0
	if input.Limit > 0 {
		page := input.Page
		if page < 1 {
			page = 1
		}
		offset, limit = (page-1)*input.Limit, input.Limit
	}
	return s.rmaRepo.List(ctx, status, offset, limit)
}

// Get gets an rma request by ID
func (s *RMAService) Get(ctx context.Context, id uint) (*models.RMARequest, error) {
	rma, err := s.rmaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrRMANotFound)
	}
	return rma, nil
}

// Accept moves the request to ACCEPTED
func (s *RMAService) Accept(ctx context.Context, id uint) (*models.RMARequest, error) {
	return s.transition(ctx, id, domain.RMAAccepted)
}

// Reject moves the request to REJECTED
func (s *RMAService) Reject(ctx context.Context, id uint) (*models.RMARequest, error) {
	return s.transition(ctx, id, domain.RMARejected)
}

// Resolve moves the request to RESOLVED
func (s *RMAService) Resolve(ctx context.Context, id uint) (*models.RMARequest, error) {
	return s.transition(ctx, id, domain.RMAResolved)
}

// Delete hard deletes a request whatever its status
func (s *RMAService) Delete(ctx context.Context, id uint) error {
	if err := s.rmaRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, domain.ErrRMANotFound)
	}
	s.logger.Info("rma deleted", zap.Uint("rma_id", id))
	return nil
}

func (s *RMAService) transition(ctx context.Context, id uint, to domain.RMAStatus) (*models.RMARequest, error) {
	rma, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	from := domain.RMAStatus(rma.Status)
	if !domain.CanTransition(from, to) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, from, to)
	}

	if err := s.rmaRepo.UpdateStatus(ctx, id, string(to)); err != nil {
		return nil, err
	}
	rma.Status = string(to)

	s.logger.Info("rma status changed",
		zap.Uint("rma_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
	return rma, nil
}

func (s *RMAService) ensureCustomer(ctx context.Context, customerType domain.CustomerType, id uint) error {
	var err error
	var notFound error

	switch customerType {
	case domain.CustomerDealer:
		_, err = s.dealerRepo.GetByID(ctx, id)
		notFound = domain.ErrDealerNotFound
	case domain.CustomerTechnician:
		_, err = s.technicianRepo.GetByID(ctx, id)
		notFound = domain.ErrTechnicianNotFound
	case domain.CustomerBackOffice:
		_, err = s.backOfficeRepo.GetByID(ctx, id)
		notFound = domain.ErrBackOfficeNotFound
	default:
		return &ValidationError{Message: "customer_type must be one of [DEALER TECHNICIAN BACKOFFICE]"}
	}

	if err != nil {
		return notFoundAs(err, notFound)
	}
	return nil
}

// newRMANumber builds RMA-YYYYMMDD-XXXXXXXX from the filing date and a random uuid
func newRMANumber(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("RMA-%s-%s", at.Format("20060102"), suffix)
}
