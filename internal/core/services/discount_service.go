package services

import (
	"context"
	"time"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/adapters/persistence/repositories"
	"dealerhub/internal/core/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ExpiryDateLayout is the wire format of discount expiry dates
const ExpiryDateLayout = models.DayLayout

var hundred = decimal.NewFromInt(100)

// DiscountService grants dealer specific discounts on products
type DiscountService struct {
	discountRepo repositories.DiscountRepository
	dealerRepo   repositories.DealerRepository
	productRepo  repositories.ProductRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewDiscountService creates a new discount service
func NewDiscountService(
	discountRepo repositories.DiscountRepository,
	dealerRepo repositories.DealerRepository,
	productRepo repositories.ProductRepository,
	logger *zap.Logger,
) *DiscountService {
	return &DiscountService{
		discountRepo: discountRepo,
		dealerRepo:   dealerRepo,
		productRepo:  productRepo,
		logger:       logger,
		now:          timeNow,
	}
}

// AssignDiscountInput represents a discount grant. Only the value matching
// DiscountType is read; the other one is ignored.
type AssignDiscountInput struct {
	DealerID     uint            `json:"dealer_id" validate:"required"`
	ProductID    uint            `json:"product_id" validate:"required"`
	DiscountType string          `json:"discount_type" validate:"required,oneof=PERCENTAGE AMOUNT"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"number"`
	Percentage   decimal.Decimal `json:"percentage" swaggertype:"number"`
	ExpiryDate   string          `json:"expiry_date" validate:"required,datetime=2006-01-02"`
}

// ListDiscountsInput narrows a discount listing
type ListDiscountsInput struct {
	DealerID   *uint
	ActiveOnly bool
}

// Assign binds a discount to a (dealer, product) pair. The value field that
// does not apply to the type is stored as zero. Overlapping discounts on the
// same pair are allowed.
func (s *DiscountService) Assign(ctx context.Context, input *AssignDiscountInput) (*models.Discount, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	discountType := domain.DiscountType(input.DiscountType)
	switch discountType {
	case domain.DiscountPercentage:
		if !input.Percentage.IsPositive() || input.Percentage.GreaterThan(hundred) {
			return nil, &ValidationError{Message: "percentage must be greater than 0 and at most 100"}
		}
	case domain.DiscountAmount:
		if !input.Amount.IsPositive() {
			return nil, &ValidationError{Message: "amount must be greater than 0"}
		}
	}

	expiry, err := models.ParseDay(input.ExpiryDate)
	if err != nil {
		return nil, &ValidationError{Message: "expiry_date must be a date in the format 2006-01-02"}
	}

	dealer, err := s.dealerRepo.GetByID(ctx, input.DealerID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrDealerNotFound)
	}
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrProductNotFound)
	}

	discount := &models.Discount{
		DealerID:     dealer.ID,
		ProductID:    product.ID,
		DiscountType: string(discountType),
		Amount:       decimal.Zero,
		Percentage:   decimal.Zero,
		ExpiryDate:   expiry,
	}
	switch discountType {
	case domain.DiscountPercentage:
		discount.Percentage = input.Percentage.Round(2)
	case domain.DiscountAmount:
		discount.Amount = input.Amount.Round(2)
	}

	if err := s.discountRepo.Create(ctx, discount); err != nil {
		return nil, err
	}
	discount.Dealer = dealer
	discount.Product = product

	s.logger.Info("discount assigned",
		zap.Uint("discount_id", discount.ID),
		zap.Uint("dealer_id", dealer.ID),
		zap.Uint("product_id", product.ID),
		zap.String("type", discount.DiscountType),
	)
	return discount, nil
}

// List lists discounts, optionally for one dealer and only unexpired ones
func (s *DiscountService) List(ctx context.Context, input *ListDiscountsInput) ([]*models.Discount, error) {
	var activeAt *time.Time
	if input.ActiveOnly {
		today := startOfDay(s.now())
		activeAt = &today
	}
	return s.discountRepo.List(ctx, input.DealerID, activeAt)
}

// Get gets a discount by ID
func (s *DiscountService) Get(ctx context.Context, id uint) (*models.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrDiscountNotFound)
	}
	return discount, nil
}

// Delete removes a discount
func (s *DiscountService) Delete(ctx context.Context, id uint) error {
	if err := s.discountRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, domain.ErrDiscountNotFound)
	}
	s.logger.Info("discount deleted", zap.Uint("discount_id", id))
	return nil
}

// PurgeExpired deletes discounts that expired more than retentionDays ago
func (s *DiscountService) PurgeExpired(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays < 0 {
		retentionDays = 0
	}
	cutoff := startOfDay(s.now()).AddDate(0, 0, -retentionDays)

	removed, err := s.discountRepo.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	s.logger.Info("expired discounts purged", zap.Int64("removed", removed), zap.Time("cutoff", cutoff))
	return removed, nil
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
