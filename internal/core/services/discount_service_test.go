package services

import (
	"context"
	"testing"
	"time"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedClock(date string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse(time.RFC3339, date+"T15:30:00Z")
		return t
	}
}

func TestDiscountAssign(t *testing.T) {
	ctx := context.Background()

	t.Run("Percentage zeroes the amount", func(t *testing.T) {
		f := newFixture(t, nil)
		dealer := f.registerDealer(t, 1)
		product, _ := f.seedCatalog(t)

		discount, err := f.discounts.Assign(ctx, &AssignDiscountInput{
			DealerID:     dealer.ID,
			ProductID:    product.ID,
			DiscountType: "PERCENTAGE",
			Percentage:   decimal.NewFromInt(10),
			Amount:       decimal.NewFromInt(500),
			ExpiryDate:   "2030-06-30",
		})
		require.NoError(t, err)

		stored, err := f.discounts.Get(ctx, discount.ID)
		require.NoError(t, err)
		assert.Equal(t, "PERCENTAGE", stored.DiscountType)
		assert.True(t, stored.Percentage.Equal(decimal.NewFromInt(10)))
		assert.True(t, stored.Amount.IsZero())
		assert.Equal(t, "2030-06-30", stored.ExpiryDate.String())
		require.NotNil(t, stored.Product)
		assert.Equal(t, "TP-Link X1", stored.Product.Title)
	})

	t.Run("Amount zeroes the percentage", func(t *testing.T) {
		f := newFixture(t, nil)
		dealer := f.registerDealer(t, 1)
		product, _ := f.seedCatalog(t)

		discount, err := f.discounts.Assign(ctx, &AssignDiscountInput{
			DealerID:     dealer.ID,
			ProductID:    product.ID,
			DiscountType: "AMOUNT",
			Amount:       decimal.RequireFromString("250.75"),
			Percentage:   decimal.NewFromInt(20),
			ExpiryDate:   "2030-06-30",
		})

		require.NoError(t, err)
		assert.True(t, discount.Amount.Equal(decimal.RequireFromString("250.75")))
		assert.True(t, discount.Percentage.IsZero())
	})

	t.Run("Overlapping grants allowed", func(t *testing.T) {
		f := newFixture(t, nil)
		dealer := f.registerDealer(t, 1)
		product, _ := f.seedCatalog(t)

		for i := 0; i < 2; i++ {
			_, err := f.discounts.Assign(ctx, &AssignDiscountInput{
				DealerID:     dealer.ID,
				ProductID:    product.ID,
				DiscountType: "AMOUNT",
				Amount:       decimal.NewFromInt(100),
				ExpiryDate:   "2030-06-30",
			})
			require.NoError(t, err)
		}

		discounts, err := f.discounts.List(ctx, &ListDiscountsInput{DealerID: &dealer.ID})
		require.NoError(t, err)
		assert.Len(t, discounts, 2)
	})

	tests := []struct {
		name  string
		input AssignDiscountInput
		want  error
	}{
		{
			name:  "Unknown type",
			input: AssignDiscountInput{DealerID: 1, ProductID: 1, DiscountType: "BOGO", ExpiryDate: "2030-01-01"},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "Percentage above 100",
			input: AssignDiscountInput{DealerID: 1, ProductID: 1, DiscountType: "PERCENTAGE", Percentage: decimal.NewFromInt(101), ExpiryDate: "2030-01-01"},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "Zero amount",
			input: AssignDiscountInput{DealerID: 1, ProductID: 1, DiscountType: "AMOUNT", ExpiryDate: "2030-01-01"},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "Bad date",
			input: AssignDiscountInput{DealerID: 1, ProductID: 1, DiscountType: "AMOUNT", Amount: decimal.NewFromInt(5), ExpiryDate: "30/01/2030"},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "Unknown dealer",
			input: AssignDiscountInput{DealerID: 42, ProductID: 1, DiscountType: "AMOUNT", Amount: decimal.NewFromInt(5), ExpiryDate: "2030-01-01"},
			want:  domain.ErrDealerNotFound,
		},
		{
			name:  "Unknown product",
			input: AssignDiscountInput{DealerID: 1, ProductID: 42, DiscountType: "AMOUNT", Amount: decimal.NewFromInt(5), ExpiryDate: "2030-01-01"},
			want:  domain.ErrProductNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.registerDealer(t, 1)
			f.seedCatalog(t)
			input := tt.input

			_, err := f.discounts.Assign(ctx, &input)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDiscountActiveAndPurge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	f.discounts.now = fixedClock("2030-03-15")

	dealer := f.registerDealer(t, 1)
	other := f.registerDealer(t, 2)
	product, _ := f.seedCatalog(t)

	grant := func(dealerID uint, expiry string) {
		_, err := f.discounts.Assign(ctx, &AssignDiscountInput{
			DealerID:     dealerID,
			ProductID:    product.ID,
			DiscountType: "AMOUNT",
			Amount:       decimal.NewFromInt(10),
			ExpiryDate:   expiry,
		})
		require.NoError(t, err)
	}
	grant(dealer.ID, "2030-01-01")
	grant(dealer.ID, "2030-03-01")
	grant(dealer.ID, "2030-03-15")
	grant(other.ID, "2030-12-31")

	t.Run("Expiry day is still active", func(t *testing.T) {
		active, err := f.discounts.List(ctx, &ListDiscountsInput{DealerID: &dealer.ID, ActiveOnly: true})

		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "2030-03-15", active[0].ExpiryDate.String())
	})

	t.Run("All dealers", func(t *testing.T) {
		all, err := f.discounts.List(ctx, &ListDiscountsInput{})

		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("Purge honours retention", func(t *testing.T) {
		removed, err := f.discounts.PurgeExpired(ctx, 30)
		require.NoError(t, err)
		assert.EqualValues(t, 1, removed)

		removed, err = f.discounts.PurgeExpired(ctx, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, removed)

		var left int64
		require.NoError(t, f.db.Model(&models.Discount{}).Count(&left).Error)
		assert.EqualValues(t, 2, left)
	})
}

func TestDiscountDelete(t *testing.T) {
	f := newFixture(t, nil)

	err := f.discounts.Delete(context.Background(), 3)

	assert.ErrorIs(t, err, domain.ErrDiscountNotFound)
}

func TestCronSweep(t *testing.T) {
	f := newFixture(t, nil)
	f.discounts.now = fixedClock("2031-01-01")

	dealer := f.registerDealer(t, 1)
	product, _ := f.seedCatalog(t)
	_, err := f.discounts.Assign(context.Background(), &AssignDiscountInput{
		DealerID:     dealer.ID,
		ProductID:    product.ID,
		DiscountType: "PERCENTAGE",
		Percentage:   decimal.NewFromInt(15),
		ExpiryDate:   "2030-01-01",
	})
	require.NoError(t, err)

	cron := NewCronService(f.discounts, "@daily", 7, zap.NewNop())
	cron.SweepExpiredDiscounts()

	var left int64
	require.NoError(t, f.db.Model(&models.Discount{}).Count(&left).Error)
	assert.Zero(t, left)

	t.Run("Bad schedule", func(t *testing.T) {
		err := NewCronService(f.discounts, "every tuesday", 7, zap.NewNop()).Start()

		assert.Error(t, err)
	})
}
