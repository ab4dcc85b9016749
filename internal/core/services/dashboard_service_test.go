package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminDashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	dealer := f.registerDealer(t, 1)
	f.registerDealer(t, 2)
	_, err := f.dealers.Approve(ctx, dealer.ID)
	require.NoError(t, err)

	tech, err := f.technicians.Create(ctx, dealer.ID, subAccountInput("tech@example.com"))
	require.NoError(t, err)
	_, err = f.technicians.MarkPassed(ctx, dealer.ID, tech.ID)
	require.NoError(t, err)
	_, err = f.backOffice.Create(ctx, dealer.ID, subAccountInput("office@example.com"))
	require.NoError(t, err)

	x1, _ := f.seedCatalog(t)
	hidden := false
	_, err = f.catalog.UpdateProduct(ctx, x1.ID, &UpdateProductInput{IsVisible: &hidden})
	require.NoError(t, err)

	for _, expiry := range []string{"2000-01-01", "2099-01-01"} {
		_, err = f.discounts.Assign(ctx, &AssignDiscountInput{
			DealerID:     dealer.ID,
			ProductID:    x1.ID,
			DiscountType: "AMOUNT",
			Amount:       decimal.NewFromInt(20),
			ExpiryDate:   expiry,
		})
		require.NoError(t, err)
	}

	rma, err := f.rma.File(ctx, &FileRMAInput{CustomerType: "DEALER", CustomerID: dealer.ID, ProductName: "TP-Link X1", Reason: "No power"})
	require.NoError(t, err)
	_, err = f.rma.Accept(ctx, rma.ID)
	require.NoError(t, err)

	data, err := NewDashboardService(f.db).GetAdminDashboard(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 2, data.TotalDealers)
	assert.EqualValues(t, 1, data.ApprovedDealers)
	assert.EqualValues(t, 1, data.PendingDealers)
	assert.EqualValues(t, 0, data.Distributors)
	assert.EqualValues(t, 1, data.TotalTechnicians)
	assert.EqualValues(t, 1, data.PassedTechnicians)
	assert.EqualValues(t, 1, data.TotalBackOffice)
	assert.EqualValues(t, 2, data.PendingSubAccounts)
	assert.EqualValues(t, 1, data.TotalCategories)
	assert.EqualValues(t, 1, data.TotalSubcategories)
	assert.EqualValues(t, 2, data.TotalProducts)
	assert.EqualValues(t, 1, data.HiddenProducts)
	assert.EqualValues(t, 1, data.ActiveDiscounts)
	assert.EqualValues(t, 0, data.PublishedCourses)
	assert.Equal(t, map[string]int64{"PENDING": 0, "ACCEPTED": 1, "REJECTED": 0, "RESOLVED": 0}, data.RMAByStatus)
}
