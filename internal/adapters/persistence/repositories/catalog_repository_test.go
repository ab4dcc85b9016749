package repositories_test

import (
	"context"
	"testing"
	"time"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/adapters/persistence/repositories"
	"dealerhub/internal/pkg/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seed(t *testing.T, db *gorm.DB, values ...interface{}) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, db.Create(v).Error)
	}
}

func TestListByCategoryOrSubcategories(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repositories.NewProductRepository(db)

	routers := &models.Category{Name: "Routers"}
	switches := &models.Category{Name: "Switches"}
	seed(t, db, routers, switches)
	n300 := &models.Subcategory{Name: "300N Router", CategoryID: routers.ID}
	managed := &models.Subcategory{Name: "Managed", CategoryID: switches.ID}
	seed(t, db, n300, managed)

	product := func(title string, category, sub uint) *models.Product {
		return &models.Product{Title: title, Price: decimal.NewFromInt(100), IsVisible: true, CategoryID: category, SubcategoryID: sub}
	}
	seed(t, db,
		product("TP-Link X1", routers.ID, n300.ID),
		product("Legacy Router", routers.ID, managed.ID),
		product("Cisco SG350", switches.ID, managed.ID),
	)

	titles := func(products []*models.Product) []string {
		out := make([]string, 0, len(products))
		for _, p := range products {
			out = append(out, p.Title)
		}
		return out
	}

	t.Run("Union without duplicates", func(t *testing.T) {
		products, err := repo.ListByCategoryOrSubcategories(ctx, &routers.ID, []uint{n300.ID})

		require.NoError(t, err)
		assert.Equal(t, []string{"TP-Link X1", "Legacy Router"}, titles(products))
		require.NotNil(t, products[0].Subcategory)
		assert.Equal(t, "300N Router", products[0].Subcategory.Name)
	})

	t.Run("Subcategories only", func(t *testing.T) {
		products, err := repo.ListByCategoryOrSubcategories(ctx, nil, []uint{managed.ID})

		require.NoError(t, err)
		assert.Equal(t, []string{"Legacy Router", "Cisco SG350"}, titles(products))
	})

	t.Run("Nothing to match", func(t *testing.T) {
		products, err := repo.ListByCategoryOrSubcategories(ctx, nil, nil)

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Search matches keywords", func(t *testing.T) {
		p := product("Archer C6", routers.ID, n300.ID)
		p.Keywords = []string{"dual-band"}
		seed(t, db, p)

		products, total, err := repo.List(ctx, repositories.ProductListParams{Search: "dual-band"})

		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, []string{"Archer C6"}, titles(products))
	})
}

func TestSubcategoryDeleteCascade(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)

	routers := &models.Category{Name: "Routers"}
	seed(t, db, routers)
	n300 := &models.Subcategory{Name: "300N Router", CategoryID: routers.ID}
	mesh := &models.Subcategory{Name: "Mesh", CategoryID: routers.ID}
	seed(t, db, n300, mesh)
	x1 := &models.Product{Title: "TP-Link X1", Price: decimal.NewFromInt(1), IsVisible: true, CategoryID: routers.ID, SubcategoryID: n300.ID}
	deco := &models.Product{Title: "Deco M4", Price: decimal.NewFromInt(1), IsVisible: true, CategoryID: routers.ID, SubcategoryID: mesh.ID}
	seed(t, db, x1, deco)
	dealer := &models.Dealer{FirstName: "Asha", BusinessName: "Rao Networks", GSTIN: "29ABCDE1234F1Z5", Email: "a@example.com", Phone: "9876543210"}
	seed(t, db, dealer)
	seed(t, db,
		&models.Discount{DealerID: dealer.ID, ProductID: x1.ID, DiscountType: "AMOUNT", Amount: decimal.NewFromInt(5), ExpiryDate: models.NewDay(time.Now())},
		&models.Discount{DealerID: dealer.ID, ProductID: deco.ID, DiscountType: "AMOUNT", Amount: decimal.NewFromInt(5), ExpiryDate: models.NewDay(time.Now())},
	)

	require.NoError(t, repositories.NewSubcategoryRepository(db).Delete(ctx, n300.ID))

	var products []models.Product
	require.NoError(t, db.Find(&products).Error)
	require.Len(t, products, 1)
	assert.Equal(t, "Deco M4", products[0].Title)

	var discounts []models.Discount
	require.NoError(t, db.Find(&discounts).Error)
	require.Len(t, discounts, 1)
	assert.Equal(t, deco.ID, discounts[0].ProductID)

	err := repositories.NewSubcategoryRepository(db).Delete(ctx, n300.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDiscountDeleteExpiredBefore(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repositories.NewDiscountRepository(db)

	day := func(s string) time.Time {
		d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
		require.NoError(t, err)
		return d
	}
	for _, expiry := range []string{"2030-01-01", "2030-02-01", "2030-03-01"} {
		require.NoError(t, repo.Create(ctx, &models.Discount{DealerID: 1, ProductID: 1, DiscountType: "AMOUNT", ExpiryDate: models.NewDay(day(expiry))}))
	}

	removed, err := repo.DeleteExpiredBefore(ctx, day("2030-02-01"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	active := day("2030-02-15")
	left, err := repo.List(ctx, nil, &active)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "2030-03-01", left[0].ExpiryDate.String())
}
