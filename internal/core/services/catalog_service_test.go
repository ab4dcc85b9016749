package services

import (
	"context"
	"testing"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productTitles(products []*models.Product) []string {
	titles := make([]string, 0, len(products))
	for _, p := range products {
		titles = append(titles, p.Title)
	}
	return titles
}

func TestCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Unique name", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.catalog.AddCategory(ctx, &CategoryInput{Name: "Routers"})
		require.NoError(t, err)

		_, err = f.catalog.AddCategory(ctx, &CategoryInput{Name: " Routers "})

		assert.ErrorIs(t, err, domain.ErrCategoryExists)
	})

	t.Run("Blank name", func(t *testing.T) {
		f := newFixture(t, nil)

		_, err := f.catalog.AddCategory(ctx, &CategoryInput{Name: "   "})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		var count int64
		require.NoError(t, f.db.Model(&models.Category{}).Count(&count).Error)
		assert.Zero(t, count)

		category, err := f.catalog.AddCategory(ctx, &CategoryInput{Name: "Routers"})
		require.NoError(t, err)
		blank := " "
		_, err = f.catalog.UpdateCategory(ctx, category.ID, &UpdateCategoryInput{Name: &blank})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = f.catalog.AddSubcategory(ctx, &SubcategoryInput{Name: "\n", CategoryName: "Routers"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Listed by name", func(t *testing.T) {
		f := newFixture(t, nil)
		for _, name := range []string{"Switches", "Cables", "Routers"} {
			_, err := f.catalog.AddCategory(ctx, &CategoryInput{Name: name})
			require.NoError(t, err)
		}

		categories, err := f.catalog.ListCategories(ctx)

		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, "Cables", categories[0].Name)
		assert.Equal(t, "Switches", categories[2].Name)
	})

	t.Run("Rename", func(t *testing.T) {
		f := newFixture(t, nil)
		category, err := f.catalog.AddCategory(ctx, &CategoryInput{Name: "Routers"})
		require.NoError(t, err)
		_, err = f.catalog.AddCategory(ctx, &CategoryInput{Name: "Switches"})
		require.NoError(t, err)

		taken := "Switches"
		_, err = f.catalog.UpdateCategory(ctx, category.ID, &UpdateCategoryInput{Name: &taken})
		assert.ErrorIs(t, err, domain.ErrCategoryExists)

		name := "Wireless Routers"
		updated, err := f.catalog.UpdateCategory(ctx, category.ID, &UpdateCategoryInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Wireless Routers", updated.Name)
	})

	t.Run("Delete cascades", func(t *testing.T) {
		f := newFixture(t, nil)
		dealer := f.registerDealer(t, 1)
		product, _ := f.seedCatalog(t)
		_, err := f.discounts.Assign(ctx, &AssignDiscountInput{
			DealerID:     dealer.ID,
			ProductID:    product.ID,
			DiscountType: string(domain.DiscountPercentage),
			Percentage:   decimal.NewFromInt(5),
			ExpiryDate:   "2030-01-01",
		})
		require.NoError(t, err)

		category, err := f.catalog.categoryRepo.GetByName(ctx, "Routers")
		require.NoError(t, err)
		require.NoError(t, f.catalog.DeleteCategory(ctx, category.ID))

		for _, model := range []interface{}{&models.Subcategory{}, &models.Product{}, &models.Discount{}} {
			var count int64
			require.NoError(t, f.db.Model(model).Count(&count).Error)
			assert.Zero(t, count)
		}
	})

	t.Run("Delete missing", func(t *testing.T) {
		f := newFixture(t, nil)

		err := f.catalog.DeleteCategory(ctx, 7)

		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})
}

func TestSubcategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown parent creates nothing", func(t *testing.T) {
		f := newFixture(t, nil)

		_, err := f.catalog.AddSubcategory(ctx, &SubcategoryInput{Name: "300N Router", CategoryName: "Routers"})

		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
		var count int64
		require.NoError(t, f.db.Model(&models.Subcategory{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("Filtered by category", func(t *testing.T) {
		f := newFixture(t, nil)
		for _, name := range []string{"Routers", "Switches"} {
			_, err := f.catalog.AddCategory(ctx, &CategoryInput{Name: name})
			require.NoError(t, err)
		}
		_, err := f.catalog.AddSubcategory(ctx, &SubcategoryInput{Name: "300N Router", CategoryName: "Routers"})
		require.NoError(t, err)
		_, err = f.catalog.AddSubcategory(ctx, &SubcategoryInput{Name: "Managed", CategoryName: "Switches"})
		require.NoError(t, err)

		all, err := f.catalog.ListSubcategories(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 2)

		routers, err := f.catalog.ListSubcategories(ctx, "Routers")
		require.NoError(t, err)
		require.Len(t, routers, 1)
		assert.Equal(t, "300N Router", routers[0].Name)
		require.NotNil(t, routers[0].Category)
		assert.Equal(t, "Routers", routers[0].Category.Name)

		_, err = f.catalog.ListSubcategories(ctx, "Cables")
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})

	t.Run("Move to another category", func(t *testing.T) {
		f := newFixture(t, nil)
		f.seedCatalog(t)
		_, err := f.catalog.AddCategory(ctx, &CategoryInput{Name: "Wireless"})
		require.NoError(t, err)
		sub, err := f.catalog.subcategoryRepo.GetByName(ctx, "300N Router")
		require.NoError(t, err)

		target := "Wireless"
		moved, err := f.catalog.UpdateSubcategory(ctx, sub.ID, &UpdateSubcategoryInput{CategoryName: &target})

		require.NoError(t, err)
		assert.Equal(t, "Wireless", moved.Category.Name)
	})
}

func TestProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults", func(t *testing.T) {
		f := newFixture(t, nil)
		product, _ := f.seedCatalog(t)

		assert.True(t, product.IsVisible)
		assert.True(t, product.Price.Equal(decimal.RequireFromString("1499.5")))
		assert.Equal(t, []string{"wifi", "router"}, []string(product.Keywords))
		assert.Equal(t, "Routers", product.Category.Name)
		assert.Equal(t, "300N Router", product.Subcategory.Name)
	})

	t.Run("Duplicate title", func(t *testing.T) {
		f := newFixture(t, nil)
		f.seedCatalog(t)

		_, err := f.catalog.AddProduct(ctx, &ProductInput{
			Title:           "TP-Link X1",
			Price:           decimal.NewFromInt(1),
			CategoryName:    "Routers",
			SubcategoryName: "300N Router",
		})

		assert.ErrorIs(t, err, domain.ErrProductExists)
		var count int64
		require.NoError(t, f.db.Model(&models.Product{}).Count(&count).Error)
		assert.EqualValues(t, 2, count)
	})

	t.Run("Blank title", func(t *testing.T) {
		f := newFixture(t, nil)
		x1, _ := f.seedCatalog(t)

		_, err := f.catalog.AddProduct(ctx, &ProductInput{
			Title:           "   ",
			Price:           decimal.NewFromInt(1),
			CategoryName:    "Routers",
			SubcategoryName: "300N Router",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		blank := ""
		_, err = f.catalog.UpdateProduct(ctx, x1.ID, &UpdateProductInput{Title: &blank})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		var count int64
		require.NoError(t, f.db.Model(&models.Product{}).Where("title = ?", "").Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("Negative price", func(t *testing.T) {
		f := newFixture(t, nil)
		f.seedCatalog(t)

		_, err := f.catalog.AddProduct(ctx, &ProductInput{
			Title:           "Broken",
			Price:           decimal.NewFromInt(-1),
			CategoryName:    "Routers",
			SubcategoryName: "300N Router",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Subcategory outside category", func(t *testing.T) {
		f := newFixture(t, nil)
		f.seedCatalog(t)
		_, err := f.catalog.AddCategory(ctx, &CategoryInput{Name: "Switches"})
		require.NoError(t, err)

		_, err = f.catalog.AddProduct(ctx, &ProductInput{
			Title:           "Misfiled",
			Price:           decimal.NewFromInt(10),
			CategoryName:    "Switches",
			SubcategoryName: "300N Router",
		})

		assert.ErrorIs(t, err, domain.ErrSubcategoryMismatch)
	})

	t.Run("Hidden products", func(t *testing.T) {
		f := newFixture(t, nil)
		x1, _ := f.seedCatalog(t)
		hidden := false
		_, err := f.catalog.UpdateProduct(ctx, x1.ID, &UpdateProductInput{IsVisible: &hidden})
		require.NoError(t, err)

		_, err = f.catalog.GetProduct(ctx, x1.ID, true)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)

		got, err := f.catalog.GetProduct(ctx, x1.ID, false)
		require.NoError(t, err)
		assert.False(t, got.IsVisible)

		visible, total, err := f.catalog.ListProducts(ctx, &ListProductsInput{VisibleOnly: true})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, []string{"Netgear N300"}, productTitles(visible))

		byCategory, err := f.catalog.GetProductsByCategory(ctx, "Routers", true)
		require.NoError(t, err)
		assert.Equal(t, []string{"Netgear N300"}, productTitles(byCategory))
	})

	t.Run("Search and paging", func(t *testing.T) {
		f := newFixture(t, nil)
		f.seedCatalog(t)

		found, total, err := f.catalog.ListProducts(ctx, &ListProductsInput{Search: "wifi"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, []string{"TP-Link X1"}, productTitles(found))

		page, total, err := f.catalog.ListProducts(ctx, &ListProductsInput{Page: 2, Limit: 1})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Equal(t, []string{"Netgear N300"}, productTitles(page))
	})

	t.Run("Patch keeps untouched fields", func(t *testing.T) {
		f := newFixture(t, nil)
		x1, _ := f.seedCatalog(t)
		price := decimal.RequireFromString("1299.999")

		updated, err := f.catalog.UpdateProduct(ctx, x1.ID, &UpdateProductInput{Price: &price})

		require.NoError(t, err)
		assert.True(t, updated.Price.Equal(decimal.NewFromInt(1300)))
		assert.Equal(t, 10, updated.Quantity)
		assert.Equal(t, "TP-Link X1", updated.Title)
	})

	t.Run("Delete missing", func(t *testing.T) {
		f := newFixture(t, nil)

		err := f.catalog.DeleteProduct(ctx, 1)

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestProductsByPlacement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	f.seedCatalog(t)

	_, err := f.catalog.AddSubcategory(ctx, &SubcategoryInput{Name: "Mesh", CategoryName: "Routers"})
	require.NoError(t, err)
	_, err = f.catalog.AddProduct(ctx, &ProductInput{
		Title:           "Deco M4",
		Price:           decimal.NewFromInt(4999),
		CategoryName:    "Routers",
		SubcategoryName: "Mesh",
	})
	require.NoError(t, err)

	t.Run("Category includes every subcategory once", func(t *testing.T) {
		products, err := f.catalog.GetProductsByCategory(ctx, "Routers", false)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"TP-Link X1", "Netgear N300", "Deco M4"}, productTitles(products))
	})

	t.Run("Subcategory only", func(t *testing.T) {
		products, err := f.catalog.GetProductsBySubcategory(ctx, "300N Router", false)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"TP-Link X1", "Netgear N300"}, productTitles(products))
	})

	t.Run("Unknown names", func(t *testing.T) {
		_, err := f.catalog.GetProductsByCategory(ctx, "Modems", false)
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

		_, err = f.catalog.GetProductsBySubcategory(ctx, "Modems", false)
		assert.ErrorIs(t, err, domain.ErrSubcategoryNotFound)
	})
}
