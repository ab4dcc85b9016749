package config

import (
	"errors"

	"dealerhub/internal/adapters/persistence/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type seedCategory struct {
	name          string
	subcategories []string
}

// starter catalog for development databases
var masterCategories = []seedCategory{
	{name: "Routers", subcategories: []string{"300N Router", "AC1200 Router", "Mesh Wi-Fi"}},
	{name: "Switches", subcategories: []string{"Unmanaged Switch", "Managed Switch", "PoE Switch"}},
	{name: "Access Points", subcategories: []string{"Indoor AP", "Outdoor AP"}},
	{name: "Cables", subcategories: []string{"Cat6 Cable", "Fiber Patch Cord"}},
}

// SeedMasterData seeds the starter categories and subcategories. Existing
// rows are left as they are.
func SeedMasterData(db *gorm.DB) error {
	for _, sc := range masterCategories {
		category, err := firstOrCreateCategory(db, sc.name)
		if err != nil {
			return err
		}

		for _, name := range sc.subcategories {
			var existing models.Subcategory
			err := db.Where("name = ?", name).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			sub := models.Subcategory{Name: name, CategoryID: category.ID}
			if err := db.Omit("Category").Create(&sub).Error; err != nil {
				return err
			}
			zap.L().Debug("   Created subcategory", zap.String("name", name))
		}
	}

	zap.L().Info("✅ Master data seeded successfully")
	return nil
}

func firstOrCreateCategory(db *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	err := db.Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category = models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	zap.L().Debug("   Created category", zap.String("name", name))
	return &category, nil
}
