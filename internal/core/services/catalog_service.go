package services

import (
	"context"
	"strings"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/adapters/persistence/repositories"
	"dealerhub/internal/core/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// CatalogService maintains the category > subcategory > product hierarchy
type CatalogService struct {
	categoryRepo    repositories.CategoryRepository
	subcategoryRepo repositories.SubcategoryRepository
	productRepo     repositories.ProductRepository
	logger          *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	categoryRepo repositories.CategoryRepository,
	subcategoryRepo repositories.SubcategoryRepository,
	productRepo repositories.ProductRepository,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		productRepo:     productRepo,
		logger:          logger,
	}
}

// CategoryInput represents create category input
type CategoryInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Image string `json:"image" validate:"omitempty,url"`
}

// UpdateCategoryInput is a partial patch
type UpdateCategoryInput struct {
	Name  *string `json:"name" validate:"omitnil,notblank,max=100"`
	Image *string `json:"image" validate:"omitempty,url"`
}

// SubcategoryInput represents create subcategory input. The parent is named,
// not referenced by id.
type SubcategoryInput struct {
	Name         string `json:"name" validate:"required,max=100"`
	Image        string `json:"image" validate:"omitempty,url"`
	CategoryName string `json:"category_name" validate:"required"`
}

// UpdateSubcategoryInput is a partial patch
type UpdateSubcategoryInput struct {
	Name         *string `json:"name" validate:"omitnil,notblank,max=100"`
	Image        *string `json:"image" validate:"omitempty,url"`
	CategoryName *string `json:"category_name" validate:"omitnil,notblank"`
}

// ProductInput represents create product input
type ProductInput struct {
	Title           string          `json:"title" validate:"required,max=255"`
	Price           decimal.Decimal `json:"price" swaggertype:"number"`
	Quantity        int             `json:"quantity" validate:"gte=0"`
	Warranty        string          `json:"warranty" validate:"max=100"`
	IsVisible       *bool           `json:"is_visible"`
	Keywords        []string        `json:"keywords" validate:"dive,required,max=50"`
	Images          []string        `json:"images" validate:"dive,url"`
	Description     string          `json:"description"`
	CategoryName    string          `json:"category_name" validate:"required"`
	SubcategoryName string          `json:"subcategory_name" validate:"required"`
}

// UpdateProductInput is a partial patch
type UpdateProductInput struct {
	Title           *string          `json:"title" validate:"omitnil,notblank,max=255"`
	Price           *decimal.Decimal `json:"price" swaggertype:"number"`
	Quantity        *int             `json:"quantity" validate:"omitempty,gte=0"`
	Warranty        *string          `json:"warranty" validate:"omitempty,max=100"`
	IsVisible       *bool            `json:"is_visible"`
	Keywords        *[]string        `json:"keywords"`
	Images          *[]string        `json:"images"`
	Description     *string          `json:"description"`
	CategoryName    *string          `json:"category_name" validate:"omitnil,notblank"`
	SubcategoryName *string          `json:"subcategory_name" validate:"omitnil,notblank"`
}

// ListProductsInput represents list products input
type ListProductsInput struct {
	Search      string
	VisibleOnly bool
	Page        int
	Limit       int
}

// ============================================================
// Categories
// ============================================================

// AddCategory creates a category with a unique name
func (s *CatalogService) AddCategory(ctx context.Context, input *CategoryInput) (*models.Category, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	exists, err := s.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCategoryExists
	}

	category := &models.Category{Name: name, Image: strings.TrimSpace(input.Image)}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, duplicateAs(err, domain.ErrCategoryExists)
	}

	s.logger.Info("category created", zap.Uint("category_id", category.ID), zap.String("name", name))
	return category, nil
}

// GetCategory gets a category by ID
func (s *CatalogService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrCategoryNotFound)
	}
	return category, nil
}

// ListCategories lists every category by name
func (s *CatalogService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx)
}

// UpdateCategory applies a partial patch to a category
func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, input *UpdateCategoryInput) (*models.Category, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if v := trimPtr(input.Name); v != nil && *v != category.Name {
		exists, err := s.categoryRepo.ExistsByName(ctx, *v)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrCategoryExists
		}
		category.Name = *v
	}
	if v := trimPtr(input.Image); v != nil {
		category.Image = *v
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, duplicateAs(err, domain.ErrCategoryExists)
	}
	return category, nil
}

// DeleteCategory removes a category with its subcategories and products
func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, domain.ErrCategoryNotFound)
	}

	s.logger.Info("category deleted", zap.Uint("category_id", id))
	return nil
}

// ============================================================
// Subcategories
// ============================================================

// AddSubcategory creates a subcategory under the category named in input
func (s *CatalogService) AddSubcategory(ctx context.Context, input *SubcategoryInput) (*models.Subcategory, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByName(ctx, strings.TrimSpace(input.CategoryName))
	if err != nil {
		return nil, notFoundAs(err, domain.ErrCategoryNotFound)
	}

	name := strings.TrimSpace(input.Name)
	exists, err := s.subcategoryRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrSubcategoryExists
	}

	subcategory := &models.Subcategory{
		Name:       name,
		Image:      strings.TrimSpace(input.Image),
		CategoryID: category.ID,
	}
	if err := s.subcategoryRepo.Create(ctx, subcategory); err != nil {
		return nil, duplicateAs(err, domain.ErrSubcategoryExists)
	}
	subcategory.Category = category

	s.logger.Info("subcategory created",
		zap.Uint("subcategory_id", subcategory.ID),
		zap.String("name", name),
		zap.String("category", category.Name),
	)
	return subcategory, nil
}

// GetSubcategory gets a subcategory by ID
func (s *CatalogService) GetSubcategory(ctx context.Context, id uint) (*models.Subcategory, error) {
	subcategory, err := s.subcategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrSubcategoryNotFound)
	}
	return subcategory, nil
}

// ListSubcategories lists subcategories, optionally of the named category
func (s *CatalogService) ListSubcategories(ctx context.Context, categoryName string) ([]*models.Subcategory, error) {
	categoryName = strings.TrimSpace(categoryName)
	if categoryName == "" {
		return s.subcategoryRepo.List(ctx, nil)
	}

	category, err := s.categoryRepo.GetByName(ctx, categoryName)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrCategoryNotFound)
	}
	return s.subcategoryRepo.List(ctx, &category.ID)
}

// UpdateSubcategory applies a partial patch to a subcategory
func (s *CatalogService) UpdateSubcategory(ctx context.Context, id uint, input *UpdateSubcategoryInput) (*models.Subcategory, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	subcategory, err := s.GetSubcategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if v := trimPtr(input.Name); v != nil && *v != subcategory.Name {
		exists, err := s.subcategoryRepo.ExistsByName(ctx, *v)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrSubcategoryExists
		}
		subcategory.Name = *v
	}
	if v := trimPtr(input.Image); v != nil {
		subcategory.Image = *v
	}
	if v := trimPtr(input.CategoryName); v != nil {
		category, err := s.categoryRepo.GetByName(ctx, *v)
		if err != nil {
			return nil, notFoundAs(err, domain.ErrCategoryNotFound)
		}
		subcategory.CategoryID = category.ID
		subcategory.Category = category
	}

	if err := s.subcategoryRepo.Update(ctx, subcategory); err != nil {
		return nil, duplicateAs(err, domain.ErrSubcategoryExists)
	}
	return subcategory, nil
}

// DeleteSubcategory removes a subcategory with its products
func (s *CatalogService) DeleteSubcategory(ctx context.Context, id uint) error {
	if _, err := s.GetSubcategory(ctx, id); err != nil {
		return err
	}
	if err := s.subcategoryRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, domain.ErrSubcategoryNotFound)
	}

	s.logger.Info("subcategory deleted", zap.Uint("subcategory_id", id))
	return nil
}

// ============================================================
// Products
// ============================================================

// AddProduct creates a product, resolving its category and subcategory by name
func (s *CatalogService) AddProduct(ctx context.Context, input *ProductInput) (*models.Product, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, &ValidationError{Message: "price must be greater than or equal to 0"}
	}

	category, subcategory, err := s.resolvePlacement(ctx, input.CategoryName, input.SubcategoryName)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	exists, err := s.productRepo.ExistsByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrProductExists
	}

	visible := true
	if input.IsVisible != nil {
		visible = *input.IsVisible
	}

	product := &models.Product{
		Title:         title,
		Price:         input.Price.Round(2),
		Quantity:      input.Quantity,
		Warranty:      strings.TrimSpace(input.Warranty),
		IsVisible:     visible,
		Keywords:      datatypes.JSONSlice[string](cleanList(input.Keywords)),
		Images:        datatypes.JSONSlice[string](cleanList(input.Images)),
		Description:   input.Description,
		CategoryID:    category.ID,
		SubcategoryID: subcategory.ID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, duplicateAs(err, domain.ErrProductExists)
	}
	product.Category = category
	product.Subcategory = subcategory

	s.logger.Info("product created", zap.Uint("product_id", product.ID), zap.String("title", title))
	return product, nil
}

// GetProduct gets a product by ID. Hidden products are reported as missing
// when visibleOnly is set.
func (s *CatalogService) GetProduct(ctx context.Context, id uint, visibleOnly bool) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrProductNotFound)
	}
	if visibleOnly && !product.IsVisible {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// ListProducts lists products with pagination and search
func (s *CatalogService) ListProducts(ctx context.Context, input *ListProductsInput) ([]*models.Product, int64, error) {
	params := repositories.ProductListParams{
		Search:      strings.TrimSpace(input.Search),
		VisibleOnly: input.VisibleOnly,
	}
	if input.Limit > 0 {
		page := input.Page
		if page < 1 {
			page = 1
		}
		params.Limit = input.Limit
		params.Offset = (page - 1) * input.Limit
	}
	return s.productRepo.List(ctx, params)
}

// UpdateProduct applies a partial patch to a product
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, input *UpdateProductInput) (*models.Product, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, &ValidationError{Message: "price must be greater than or equal to 0"}
	}

	product, err := s.GetProduct(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if v := trimPtr(input.Title); v != nil && *v != product.Title {
		exists, err := s.productRepo.ExistsByTitle(ctx, *v)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrProductExists
		}
		product.Title = *v
	}
	if input.Price != nil {
		product.Price = input.Price.Round(2)
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if v := trimPtr(input.Warranty); v != nil {
		product.Warranty = *v
	}
	if input.IsVisible != nil {
		product.IsVisible = *input.IsVisible
	}
	if input.Keywords != nil {
		product.Keywords = datatypes.JSONSlice[string](cleanList(*input.Keywords))
	}
	if input.Images != nil {
		product.Images = datatypes.JSONSlice[string](cleanList(*input.Images))
	}
	if input.Description != nil {
		product.Description = *input.Description
	}

	if input.CategoryName != nil || input.SubcategoryName != nil {
		categoryName := product.Category.Name
		if input.CategoryName != nil {
			categoryName = *input.CategoryName
		}
		subcategoryName := product.Subcategory.Name
		if input.SubcategoryName != nil {
			subcategoryName = *input.SubcategoryName
		}

		category, subcategory, err := s.resolvePlacement(ctx, categoryName, subcategoryName)
		if err != nil {
			return nil, err
		}
		product.CategoryID = category.ID
		product.SubcategoryID = subcategory.ID
		product.Category = category
		product.Subcategory = subcategory
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, duplicateAs(err, domain.ErrProductExists)
	}
	return product, nil
}

// DeleteProduct removes a product and the discounts granted on it
func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.GetProduct(ctx, id, false); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, domain.ErrProductNotFound)
	}

	s.logger.Info("product deleted", zap.Uint("product_id", id))
	return nil
}

// GetProductsByCategory returns the products filed under the named category,
// either directly or through any of its subcategories
func (s *CatalogService) GetProductsByCategory(ctx context.Context, name string, visibleOnly bool) ([]*models.Product, error) {
	category, err := s.categoryRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, notFoundAs(err, domain.ErrCategoryNotFound)
	}

	subcategories, err := s.subcategoryRepo.List(ctx, &category.ID)
	if err != nil {
		return nil, err
	}

	subIDs := make([]uint, 0, len(subcategories))
	for _, sub := range subcategories {
		subIDs = append(subIDs, sub.ID)
	}

	products, err := s.productRepo.ListByCategoryOrSubcategories(ctx, &category.ID, subIDs)
	if err != nil {
		return nil, err
	}
	return filterVisible(products, visibleOnly), nil
}

// GetProductsBySubcategory returns the products filed under the named subcategory
func (s *CatalogService) GetProductsBySubcategory(ctx context.Context, name string, visibleOnly bool) ([]*models.Product, error) {
	subcategory, err := s.subcategoryRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, notFoundAs(err, domain.ErrSubcategoryNotFound)
	}

	products, err := s.productRepo.ListByCategoryOrSubcategories(ctx, nil, []uint{subcategory.ID})
	if err != nil {
		return nil, err
	}
	return filterVisible(products, visibleOnly), nil
}

// resolvePlacement looks both names up and checks the subcategory sits under
// the category
func (s *CatalogService) resolvePlacement(ctx context.Context, categoryName, subcategoryName string) (*models.Category, *models.Subcategory, error) {
	category, err := s.categoryRepo.GetByName(ctx, strings.TrimSpace(categoryName))
	if err != nil {
		return nil, nil, notFoundAs(err, domain.ErrCategoryNotFound)
	}
	subcategory, err := s.subcategoryRepo.GetByName(ctx, strings.TrimSpace(subcategoryName))
	if err != nil {
		return nil, nil, notFoundAs(err, domain.ErrSubcategoryNotFound)
	}
	if subcategory.CategoryID != category.ID {
		return nil, nil, domain.ErrSubcategoryMismatch
	}
	return category, subcategory, nil
}

func filterVisible(products []*models.Product, visibleOnly bool) []*models.Product {
	if !visibleOnly {
		return products
	}
	visible := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if p.IsVisible {
			visible = append(visible, p)
		}
	}
	return visible
}

// cleanList trims entries and drops blanks
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}
