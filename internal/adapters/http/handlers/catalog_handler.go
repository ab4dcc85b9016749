package handlers

import (
	"net/url"
	"strings"

	"dealerhub/internal/core/services"
	"dealerhub/internal/pkg/pagination"
	"dealerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles category, subcategory and product endpoints
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// paramName reads a path segment that carries a display name such as
// "Access Points"
func paramName(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if name, err := url.PathUnescape(raw); err == nil {
		raw = name
	}
	return strings.TrimSpace(raw)
}

// ============================================================
// Categories
// ============================================================

// ListCategories handles listing categories
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories(c.Context())
	if err != nil {
		return handleError(c, err, "Failed to list categories")
	}

	return response.List(c, "Categories retrieved successfully", categories, int64(len(categories)))
}

// GetCategory handles getting a category by ID
// @Summary Get category
// @Tags Catalog
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid category ID")
	}

	category, err := h.catalogService.GetCategory(c.Context(), id)
	if err != nil {
		return handleError(c, err, "Failed to get category")
	}

	return response.Success(c, "Category retrieved successfully", category)
}

// AddCategory handles category creation
// @Summary Add category
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CategoryInput true "Category"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/categories [post]
func (h *CatalogHandler) AddCategory(c *fiber.Ctx) error {
	var req services.CategoryInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	category, err := h.catalogService.AddCategory(c.Context(), &req)
	if err != nil {
		return handleError(c, err, "Failed to add category")
	}

	return response.Created(c, "Category added successfully", category)
}

// UpdateCategory handles category update
// @Summary Update category
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param body body services.UpdateCategoryInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid category ID")
	}

	var req services.UpdateCategoryInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	category, err := h.catalogService.UpdateCategory(c.Context(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to update category")
	}

	return response.Success(c, "Category updated successfully", category)
}

// DeleteCategory handles category deletion
// @Summary Delete category
// @Description Delete the category with its subcategories and products
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid category ID")
	}

	if err := h.catalogService.DeleteCategory(c.Context(), id); err != nil {
		return handleError(c, err, "Failed to delete category")
	}

	return response.Success(c, "Category deleted successfully", nil)
}

// ============================================================
// Subcategories
// ============================================================

// ListSubcategories handles listing subcategories
// @Summary List subcategories
// @Tags Catalog
// @Produce json
// @Param category query string false "Parent category name"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /subcategories [get]
func (h *CatalogHandler) ListSubcategories(c *fiber.Ctx) error {
	subcategories, err := h.catalogService.ListSubcategories(c.Context(), strings.TrimSpace(c.Query("category")))
	if err != nil {
		return handleError(c, err, "Failed to list subcategories")
	}

	return response.List(c, "Subcategories retrieved successfully", subcategories, int64(len(subcategories)))
}

// GetSubcategory handles getting a subcategory by ID
// @Summary Get subcategory
// @Tags Catalog
// @Produce json
// @Param id path int true "Subcategory ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /subcategories/{id} [get]
func (h *CatalogHandler) GetSubcategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid subcategory ID")
	}

	subcategory, err := h.catalogService.GetSubcategory(c.Context(), id)
	if err != nil {
		return handleError(c, err, "Failed to get subcategory")
	}

	return response.Success(c, "Subcategory retrieved successfully", subcategory)
}

// AddSubcategory handles subcategory creation
// @Summary Add subcategory
// @Description The parent category is referenced by name and must exist
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SubcategoryInput true "Subcategory"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/subcategories [post]
func (h *CatalogHandler) AddSubcategory(c *fiber.Ctx) error {
	var req services.SubcategoryInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	subcategory, err := h.catalogService.AddSubcategory(c.Context(), &req)
	if err != nil {
		return handleError(c, err, "Failed to add subcategory")
	}

	return response.Created(c, "Subcategory added successfully", subcategory)
}

// UpdateSubcategory handles subcategory update
// @Summary Update subcategory
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subcategory ID"
// @Param body body services.UpdateSubcategoryInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/subcategories/{id} [put]
func (h *CatalogHandler) UpdateSubcategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid subcategory ID")
	}

	var req services.UpdateSubcategoryInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	subcategory, err := h.catalogService.UpdateSubcategory(c.Context(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to update subcategory")
	}

	return response.Success(c, "Subcategory updated successfully", subcategory)
}

// DeleteSubcategory handles subcategory deletion
// @Summary Delete subcategory
// @Description Delete the subcategory with its products
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subcategory ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/subcategories/{id} [delete]
func (h *CatalogHandler) DeleteSubcategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid subcategory ID")
	}

	if err := h.catalogService.DeleteSubcategory(c.Context(), id); err != nil {
		return handleError(c, err, "Failed to delete subcategory")
	}

	return response.Success(c, "Subcategory deleted successfully", nil)
}

// ============================================================
// Products
// ============================================================

// ListProducts handles listing visible products for the mobile app
// @Summary List products
// @Tags Catalog
// @Produce json
// @Param search query string false "Title or keyword"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	return h.listProducts(c, true)
}

// ListAllProducts handles listing every product including hidden ones
// @Summary List all products
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param search query string false "Title or keyword"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /admin/products [get]
func (h *CatalogHandler) ListAllProducts(c *fiber.Ctx) error {
	return h.listProducts(c, false)
}

func (h *CatalogHandler) listProducts(c *fiber.Ctx, visibleOnly bool) error {
	params := pagination.GetParams(c)

	products, total, err := h.catalogService.ListProducts(c.Context(), &services.ListProductsInput{
		Search:      params.Search,
		VisibleOnly: visibleOnly,
		Page:        params.Page,
		Limit:       params.Limit,
	})
	if err != nil {
		return handleError(c, err, "Failed to list products")
	}

	return response.Page(c, "Products retrieved successfully", products, params, total)
}

// GetProduct handles getting a visible product by ID
// @Summary Get product
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	return h.getProduct(c, true)
}

// GetAnyProduct handles getting a product by ID including hidden ones
// @Summary Get product (admin)
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/products/{id} [get]
func (h *CatalogHandler) GetAnyProduct(c *fiber.Ctx) error {
	return h.getProduct(c, false)
}

func (h *CatalogHandler) getProduct(c *fiber.Ctx, visibleOnly bool) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid product ID")
	}

	product, err := h.catalogService.GetProduct(c.Context(), id, visibleOnly)
	if err != nil {
		return handleError(c, err, "Failed to get product")
	}

	return response.Success(c, "Product retrieved successfully", product)
}

// GetProductsByCategory handles listing products of a category
// @Summary Products by category
// @Description Products placed directly in the category or in any of its subcategories
// @Tags Catalog
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/category/{name} [get]
func (h *CatalogHandler) GetProductsByCategory(c *fiber.Ctx) error {
	products, err := h.catalogService.GetProductsByCategory(c.Context(), paramName(c, "name"), true)
	if err != nil {
		return handleError(c, err, "Failed to get products")
	}

	return response.List(c, "Products retrieved successfully", products, int64(len(products)))
}

// GetProductsBySubcategory handles listing products of a subcategory
// @Summary Products by subcategory
// @Tags Catalog
// @Produce json
// @Param name path string true "Subcategory name"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/subcategory/{name} [get]
func (h *CatalogHandler) GetProductsBySubcategory(c *fiber.Ctx) error {
	products, err := h.catalogService.GetProductsBySubcategory(c.Context(), paramName(c, "name"), true)
	if err != nil {
		return handleError(c, err, "Failed to get products")
	}

	return response.List(c, "Products retrieved successfully", products, int64(len(products)))
}

// AddProduct handles product creation
// @Summary Add product
// @Description Category and subcategory are referenced by name; the subcategory must belong to the category
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ProductInput true "Product"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/products [post]
func (h *CatalogHandler) AddProduct(c *fiber.Ctx) error {
	var req services.ProductInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.catalogService.AddProduct(c.Context(), &req)
	if err != nil {
		return handleError(c, err, "Failed to add product")
	}

	return response.Created(c, "Product added successfully", product)
}

// UpdateProduct handles a partial product update
// @Summary Update product
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param body body services.UpdateProductInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/products/{id} [patch]
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid product ID")
	}

	var req services.UpdateProductInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.catalogService.UpdateProduct(c.Context(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to update product")
	}

	return response.Success(c, "Product updated successfully", product)
}

// DeleteProduct handles product deletion
// @Summary Delete product
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid product ID")
	}

	if err := h.catalogService.DeleteProduct(c.Context(), id); err != nil {
		return handleError(c, err, "Failed to delete product")
	}

	return response.Success(c, "Product deleted successfully", nil)
}
