package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "foodcart/internal/errors"
	"foodcart/internal/model"
	"foodcart/internal/repository"
	"foodcart/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductRequest represents a product create request.
type ProductRequest struct {
	Name          string                 `json:"name" validate:"required"`
	Description   string                 `json:"description" validate:"required"`
	Category      model.ProductCategory  `json:"category" validate:"required,oneof=reseller new accessories"`
	Price         int64                  `json:"price" validate:"gte=0"`
	OriginalPrice *int64                 `json:"originalPrice" validate:"omitempty,gte=0"`
	Discount      int                    `json:"discount" validate:"gte=0,lte=100"`
	Condition     model.ProductCondition `json:"condition" validate:"omitempty,oneof=excellent good fair"`
	Images        model.StringList       `json:"images"`
	Features      model.StringList       `json:"features"`
	InStock       *bool                  `json:"inStock"`
}

// ProductUpdateRequest represents a partial product update. Absent fields
// keep their stored values.
type ProductUpdateRequest struct {
	Name          *string                 `json:"name"`
	Description   *string                 `json:"description"`
	Category      *model.ProductCategory  `json:"category" validate:"omitempty,oneof=reseller new accessories"`
	Price         *int64                  `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice *int64                  `json:"originalPrice" validate:"omitempty,gte=0"`
	Discount      *int                    `json:"discount" validate:"omitempty,gte=0,lte=100"`
	Condition     *model.ProductCondition `json:"condition" validate:"omitempty,oneof=excellent good fair"`
	Images        *model.StringList       `json:"images"`
	Features      *model.StringList       `json:"features"`
	InStock       *bool                   `json:"inStock"`
}

// List godoc
// @Summary List products with optional filters
// @Tags products
// @Produce json
// @Param category query string false "Category equality filter"
// @Param minPrice query int false "Inclusive lower price bound"
// @Param maxPrice query int false "Inclusive upper price bound"
// @Param search query string false "Case-insensitive substring match on name"
// @Param condition query string false "Condition equality filter"
// @Success 200 {array} model.Product
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter := repository.ProductFilter{
		Category:  model.ProductCategory(c.QueryParam("category")),
		Search:    c.QueryParam("search"),
		Condition: model.ProductCondition(c.QueryParam("condition")),
		MinPrice:  parsePrice(c.QueryParam("minPrice")),
		MaxPrice:  parsePrice(c.QueryParam("maxPrice")),
	}

	products, err := h.productService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary Get a single product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrProductNotFound
	}

	product, err := h.productService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 403 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	product := &model.Product{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Discount:      req.Discount,
		Condition:     req.Condition,
		Images:        req.Images,
		Features:      req.Features,
		InStock:       inStock,
	}

	if err := h.productService.Create(c.Request().Context(), product); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body ProductUpdateRequest true "Fields to update"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrProductNotFound
	}

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Update(c.Request().Context(), id, service.ProductUpdate{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Discount:      req.Discount,
		Condition:     req.Condition,
		Images:        req.Images,
		Features:      req.Features,
		InStock:       req.InStock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrProductNotFound
	}

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product removed"})
}

// parsePrice parses a price query param. Unparsable values do not constrain,
// same as an absent param.
func parsePrice(v string) *int64 {
	if v == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
