package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-api/internal/api/metrics"
	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
)

// CategoryHandler handles the category endpoints. Listing requires any
// authenticated user; writes are admin-only (enforced in the router).
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

type updateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
	Code *string `json:"code" validate:"omitempty,min=1"`
}

type categoryResponse struct {
	Category *domain.Category `json:"category"`
}

type categoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// List returns every category.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  categoriesResponse
// @Failure      401  {object}  map[string]string
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoriesResponse{Categories: categories})
}

// Get returns one category by ID.
//
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Category ID"
// @Success      200  {object}  categoryResponse
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryResponse{Category: category})
}

// Create stores a new category.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.Create(c.Request().Context(), ports.CreateCategoryInput{
		Name: req.Name,
		Code: req.Code,
	})
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("category", "create").Inc()
	return c.JSON(http.StatusCreated, categoryResponse{Category: category})
}

// Update applies a partial update to a category.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Category ID"
// @Param        body  body      updateCategoryRequest  true  "Fields to update"
// @Success      200   {object}  categoryResponse
// @Failure      404   {object}  map[string]string
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateCategoryInput{
		Name: req.Name,
		Code: req.Code,
	})
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("category", "update").Inc()
	return c.JSON(http.StatusOK, categoryResponse{Category: category})
}

// Delete removes a category by ID.
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Category ID"
// @Success      200  {object}  categoryResponse
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	category, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("category", "delete").Inc()
	return c.JSON(http.StatusOK, categoryResponse{Category: category})
}
