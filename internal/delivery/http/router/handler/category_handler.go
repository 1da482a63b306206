package handler

import (
	"log/slog"
	"net/http"

	"biblio/internal/delivery/http/response"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category handlers.
type CategoryHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCategories handles the category listing request.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, toCategoryView(category))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetCategory handles the single-category request.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.GetCategory(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryView(category), "")
}

// CreateCategory handles the category creation request.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var input *usecase.CategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCategoryView(category), "Category created successfully")
}

// UpdateCategory handles the category rename request.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.CategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), categoryID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryView(category), "Category updated successfully")
}

// DeleteCategory handles the category deletion request.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}
