package handler

import (
	"log/slog"
	"net/http"

	"biblio/internal/delivery/http/response"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthorHandler holds dependencies for author handlers.
type AuthorHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewAuthorHandler is the constructor for AuthorHandler, injected by Fx.
func NewAuthorHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *AuthorHandler {
	return &AuthorHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListAuthors handles the author listing request.
func (h *AuthorHandler) ListAuthors(c echo.Context) error {
	authors, err := h.uc.ListAuthors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*AuthorView, 0, len(authors))
	for _, author := range authors {
		views = append(views, toAuthorView(author))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// CreateAuthor handles the author creation request.
func (h *AuthorHandler) CreateAuthor(c echo.Context) error {
	var input *usecase.CreateAuthorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	author, err := h.uc.CreateAuthor(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthorView(author), "Author created successfully")
}

// DeleteAuthor handles the author deletion request. Books referencing the
// author keep their rows with the reference cleared.
func (h *AuthorHandler) DeleteAuthor(c echo.Context) error {
	authorID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteAuthor(c.Request().Context(), authorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Author deleted successfully")
}
