package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "biblio/internal/delivery/context"
	"biblio/internal/delivery/http/response"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for book and review handlers.
type BookHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListBooks handles the catalog listing request, with optional search.
func (h *BookHandler) ListBooks(c echo.Context) error {
	books, err := h.uc.ListBooks(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookViews(books), "")
}

// GetBook handles the single-book request.
func (h *BookHandler) GetBook(c echo.Context) error {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	book, err := h.uc.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookView(book), "")
}

// CreateBook handles the book creation request.
func (h *BookHandler) CreateBook(c echo.Context) error {
	var input *usecase.CreateBookInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.uc.CreateBook(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBookView(book), "Book created successfully")
}

// ToggleLike flips the wishlist flag on a book.
func (h *BookHandler) ToggleLike(c echo.Context) error {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	book, err := h.uc.ToggleLike(c.Request().Context(), bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookView(book), "")
}

// CreateReview handles the review creation request. The student identity
// comes from the authenticated token.
func (h *BookHandler) CreateReview(c echo.Context) error {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	studentID, ok := deliverycontext.GetStudentID(c.Request().Context())
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Student identity missing from token")
	}

	var input *usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.CreateReview(c.Request().Context(), studentID, bookID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewView(review), "Review created successfully")
}

// ListReviews handles the review listing request for a book.
func (h *BookHandler) ListReviews(c echo.Context) error {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	reviews, err := h.uc.ListReviews(c.Request().Context(), bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewViews(reviews), "")
}
