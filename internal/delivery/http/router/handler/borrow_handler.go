package handler

import (
	"log/slog"
	"net/http"

	"biblio/internal/delivery/http/response"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BorrowHandler holds dependencies for borrow-record handlers.
type BorrowHandler struct {
	uc     usecase.BorrowUsecase
	logger *slog.Logger
}

// NewBorrowHandler is the constructor for BorrowHandler, injected by Fx.
func NewBorrowHandler(uc usecase.BorrowUsecase, logger *slog.Logger) *BorrowHandler {
	return &BorrowHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateBorrow handles the borrow creation request.
func (h *BorrowHandler) CreateBorrow(c echo.Context) error {
	var input *usecase.CreateBorrowInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid borrow input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateBorrow(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"borrow":       toBorrowView(output.Borrow),
		"student":      output.Student,
		"daysBorrowed": output.DaysBorrowed,
	}, "Borrow record created successfully")
}

// ReturnBook handles the return transition for a borrow record.
func (h *BorrowHandler) ReturnBook(c echo.Context) error {
	borrowID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	borrow, err := h.uc.ReturnBook(c.Request().Context(), borrowID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBorrowView(borrow), "Book returned successfully")
}

// ListBorrows handles the borrow listing request.
func (h *BorrowHandler) ListBorrows(c echo.Context) error {
	borrows, err := h.uc.ListBorrows(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBorrowViews(borrows), "")
}

// GetBorrow handles the single borrow-record request.
func (h *BorrowHandler) GetBorrow(c echo.Context) error {
	borrowID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	borrow, err := h.uc.GetBorrow(c.Request().Context(), borrowID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBorrowView(borrow), "")
}
