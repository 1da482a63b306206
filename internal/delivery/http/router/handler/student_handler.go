package handler

import (
	"log/slog"
	"net/http"

	"biblio/internal/delivery/http/response"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StudentHandler holds dependencies for student-record handlers.
type StudentHandler struct {
	uc     usecase.StudentUsecase
	logger *slog.Logger
}

// NewStudentHandler is the constructor for StudentHandler, injected by Fx.
func NewStudentHandler(uc usecase.StudentUsecase, logger *slog.Logger) *StudentHandler {
	return &StudentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateStudent handles the credential-free student creation request.
func (h *StudentHandler) CreateStudent(c echo.Context) error {
	var input *usecase.CreateStudentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid student input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	student, err := h.uc.CreateStudent(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, student, "Student created successfully")
}

// GetStudent handles the single-student request.
func (h *StudentHandler) GetStudent(c echo.Context) error {
	studentID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	student, err := h.uc.GetStudent(c.Request().Context(), studentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, student, "")
}
