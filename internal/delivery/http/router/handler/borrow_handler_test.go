package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBorrowUsecase struct {
	createOut *usecase.CreateBorrowOutput
	createErr error
	returnOut *entity.Borrow
	returnErr error
	listOut   []*entity.Borrow
	listErr   error
	getOut    *entity.Borrow
	getErr    error
}

func (s *stubBorrowUsecase) CreateBorrow(_ context.Context, _ *usecase.CreateBorrowInput) (*usecase.CreateBorrowOutput, error) {
	return s.createOut, s.createErr
}

func (s *stubBorrowUsecase) ReturnBook(_ context.Context, _ uint) (*entity.Borrow, error) {
	return s.returnOut, s.returnErr
}

func (s *stubBorrowUsecase) ListBorrows(_ context.Context) ([]*entity.Borrow, error) {
	return s.listOut, s.listErr
}

func (s *stubBorrowUsecase) GetBorrow(_ context.Context, _ uint) (*entity.Borrow, error) {
	return s.getOut, s.getErr
}

func registerBorrowRoutes(uc usecase.BorrowUsecase) *echo.Echo {
	e := newEchoForTest()
	h := NewBorrowHandler(uc, testLogger())
	e.GET("/borrows", h.ListBorrows)
	e.POST("/borrows", h.CreateBorrow)
	e.GET("/borrows/:id", h.GetBorrow)
	e.POST("/borrows/:id/return", h.ReturnBook)

	return e
}

func TestBorrowHandler_CreateBorrow(t *testing.T) {
	t.Parallel()

	t.Run("created with duration snapshot", func(t *testing.T) {
		t.Parallel()

		borrowedAt := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		e := registerBorrowRoutes(&stubBorrowUsecase{
			createOut: &usecase.CreateBorrowOutput{
				Borrow: &entity.Borrow{
					ID:           10,
					StudentID:    1,
					BookID:       2,
					BorrowedAt:   borrowedAt,
					DurationDays: 11,
				},
				Student:      &usecase.StudentView{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com"},
				DaysBorrowed: 11,
			},
		})

		rec := doJSON(e, http.MethodPost, "/borrows",
			`{"studentId":1,"bookId":2,"borrowedAt":"2024-03-05"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `"daysBorrowed":11`)
		assert.Contains(t, body, `"durationDays":11`)
		assert.Contains(t, body, `"email":"ada@example.com"`)
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()

		e := registerBorrowRoutes(&stubBorrowUsecase{
			createErr: domainerrors.ErrBookNotFound.WrapMessage("borrow creation failed"),
		})

		rec := doJSON(e, http.MethodPost, "/borrows",
			`{"studentId":1,"bookId":99,"borrowedAt":"2024-03-05"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "BOOK_NOT_FOUND")
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		t.Parallel()

		e := registerBorrowRoutes(&stubBorrowUsecase{})

		rec := doJSON(e, http.MethodPost, "/borrows", `{"studentId":1}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	})
}

func TestBorrowHandler_ReturnBook(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		returnedAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
		e := registerBorrowRoutes(&stubBorrowUsecase{
			returnOut: &entity.Borrow{
				ID:           10,
				StudentID:    1,
				BookID:       2,
				BorrowedAt:   returnedAt.AddDate(0, 0, -10),
				ReturnedAt:   &returnedAt,
				DurationDays: 10,
			},
		})

		rec := doJSON(e, http.MethodPost, "/borrows/10/return", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `"returnedAt"`)
		assert.Contains(t, body, `"durationDays":10`)
	})

	t.Run("already returned", func(t *testing.T) {
		t.Parallel()

		e := registerBorrowRoutes(&stubBorrowUsecase{
			returnErr: domainerrors.ErrAlreadyReturned.WrapMessage("return failed"),
		})

		rec := doJSON(e, http.MethodPost, "/borrows/10/return", "")

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "ALREADY_RETURNED")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		t.Parallel()

		e := registerBorrowRoutes(&stubBorrowUsecase{})

		rec := doJSON(e, http.MethodPost, "/borrows/abc/return", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	})
}

func TestBorrowHandler_GetBorrow(t *testing.T) {
	t.Parallel()

	t.Run("unknown borrow", func(t *testing.T) {
		t.Parallel()

		e := registerBorrowRoutes(&stubBorrowUsecase{
			getErr: domainerrors.ErrBorrowNotFound.WrapMessage("borrow lookup failed"),
		})

		rec := doJSON(e, http.MethodGet, "/borrows/404", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "BORROW_NOT_FOUND")
	})
}
