package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"biblio/internal/delivery/http/middleware"
	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/domain/service"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogUsecase struct {
	books     []*entity.Book
	book      *entity.Book
	bookErr   error
	review    *entity.Review
	reviewErr error

	createdReviewStudentID uint
}

func (s *stubCatalogUsecase) ListBooks(_ context.Context, _ string) ([]*entity.Book, error) {
	return s.books, nil
}

func (s *stubCatalogUsecase) GetBook(_ context.Context, _ uint) (*entity.Book, error) {
	return s.book, s.bookErr
}

func (s *stubCatalogUsecase) CreateBook(_ context.Context, _ *usecase.CreateBookInput) (*entity.Book, error) {
	return s.book, s.bookErr
}

func (s *stubCatalogUsecase) ToggleLike(_ context.Context, _ uint) (*entity.Book, error) {
	return s.book, s.bookErr
}

func (s *stubCatalogUsecase) ListAuthors(_ context.Context) ([]*entity.Author, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) CreateAuthor(_ context.Context, _ *usecase.CreateAuthorInput) (*entity.Author, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) DeleteAuthor(_ context.Context, _ uint) error {
	return nil
}

func (s *stubCatalogUsecase) ListCategories(_ context.Context) ([]*entity.Category, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) GetCategory(_ context.Context, _ uint) (*entity.Category, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) CreateCategory(_ context.Context, _ *usecase.CategoryInput) (*entity.Category, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) UpdateCategory(_ context.Context, _ uint, _ *usecase.CategoryInput) (*entity.Category, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) DeleteCategory(_ context.Context, _ uint) error {
	return nil
}

func (s *stubCatalogUsecase) CreateReview(_ context.Context, studentID, _ uint, _ *usecase.CreateReviewInput) (*entity.Review, error) {
	s.createdReviewStudentID = studentID

	return s.review, s.reviewErr
}

func (s *stubCatalogUsecase) ListReviews(_ context.Context, _ uint) ([]*entity.Review, error) {
	return nil, nil
}

// stubTokenService accepts exactly one token string.
type stubTokenService struct {
	validToken string
	studentID  uint
}

func (s *stubTokenService) Generate(_ uint) (string, error) {
	return s.validToken, nil
}

func (s *stubTokenService) Validate(tokenString string) (*service.Claims, error) {
	if tokenString != s.validToken {
		return nil, errors.New("token is invalid")
	}

	return &service.Claims{StudentID: s.studentID}, nil
}

func registerBookRoutes(uc usecase.CatalogUsecase, tokenSvc service.TokenService) *echo.Echo {
	e := newEchoForTest()
	h := NewBookHandler(uc, testLogger())
	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)
	e.GET("/books", h.ListBooks)
	e.GET("/books/:id", h.GetBook)
	e.POST("/books/:id/toggle-like", h.ToggleLike)
	e.POST("/books/:id/reviews", h.CreateReview, authMiddleware.Authenticate)

	return e
}

func TestBookHandler_GetBook(t *testing.T) {
	t.Parallel()

	t.Run("includes author and borrow history", func(t *testing.T) {
		t.Parallel()

		authorID := uint(5)
		e := registerBookRoutes(&stubCatalogUsecase{
			book: &entity.Book{
				ID:       3,
				Title:    "Frankenstein",
				AuthorID: &authorID,
				Author:   &entity.Author{ID: 5, Name: "Mary Shelley"},
				Borrows: []*entity.Borrow{
					{ID: 10, StudentID: 1, BookID: 3, BorrowedAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), DurationDays: 11},
				},
			},
		}, &stubTokenService{})

		rec := doJSON(e, http.MethodGet, "/books/3", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `"title":"Frankenstein"`)
		assert.Contains(t, body, `"name":"Mary Shelley"`)
		assert.Contains(t, body, `"durationDays":11`)
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()

		e := registerBookRoutes(&stubCatalogUsecase{
			bookErr: domainerrors.ErrBookNotFound.WrapMessage("book lookup failed"),
		}, &stubTokenService{})

		rec := doJSON(e, http.MethodGet, "/books/404", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "BOOK_NOT_FOUND")
	})
}

func TestBookHandler_CreateReview(t *testing.T) {
	t.Parallel()

	tokenSvc := &stubTokenService{validToken: "good-token", studentID: 9}

	t.Run("authenticated student from token", func(t *testing.T) {
		t.Parallel()

		uc := &stubCatalogUsecase{
			review: &entity.Review{ID: 1, StudentID: 9, BookID: 3, Content: "haunting", Rating: 5},
		}
		e := registerBookRoutes(uc, tokenSvc)

		req := httptest.NewRequest(http.MethodPost, "/books/3/reviews",
			strings.NewReader(`{"content":"haunting","rating":5}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, uint(9), uc.createdReviewStudentID)
		assert.Contains(t, rec.Body.String(), `"rating":5`)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		e := registerBookRoutes(&stubCatalogUsecase{}, tokenSvc)

		rec := doJSON(e, http.MethodPost, "/books/3/reviews", `{"content":"haunting","rating":5}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})

	t.Run("bad token", func(t *testing.T) {
		t.Parallel()

		e := registerBookRoutes(&stubCatalogUsecase{}, tokenSvc)

		req := httptest.NewRequest(http.MethodPost, "/books/3/reviews",
			strings.NewReader(`{"content":"haunting","rating":5}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("Authorization", "Bearer forged-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rating out of range fails validation", func(t *testing.T) {
		t.Parallel()

		e := registerBookRoutes(&stubCatalogUsecase{}, tokenSvc)

		req := httptest.NewRequest(http.MethodPost, "/books/3/reviews",
			strings.NewReader(`{"content":"meh","rating":6}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	})
}
