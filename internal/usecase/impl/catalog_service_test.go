package impl

import (
	"context"
	"testing"

	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/domain/repository"
	"biblio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixture struct {
	service      *catalogService
	bookRepo     *mockBookRepository
	authorRepo   *mockAuthorRepository
	categoryRepo *mockCategoryRepository
	reviewRepo   *mockReviewRepository
}

func newCatalogServiceFixture() *catalogServiceFixture {
	bookRepo := new(mockBookRepository)
	authorRepo := new(mockAuthorRepository)
	categoryRepo := new(mockCategoryRepository)
	reviewRepo := new(mockReviewRepository)

	factory := &stubRepositoryFactory{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
	}

	return &catalogServiceFixture{
		service: &catalogService{
			txManager:    &stubTransactionManager{factory: factory},
			bookRepo:     bookRepo,
			authorRepo:   authorRepo,
			categoryRepo: categoryRepo,
			reviewRepo:   reviewRepo,
			logger:       discardLogger(),
		},
		bookRepo:     bookRepo,
		authorRepo:   authorRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
	}
}

func TestCatalogService_CreateBook(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("reuses an existing author by name", func(t *testing.T) {
		t.Parallel()

		fixture := newCatalogServiceFixture()
		author := &entity.Author{ID: 5, Name: "Mary Shelley"}
		fixture.authorRepo.On("FindByName", ctx, "Mary Shelley").Return(author, nil)
		fixture.bookRepo.On("Create", ctx, mock.AnythingOfType("*entity.Book")).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Book).ID = 3
		}).Return(nil)

		book, err := fixture.service.CreateBook(ctx, &usecase.CreateBookInput{
			Title:       "Frankenstein",
			Author:      usecase.AuthorInput{Name: "Mary Shelley"},
			PublishedAt: "1818-01-01",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(3), book.ID)
		require.NotNil(t, book.AuthorID)
		assert.Equal(t, uint(5), *book.AuthorID)
		assert.Equal(t, author, book.Author)

		fixture.authorRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("creates the author when absent", func(t *testing.T) {
		t.Parallel()

		fixture := newCatalogServiceFixture()
		fixture.authorRepo.On("FindByName", ctx, "Mary Shelley").Return(nil, repository.ErrAuthorNotFound)
		fixture.authorRepo.On("Create", ctx, mock.AnythingOfType("*entity.Author")).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Author).ID = 8
		}).Return(nil)
		fixture.bookRepo.On("Create", ctx, mock.AnythingOfType("*entity.Book")).Return(nil)

		book, err := fixture.service.CreateBook(ctx, &usecase.CreateBookInput{
			Title:       "Frankenstein",
			Author:      usecase.AuthorInput{Name: "Mary Shelley"},
			PublishedAt: "1818-01-01",
		})
		require.NoError(t, err)
		require.NotNil(t, book.AuthorID)
		assert.Equal(t, uint(8), *book.AuthorID)

		fixture.authorRepo.AssertExpectations(t)
	})

	t.Run("malformed publishedAt is rejected", func(t *testing.T) {
		t.Parallel()

		fixture := newCatalogServiceFixture()

		book, err := fixture.service.CreateBook(ctx, &usecase.CreateBookInput{
			Title:       "Frankenstein",
			Author:      usecase.AuthorInput{Name: "Mary Shelley"},
			PublishedAt: "the year without a summer",
		})
		require.Error(t, err)
		assert.Nil(t, book)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		fixture.bookRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_ToggleLike(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("flips the flag", func(t *testing.T) {
		t.Parallel()

		fixture := newCatalogServiceFixture()
		fixture.bookRepo.On("FindByID", ctx, uint(3)).Return(&entity.Book{ID: 3, Liked: false}, nil)
		fixture.bookRepo.On("SetLiked", ctx, uint(3), true).Return(nil)

		book, err := fixture.service.ToggleLike(ctx, 3)
		require.NoError(t, err)
		assert.True(t, book.Liked)

		fixture.bookRepo.AssertExpectations(t)
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()

		fixture := newCatalogServiceFixture()
		fixture.bookRepo.On("FindByID", ctx, uint(404)).Return(nil, repository.ErrBookNotFound)

		_, err := fixture.service.ToggleLike(ctx, 404)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))

		fixture.bookRepo.AssertNotCalled(t, "SetLiked", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCatalogService_Categories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("update reloads the stored record", func(t *testing.T) {
		t.Parallel()

		fixture := newCatalogServiceFixture()
		fixture.categoryRepo.On("Update", ctx, mock.AnythingOfType("*entity.Category")).Return(nil)
		fixture.categoryRepo.On("FindByID", ctx, uint(2)).Return(&entity.Category{ID: 2, Name: "Gothic"}, nil)

		category, err := fixture.service.UpdateCategory(ctx, 2, &usecase.CategoryInput{Name: "Gothic"})
		require.NoError(t, err)
		assert.Equal(t, "Gothic", category.Name)

		fixture.categoryRepo.AssertExpectations(t)
	})

	t.Run("delete unknown category", func(t *testing.T) {
		t.Parallel()

		fixture := newCatalogServiceFixture()
		fixture.categoryRepo.On("Delete", ctx, uint(404)).Return(repository.ErrCategoryNotFound)

		err := fixture.service.DeleteCategory(ctx, 404)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	})
}

func TestCatalogService_CreateReview(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		fixture := newCatalogServiceFixture()
		fixture.bookRepo.On("FindByID", ctx, uint(3)).Return(&entity.Book{ID: 3}, nil)
		fixture.reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Run(func(args mock.Arguments) {
			review := args.Get(1).(*entity.Review)
			assert.Equal(t, uint(9), review.StudentID)
			assert.Equal(t, uint(3), review.BookID)
			review.ID = 1
		}).Return(nil)

		review, err := fixture.service.CreateReview(ctx, 9, 3, &usecase.CreateReviewInput{Content: "haunting", Rating: 5})
		require.NoError(t, err)
		assert.Equal(t, uint(1), review.ID)

		fixture.reviewRepo.AssertExpectations(t)
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()

		fixture := newCatalogServiceFixture()
		fixture.bookRepo.On("FindByID", ctx, uint(404)).Return(nil, repository.ErrBookNotFound)

		_, err := fixture.service.CreateReview(ctx, 9, 404, &usecase.CreateReviewInput{Content: "x", Rating: 1})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))

		fixture.reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
