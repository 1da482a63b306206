package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "biblio/internal/delivery/context"
	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/domain/repository"
	"biblio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager    repository.TransactionManager
	bookRepo     repository.BookRepository
	authorRepo   repository.AuthorRepository
	categoryRepo repository.CategoryRepository
	reviewRepo   repository.ReviewRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BookRepo     repository.BookRepository
	AuthorRepo   repository.AuthorRepository
	CategoryRepo repository.CategoryRepository
	ReviewRepo   repository.ReviewRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		bookRepo:     params.BookRepo,
		authorRepo:   params.AuthorRepo,
		categoryRepo: params.CategoryRepo,
		reviewRepo:   params.ReviewRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Books ---

// ListBooks retrieves the catalog, optionally filtered by a search term
// matching title or author name.
func (srv *catalogService) ListBooks(ctx context.Context, search string) ([]*entity.Book, error) {
	books, err := srv.bookRepo.List(ctx, search)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

// GetBook retrieves a single book with its author and borrow history.
func (srv *catalogService) GetBook(ctx context.Context, bookID uint) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, domainerrors.ErrBookNotFound.WrapMessage("book lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find book")
	}

	return book, nil
}

// CreateBook adds a book to the catalog, finding or creating its author by
// name within the same transaction.
func (srv *catalogService) CreateBook(ctx context.Context, input *usecase.CreateBookInput) (*entity.Book, error) {
	publishedAt, err := time.Parse("2006-01-02", input.PublishedAt)
	if err != nil {
		if publishedAt, err = time.Parse(time.RFC3339, input.PublishedAt); err != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "publishedAt must be a date (2006-01-02) or RFC 3339 timestamp")
		}
	}

	var created *entity.Book

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authorRepo := repoFactory.NewAuthorRepository()
		bookRepo := repoFactory.NewBookRepository()

		author, err := authorRepo.FindByName(ctx, input.Author.Name)
		if errors.Is(err, repository.ErrAuthorNotFound) {
			author = &entity.Author{Name: input.Author.Name, Bio: input.Author.Bio}
			if err := authorRepo.Create(ctx, author); err != nil {
				return errors.Wrap(err, "failed to create author for book")
			}
		} else if err != nil {
			return errors.Wrap(err, "failed to resolve author for book")
		}

		book := &entity.Book{
			Title:       input.Title,
			AuthorID:    &author.ID,
			CategoryID:  input.CategoryID,
			PublishedAt: publishedAt,
			Image:       input.Image,
			Description: input.Description,
		}
		if err := bookRepo.Create(ctx, book); err != nil {
			return errors.Wrap(err, "failed to create book")
		}

		book.Author = author
		created = book

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create book", slog.String("title", input.Title), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Book created", slog.Any("bookID", created.ID))

	return created, nil
}

// ToggleLike flips the wishlist flag and returns the updated book.
func (srv *catalogService) ToggleLike(ctx context.Context, bookID uint) (*entity.Book, error) {
	book, err := srv.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if err := srv.bookRepo.SetLiked(ctx, bookID, !book.Liked); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, domainerrors.ErrBookNotFound.WrapMessage("toggle like failed")
		}

		return nil, errors.Wrap(err, "failed to toggle like flag")
	}

	book.Liked = !book.Liked

	return book, nil
}

// --- Authors ---

func (srv *catalogService) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	authors, err := srv.authorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}

	return authors, nil
}

func (srv *catalogService) CreateAuthor(ctx context.Context, input *usecase.CreateAuthorInput) (*entity.Author, error) {
	author := &entity.Author{Name: input.Name, Bio: input.Bio}
	if err := srv.authorRepo.Create(ctx, author); err != nil {
		return nil, errors.Wrap(err, "failed to create author")
	}

	return author, nil
}

func (srv *catalogService) DeleteAuthor(ctx context.Context, authorID uint) error {
	if err := srv.authorRepo.Delete(ctx, authorID); err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return domainerrors.ErrAuthorNotFound.WrapMessage("author deletion failed")
		}

		return errors.Wrap(err, "failed to delete author")
	}

	return nil
}

// --- Categories ---

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) GetCategory(ctx context.Context, categoryID uint) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("category lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{Name: input.Name}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, categoryID uint, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{ID: categoryID, Name: input.Name}
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("category update failed")
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return srv.GetCategory(ctx, categoryID)
}

func (srv *catalogService) DeleteCategory(ctx context.Context, categoryID uint) error {
	if err := srv.categoryRepo.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("category deletion failed")
		}

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// --- Reviews ---

// CreateReview stores feedback on a book. The student identity comes from
// the authenticated token, so only the book reference needs resolving.
func (srv *catalogService) CreateReview(ctx context.Context, studentID, bookID uint, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if _, err := srv.GetBook(ctx, bookID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		StudentID: studentID,
		BookID:    bookID,
		Content:   input.Content,
		Rating:    input.Rating,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Debug("Review created", slog.Any("reviewID", review.ID), slog.Any("bookID", bookID))

	return review, nil
}

func (srv *catalogService) ListReviews(ctx context.Context, bookID uint) ([]*entity.Review, error) {
	if _, err := srv.GetBook(ctx, bookID); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.ListByBook(ctx, bookID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
