package postgres

import (
	"context"

	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/domain/repository"
	"biblio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements the repository.BookRepository interface.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		db: db,
	}
}

// List retrieves all books with their authors preloaded. A non-empty
// search term matches case-insensitively on book title or author name.
func (repo *bookRepository) List(ctx context.Context, search string) ([]*entity.Book, error) {
	var bookModels []*model.BookModel

	query := repo.db.WithContext(ctx).Preload("Author")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.
			Joins("LEFT JOIN authors ON authors.id = books.author_id").
			Where("books.title ILIKE ? OR authors.name ILIKE ?", pattern, pattern)
	}

	if err := query.Order("books.id").Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(bookModels))
	for _, bookM := range bookModels {
		books = append(books, toBookDomain(bookM))
	}

	return books, nil
}

// FindByID retrieves a single book with its author and borrow history.
func (repo *bookRepository) FindByID(ctx context.Context, id uint) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Borrows").
		Where("id = ?", id).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by ID")
	}

	return toBookDomain(&bookM), nil
}

// Create persists a new book.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid author or category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// SetLiked flips the wishlist flag on an existing book.
func (repo *bookRepository) SetLiked(ctx context.Context, id uint, liked bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", id).
		Update("liked", liked)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update liked flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	borrows := make([]*entity.Borrow, 0, len(data.Borrows))
	for i := range data.Borrows {
		borrows = append(borrows, toBorrowDomain(&data.Borrows[i]))
	}

	return &entity.Book{
		ID:          data.ID,
		Title:       data.Title,
		AuthorID:    data.AuthorID,
		Author:      toAuthorDomain(data.Author),
		CategoryID:  data.CategoryID,
		Category:    toCategoryDomain(data.Category),
		PublishedAt: data.PublishedAt,
		Rating:      data.Rating,
		Image:       data.Image,
		Description: data.Description,
		Liked:       data.Liked,
		Borrows:     borrows,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:          data.ID,
		Title:       data.Title,
		AuthorID:    data.AuthorID,
		CategoryID:  data.CategoryID,
		PublishedAt: data.PublishedAt,
		Rating:      data.Rating,
		Image:       data.Image,
		Description: data.Description,
		Liked:       data.Liked,
	}
}
