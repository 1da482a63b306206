package usecase

import (
	"context"

	"biblio/internal/domain/entity"
)

// AuthorInput is the embedded author payload of a book-creation request.
// The catalog finds an existing author by name or creates a new one.
type AuthorInput struct {
	Name string  `json:"name" validate:"required"`
	Bio  *string `json:"bio"`
}

// CreateBookInput defines the data required to add a book to the catalog.
type CreateBookInput struct {
	Title       string      `json:"title" validate:"required"`
	Author      AuthorInput `json:"author" validate:"required"`
	CategoryID  *uint       `json:"categoryId"`
	Image       *string     `json:"image"`
	PublishedAt string      `json:"publishedAt" validate:"required"`
	Description *string     `json:"description"`
}

// CreateAuthorInput defines the data required to add an author.
type CreateAuthorInput struct {
	Name string  `json:"name" validate:"required"`
	Bio  *string `json:"bio"`
}

// CategoryInput defines the data for category creation and renames.
type CategoryInput struct {
	Name string `json:"name" validate:"required"`
}

// CreateReviewInput defines the data required to leave a review on a book.
// The student identity comes from the bearer token, not the body.
type CreateReviewInput struct {
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// CatalogUsecase defines the interface for book, author, category and
// review operations.
type CatalogUsecase interface {
	// Books
	ListBooks(ctx context.Context, search string) ([]*entity.Book, error)
	GetBook(ctx context.Context, bookID uint) (*entity.Book, error)
	CreateBook(ctx context.Context, input *CreateBookInput) (*entity.Book, error)
	ToggleLike(ctx context.Context, bookID uint) (*entity.Book, error)

	// Authors
	ListAuthors(ctx context.Context) ([]*entity.Author, error)
	CreateAuthor(ctx context.Context, input *CreateAuthorInput) (*entity.Author, error)
	DeleteAuthor(ctx context.Context, authorID uint) error

	// Categories
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, categoryID uint) (*entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID uint, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID uint) error

	// Reviews
	CreateReview(ctx context.Context, studentID, bookID uint, input *CreateReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context, bookID uint) ([]*entity.Review, error)
}
