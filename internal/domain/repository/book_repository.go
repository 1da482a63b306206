package repository

import (
	"context"
	"errors"

	"biblio/internal/domain/entity"
)

// Sentinel errors for catalog lookups.
var (
	ErrBookNotFound     = errors.New("book not found")
	ErrAuthorNotFound   = errors.New("author not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// BookRepository defines the standard operations for book persistence.
type BookRepository interface {
	// List retrieves all books, preloading their authors. A non-empty
	// search term filters case-insensitively on title and author name.
	List(ctx context.Context, search string) ([]*entity.Book, error)

	// FindByID retrieves a single book with its author and borrow history.
	FindByID(ctx context.Context, id uint) (*entity.Book, error)

	// Create persists a new book.
	Create(ctx context.Context, book *entity.Book) error

	// SetLiked flips the wishlist flag on an existing book.
	SetLiked(ctx context.Context, id uint, liked bool) error
}

// AuthorRepository defines the standard operations for author persistence.
type AuthorRepository interface {
	List(ctx context.Context) ([]*entity.Author, error)
	FindByName(ctx context.Context, name string) (*entity.Author, error)
	Create(ctx context.Context, author *entity.Author) error
	Delete(ctx context.Context, id uint) error
}

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id uint) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uint) error
}
