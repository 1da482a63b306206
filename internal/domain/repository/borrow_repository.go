package repository

import (
	"context"
	"errors"

	"biblio/internal/domain/entity"
)

// ErrBorrowNotFound is returned when a borrow record is absent.
var ErrBorrowNotFound = errors.New("borrow record not found")

// BorrowRepository defines the standard operations for borrow-record persistence.
type BorrowRepository interface {
	// List retrieves all borrow records.
	List(ctx context.Context) ([]*entity.Borrow, error)

	// FindByID retrieves a single borrow record.
	FindByID(ctx context.Context, id uint) (*entity.Borrow, error)

	// Create persists a new borrow record. The store enforces that the
	// referenced student and book exist.
	Create(ctx context.Context, borrow *entity.Borrow) error

	// Update persists the return transition (returnedAt, durationDays).
	Update(ctx context.Context, borrow *entity.Borrow) error
}

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByBook(ctx context.Context, bookID uint) ([]*entity.Review, error)
}
