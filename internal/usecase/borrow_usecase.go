package usecase

import (
	"context"

	"biblio/internal/domain/entity"
)

// CreateBorrowInput defines the data required to create a borrow record.
// BorrowedAt accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
type CreateBorrowInput struct {
	StudentID  uint   `json:"studentId" validate:"required"`
	BookID     uint   `json:"bookId" validate:"required"`
	BorrowedAt string `json:"borrowedAt" validate:"required"`
}

// CreateBorrowOutput returns the persisted record enriched with the
// resolved student projection and the computed duration.
type CreateBorrowOutput struct {
	Borrow       *entity.Borrow
	Student      *StudentView
	DaysBorrowed int
}

// BorrowUsecase defines the interface for the borrow-record lifecycle.
type BorrowUsecase interface {
	// CreateBorrow validates both references, computes the elapsed-day
	// duration snapshot and persists the record in the active state.
	CreateBorrow(ctx context.Context, input *CreateBorrowInput) (*CreateBorrowOutput, error)

	// ReturnBook moves a borrow record to its terminal returned state.
	// Returning twice is a hard error.
	ReturnBook(ctx context.Context, borrowID uint) (*entity.Borrow, error)

	// ListBorrows retrieves all borrow records.
	ListBorrows(ctx context.Context) ([]*entity.Borrow, error)

	// GetBorrow retrieves a single borrow record by ID.
	GetBorrow(ctx context.Context, borrowID uint) (*entity.Borrow, error)
}
