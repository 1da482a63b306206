package entity

import "time"

// Borrow is the transaction record linking a student to a book they took
// out. A nil ReturnedAt means the book is still out; the record moves to
// the returned state exactly once and never transitions back.
type Borrow struct {
	ID           uint
	StudentID    uint
	Student      *Student
	BookID       uint
	Book         *Book
	BorrowedAt   time.Time  // Supplied by the caller at creation.
	ReturnedAt   *time.Time // Nil while the book is out.
	DurationDays int        // Snapshot computed at creation, finalized on return.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Returned reports whether the borrow has reached its terminal state.
func (b *Borrow) Returned() bool {
	return b.ReturnedAt != nil
}

// Review is free-text feedback a student leaves on a book. Independent of
// any borrow record.
type Review struct {
	ID        uint
	StudentID uint
	BookID    uint
	Content   string
	Rating    int
	CreatedAt time.Time
}
