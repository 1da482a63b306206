package handler

import (
	"strconv"
	"time"

	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Response projections. Entities stay JSON-agnostic; every payload that
// leaves the API goes through one of these views.

// AuthorView is the external projection of an author.
type AuthorView struct {
	ID   uint    `json:"id"`
	Name string  `json:"name"`
	Bio  *string `json:"bio,omitempty"`
}

// CategoryView is the external projection of a category.
type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BookView is the external projection of a book, optionally carrying its
// author, category and borrow history when they were loaded.
type BookView struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Author      *AuthorView   `json:"author,omitempty"`
	Category    *CategoryView `json:"category,omitempty"`
	PublishedAt time.Time     `json:"publishedAt"`
	Rating      *float64      `json:"rating,omitempty"`
	Image       *string       `json:"image,omitempty"`
	Description *string       `json:"description,omitempty"`
	Liked       bool          `json:"liked"`
	Borrows     []*BorrowView `json:"borrows,omitempty"`
}

// BorrowView is the external projection of a borrow record.
type BorrowView struct {
	ID           uint                 `json:"id"`
	StudentID    uint                 `json:"studentId"`
	Student      *usecase.StudentView `json:"student,omitempty"`
	BookID       uint                 `json:"bookId"`
	Book         *BookView            `json:"book,omitempty"`
	BorrowedAt   time.Time            `json:"borrowedAt"`
	ReturnedAt   *time.Time           `json:"returnedAt,omitempty"`
	DurationDays int                  `json:"durationDays"`
}

// ReviewView is the external projection of a review.
type ReviewView struct {
	ID        uint      `json:"id"`
	StudentID uint      `json:"studentId"`
	BookID    uint      `json:"bookId"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAuthorView(author *entity.Author) *AuthorView {
	if author == nil {
		return nil
	}

	return &AuthorView{ID: author.ID, Name: author.Name, Bio: author.Bio}
}

func toCategoryView(category *entity.Category) *CategoryView {
	if category == nil {
		return nil
	}

	return &CategoryView{ID: category.ID, Name: category.Name}
}

func toBookView(book *entity.Book) *BookView {
	if book == nil {
		return nil
	}

	view := &BookView{
		ID:          book.ID,
		Title:       book.Title,
		Author:      toAuthorView(book.Author),
		Category:    toCategoryView(book.Category),
		PublishedAt: book.PublishedAt,
		Rating:      book.Rating,
		Image:       book.Image,
		Description: book.Description,
		Liked:       book.Liked,
	}
	for _, borrow := range book.Borrows {
		view.Borrows = append(view.Borrows, toBorrowView(borrow))
	}

	return view
}

func toBookViews(books []*entity.Book) []*BookView {
	views := make([]*BookView, 0, len(books))
	for _, book := range books {
		views = append(views, toBookView(book))
	}

	return views
}

func toBorrowView(borrow *entity.Borrow) *BorrowView {
	if borrow == nil {
		return nil
	}

	return &BorrowView{
		ID:           borrow.ID,
		StudentID:    borrow.StudentID,
		Student:      usecase.NewStudentView(borrow.Student),
		BookID:       borrow.BookID,
		Book:         toBookView(borrow.Book),
		BorrowedAt:   borrow.BorrowedAt,
		ReturnedAt:   borrow.ReturnedAt,
		DurationDays: borrow.DurationDays,
	}
}

func toBorrowViews(borrows []*entity.Borrow) []*BorrowView {
	views := make([]*BorrowView, 0, len(borrows))
	for _, borrow := range borrows {
		views = append(views, toBorrowView(borrow))
	}

	return views
}

func toReviewView(review *entity.Review) *ReviewView {
	if review == nil {
		return nil
	}

	return &ReviewView{
		ID:        review.ID,
		StudentID: review.StudentID,
		BookID:    review.BookID,
		Content:   review.Content,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
}

func toReviewViews(reviews []*entity.Review) []*ReviewView {
	views := make([]*ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, toReviewView(review))
	}

	return views
}

// parseIDParam reads a numeric path parameter. Non-numeric IDs are a
// validation failure, not a not-found.
func parseIDParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return uint(id), nil
}
