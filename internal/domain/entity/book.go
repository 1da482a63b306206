package entity

import "time"

// Book is a catalog entity. Author and category are weak references:
// deleting either leaves the book in place with the reference cleared.
type Book struct {
	ID          uint
	Title       string
	AuthorID    *uint
	Author      *Author
	CategoryID  *uint
	Category    *Category
	PublishedAt time.Time
	Rating      *float64
	Image       *string
	Description *string
	Liked       bool // Wishlist flag, toggled by the catalog.
	Borrows     []*Borrow
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Author is a simple named entity referenced by zero or more books.
type Author struct {
	ID        uint
	Name      string
	Bio       *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category groups books by subject.
type Category struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
