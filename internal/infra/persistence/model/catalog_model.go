package model

import "time"

// BookModel mirrors the 'books' table. Author and category references are
// weak: deleting either clears the FK instead of cascading into books.
type BookModel struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"type:varchar(255);not null"`
	AuthorID    *uint      `gorm:"index"`
	CategoryID  *uint      `gorm:"index"`
	PublishedAt time.Time  `gorm:"not null"`
	Rating      *float64
	Image       *string `gorm:"type:text"`
	Description *string `gorm:"type:text"`
	Liked       bool    `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Author   *AuthorModel   `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Borrows  []BorrowModel  `gorm:"foreignKey:BookID"`
	Reviews  []ReviewModel  `gorm:"foreignKey:BookID"`
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}

// AuthorModel mirrors the 'authors' table.
type AuthorModel struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(100);not null"`
	Bio       *string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthorModel) TableName() string {
	return "authors"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
