package model

import "time"

// BorrowModel mirrors the 'borrows' table. Student and book FKs restrict
// deletion: referential integrity is enforced here, not in the service.
type BorrowModel struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	StudentID    uint       `gorm:"index;not null"`
	BookID       uint       `gorm:"index;not null"`
	BorrowedAt   time.Time  `gorm:"not null"`
	ReturnedAt   *time.Time
	DurationDays int        `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Student *StudentModel `gorm:"foreignKey:StudentID;constraint:OnDelete:RESTRICT"`
	Book    *BookModel    `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (BorrowModel) TableName() string {
	return "borrows"
}

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	StudentID uint   `gorm:"index;not null"`
	BookID    uint   `gorm:"index;not null"`
	Content   string `gorm:"type:text;not null"`
	Rating    int    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
