// Package model contains the GORM persistence models mirroring the
// database schema.
package model

import "time"

// StudentModel mirrors the 'students' table. The unique index on email is
// the authoritative duplicate-registration guard.
type StudentModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Borrows []BorrowModel `gorm:"foreignKey:StudentID"`
	Reviews []ReviewModel `gorm:"foreignKey:StudentID"`
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}
