// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"biblio/internal/domain/entity"
)

// ErrStudentNotFound is a domain-specific error returned when a student is not found.
var ErrStudentNotFound = errors.New("student not found")

// StudentRepository defines the standard operations for student persistence.
// The application layer will depend on this interface, not the concrete implementation.
type StudentRepository interface {
	// FindByID retrieves a single student by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Student, error)

	// FindByEmail retrieves a single student by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Student, error)

	// Create persists a new student. The store enforces email uniqueness.
	Create(ctx context.Context, student *entity.Student) error
}
