// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"biblio/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new student.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a student to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created student's basic information.
// The password hash is never part of this projection.
type RegisterOutput struct {
	Student *StudentView
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token   string
	Student *StudentView
}

// StudentView is the externally visible projection of a student.
type StudentView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewStudentView strips the credential fields from a student entity.
func NewStudentView(s *entity.Student) *StudentView {
	if s == nil {
		return nil
	}

	return &StudentView{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
	}
}

// AuthUsecase defines the interface for registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
