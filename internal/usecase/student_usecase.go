package usecase

import "context"

// CreateStudentInput defines the data for the legacy student-creation
// endpoint. Students created this way have no credentials and cannot log
// in until they register.
type CreateStudentInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// StudentUsecase defines the interface for student record operations
// outside the auth flow.
type StudentUsecase interface {
	CreateStudent(ctx context.Context, input *CreateStudentInput) (*StudentView, error)
	GetStudent(ctx context.Context, studentID uint) (*StudentView, error)
}
