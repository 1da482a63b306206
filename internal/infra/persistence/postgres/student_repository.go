package postgres

import (
	"context"

	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/domain/repository"
	"biblio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// studentRepository implements the repository.StudentRepository interface.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{
		db: db,
	}
}

// FindByID retrieves a single student by their unique ID.
func (repo *studentRepository) FindByID(ctx context.Context, id uint) (*entity.Student, error) {
	var studentM model.StudentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&studentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by ID")
	}

	return toStudentDomain(&studentM), nil
}

// FindByEmail retrieves a single student by their email address.
func (repo *studentRepository) FindByEmail(ctx context.Context, email string) (*entity.Student, error) {
	var studentM model.StudentModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&studentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by email")
	}

	return toStudentDomain(&studentM), nil
}

// Create persists a new student. The unique index on email is the
// authoritative duplicate guard: a constraint violation surfaces as
// ErrDuplicateEmail even when the prior fast-path lookup missed the race.
func (repo *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required student information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student")
	}

	// Update the entity with generated values
	student.ID = studentM.ID
	student.CreatedAt = studentM.CreatedAt
	student.UpdatedAt = studentM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toStudentDomain(data *model.StudentModel) *entity.Student {
	if data == nil {
		return nil
	}

	return &entity.Student{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromStudentDomain(data *entity.Student) *model.StudentModel {
	if data == nil {
		return nil
	}

	return &model.StudentModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
	}
}
