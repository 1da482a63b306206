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

// borrowRepository implements the repository.BorrowRepository interface.
type borrowRepository struct {
	db *gorm.DB
}

// NewBorrowRepository is the constructor for borrowRepository.
func NewBorrowRepository(db *gorm.DB) repository.BorrowRepository {
	return &borrowRepository{
		db: db,
	}
}

// List retrieves all borrow records.
func (repo *borrowRepository) List(ctx context.Context) ([]*entity.Borrow, error) {
	var borrowModels []*model.BorrowModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&borrowModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list borrow records")
	}

	borrows := make([]*entity.Borrow, 0, len(borrowModels))
	for _, borrowM := range borrowModels {
		borrows = append(borrows, toBorrowDomain(borrowM))
	}

	return borrows, nil
}

// FindByID retrieves a single borrow record with its student preloaded.
func (repo *borrowRepository) FindByID(ctx context.Context, id uint) (*entity.Borrow, error) {
	var borrowM model.BorrowModel

	if err := repo.db.WithContext(ctx).
		Preload("Student").
		Where("id = ?", id).
		First(&borrowM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBorrowNotFound
		}

		return nil, errors.Wrap(err, "failed to find borrow record by ID")
	}

	return toBorrowDomain(&borrowM), nil
}

// Create persists a new borrow record. Foreign key violations map to the
// precise missing-reference errors rather than an opaque store failure.
func (repo *borrowRepository) Create(ctx context.Context, borrow *entity.Borrow) error {
	borrowM := fromBorrowDomain(borrow)

	if err := repo.db.WithContext(ctx).Create(borrowM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("borrow references a missing student or book")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required borrow information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create borrow record")
	}

	borrow.ID = borrowM.ID
	borrow.CreatedAt = borrowM.CreatedAt
	borrow.UpdatedAt = borrowM.UpdatedAt

	return nil
}

// Update persists the return transition.
func (repo *borrowRepository) Update(ctx context.Context, borrow *entity.Borrow) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BorrowModel{}).
		Where("id = ?", borrow.ID).
		Updates(map[string]any{
			"returned_at":   borrow.ReturnedAt,
			"duration_days": borrow.DurationDays,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update borrow record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBorrowNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBorrowDomain(data *model.BorrowModel) *entity.Borrow {
	if data == nil {
		return nil
	}

	return &entity.Borrow{
		ID:           data.ID,
		StudentID:    data.StudentID,
		Student:      toStudentDomain(data.Student),
		BookID:       data.BookID,
		BorrowedAt:   data.BorrowedAt,
		ReturnedAt:   data.ReturnedAt,
		DurationDays: data.DurationDays,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromBorrowDomain(data *entity.Borrow) *model.BorrowModel {
	if data == nil {
		return nil
	}

	return &model.BorrowModel{
		ID:           data.ID,
		StudentID:    data.StudentID,
		BookID:       data.BookID,
		BorrowedAt:   data.BorrowedAt,
		ReturnedAt:   data.ReturnedAt,
		DurationDays: data.DurationDays,
	}
}
