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

// authorRepository implements the repository.AuthorRepository interface.
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository is the constructor for authorRepository.
func NewAuthorRepository(db *gorm.DB) repository.AuthorRepository {
	return &authorRepository{
		db: db,
	}
}

// List retrieves all authors.
func (repo *authorRepository) List(ctx context.Context) ([]*entity.Author, error) {
	var authorModels []*model.AuthorModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&authorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}

	authors := make([]*entity.Author, 0, len(authorModels))
	for _, authorM := range authorModels {
		authors = append(authors, toAuthorDomain(authorM))
	}

	return authors, nil
}

// FindByName retrieves an author by exact name. Used by book creation's
// find-or-create flow.
func (repo *authorRepository) FindByName(ctx context.Context, name string) (*entity.Author, error) {
	var authorM model.AuthorModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&authorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to find author by name")
	}

	return toAuthorDomain(&authorM), nil
}

// Create persists a new author.
func (repo *authorRepository) Create(ctx context.Context, author *entity.Author) error {
	authorM := fromAuthorDomain(author)

	if err := repo.db.WithContext(ctx).Create(authorM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required author information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create author")
	}

	author.ID = authorM.ID
	author.CreatedAt = authorM.CreatedAt
	author.UpdatedAt = authorM.UpdatedAt

	return nil
}

// Delete removes an author. Books keep their rows; the FK is cleared by
// the store's ON DELETE SET NULL rule.
func (repo *authorRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.AuthorModel{}, id)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete author")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthorNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAuthorDomain(data *model.AuthorModel) *entity.Author {
	if data == nil {
		return nil
	}

	return &entity.Author{
		ID:        data.ID,
		Name:      data.Name,
		Bio:       data.Bio,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAuthorDomain(data *entity.Author) *model.AuthorModel {
	if data == nil {
		return nil
	}

	return &model.AuthorModel{
		ID:   data.ID,
		Name: data.Name,
		Bio:  data.Bio,
	}
}
