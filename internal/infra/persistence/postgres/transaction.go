package postgres

import (
	"context"
	"fmt"

	"biblio/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewStudentRepository creates a new student repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewStudentRepository() repository.StudentRepository {
	return NewStudentRepository(f.tx)
}

// NewBookRepository creates a new book repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewBookRepository() repository.BookRepository {
	return NewBookRepository(f.tx)
}

// NewAuthorRepository creates a new author repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewAuthorRepository() repository.AuthorRepository {
	return NewAuthorRepository(f.tx)
}

// NewBorrowRepository creates a new borrow repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewBorrowRepository() repository.BorrowRepository {
	return NewBorrowRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Log the rollback error, but return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err // Return the original business error.
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
