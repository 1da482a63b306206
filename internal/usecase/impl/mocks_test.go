package impl

import (
	"context"

	"biblio/internal/domain/entity"
	"biblio/internal/domain/repository"
	"biblio/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// --- Repository mocks ---

type mockStudentRepository struct {
	mock.Mock
}

func (m *mockStudentRepository) FindByID(ctx context.Context, id uint) (*entity.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Student), args.Error(1)
}

func (m *mockStudentRepository) FindByEmail(ctx context.Context, email string) (*entity.Student, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Student), args.Error(1)
}

func (m *mockStudentRepository) Create(ctx context.Context, student *entity.Student) error {
	args := m.Called(ctx, student)

	return args.Error(0)
}

type mockBookRepository struct {
	mock.Mock
}

func (m *mockBookRepository) List(ctx context.Context, search string) ([]*entity.Book, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Book), args.Error(1)
}

func (m *mockBookRepository) FindByID(ctx context.Context, id uint) (*entity.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Book), args.Error(1)
}

func (m *mockBookRepository) Create(ctx context.Context, book *entity.Book) error {
	args := m.Called(ctx, book)

	return args.Error(0)
}

func (m *mockBookRepository) SetLiked(ctx context.Context, id uint, liked bool) error {
	args := m.Called(ctx, id, liked)

	return args.Error(0)
}

type mockAuthorRepository struct {
	mock.Mock
}

func (m *mockAuthorRepository) List(ctx context.Context) ([]*entity.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Author), args.Error(1)
}

func (m *mockAuthorRepository) FindByName(ctx context.Context, name string) (*entity.Author, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Author), args.Error(1)
}

func (m *mockAuthorRepository) Create(ctx context.Context, author *entity.Author) error {
	args := m.Called(ctx, author)

	return args.Error(0)
}

func (m *mockAuthorRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockBorrowRepository struct {
	mock.Mock
}

func (m *mockBorrowRepository) List(ctx context.Context) ([]*entity.Borrow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Borrow), args.Error(1)
}

func (m *mockBorrowRepository) FindByID(ctx context.Context, id uint) (*entity.Borrow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Borrow), args.Error(1)
}

func (m *mockBorrowRepository) Create(ctx context.Context, borrow *entity.Borrow) error {
	args := m.Called(ctx, borrow)

	return args.Error(0)
}

func (m *mockBorrowRepository) Update(ctx context.Context, borrow *entity.Borrow) error {
	args := m.Called(ctx, borrow)

	return args.Error(0)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *mockReviewRepository) ListByBook(ctx context.Context, bookID uint) ([]*entity.Review, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

// --- Transaction plumbing stubs ---

// stubRepositoryFactory hands out the test's mock repositories as the
// transaction-bound instances.
type stubRepositoryFactory struct {
	studentRepo repository.StudentRepository
	bookRepo    repository.BookRepository
	authorRepo  repository.AuthorRepository
	borrowRepo  repository.BorrowRepository
}

func (f *stubRepositoryFactory) NewStudentRepository() repository.StudentRepository {
	return f.studentRepo
}

func (f *stubRepositoryFactory) NewBookRepository() repository.BookRepository {
	return f.bookRepo
}

func (f *stubRepositoryFactory) NewAuthorRepository() repository.AuthorRepository {
	return f.authorRepo
}

func (f *stubRepositoryFactory) NewBorrowRepository() repository.BorrowRepository {
	return f.borrowRepo
}

// stubTransactionManager runs the unit of work directly against the stub
// factory. Commit and rollback behavior is covered by the GORM-backed
// manager's own tests.
type stubTransactionManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// --- Domain service mocks ---

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

func (m *mockPasswordHasher) ValidatePasswordStrength(password string) error {
	args := m.Called(password)

	return args.Error(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(studentID uint) (string, error) {
	args := m.Called(studentID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}
