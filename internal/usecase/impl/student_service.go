package impl

import (
	"context"
	"log/slog"

	deliverycontext "biblio/internal/delivery/context"
	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/domain/repository"
	"biblio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// studentService implements the StudentUsecase interface. It covers the
// credential-free student records; registration with a password lives in
// the auth service.
type studentService struct {
	studentRepo repository.StudentRepository
	logger      *slog.Logger
}

// StudentServiceParams holds dependencies for studentService, injected by Fx.
type StudentServiceParams struct {
	fx.In

	StudentRepo repository.StudentRepository
	Logger      *slog.Logger
}

// NewStudentService is the constructor for studentService.
func NewStudentService(params StudentServiceParams) usecase.StudentUsecase {
	return &studentService{
		studentRepo: params.StudentRepo,
		logger:      params.Logger,
	}
}

func (srv *studentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStudent stores a student record without credentials. Such a
// student cannot log in until they register through the auth flow.
func (srv *studentService) CreateStudent(ctx context.Context, input *usecase.CreateStudentInput) (*usecase.StudentView, error) {
	student := &entity.Student{
		Name:  input.Name,
		Email: input.Email,
	}
	if err := srv.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Duplicate email on student creation", slog.String("email", input.Email))

			return nil, domainerrors.ErrDuplicateEmail
		}

		return nil, errors.Wrap(err, "failed to create student")
	}

	srv.log(ctx).Debug("Student created", slog.Any("studentID", student.ID))

	return usecase.NewStudentView(student), nil
}

// GetStudent retrieves a student record by ID.
func (srv *studentService) GetStudent(ctx context.Context, studentID uint) (*usecase.StudentView, error) {
	student, err := srv.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, domainerrors.ErrStudentNotFound.WrapMessage("student lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find student")
	}

	return usecase.NewStudentView(student), nil
}
