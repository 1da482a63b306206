// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "biblio/internal/delivery/context"
	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/domain/repository"
	"biblio/internal/domain/service"
	"biblio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	studentRepo  repository.StudentRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	StudentRepo  repository.StudentRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		studentRepo:  params.StudentRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete student registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password does not meet security requirements")
	}

	// Fast-path duplicate check for a friendly error. The unique index on
	// email remains the authoritative guard: a concurrent registration
	// slipping past this lookup still fails on Create with the same error.
	_, err := srv.studentRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email already taken", slog.String("email", input.Email))

		return nil, domainerrors.ErrDuplicateEmail.WrapMessage("registration failed")
	}
	if !errors.Is(err, repository.ErrStudentNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing student")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newStudent := buildNewStudent(input.Name, input.Email, hashedPassword)
	if err := srv.studentRepo.Create(ctx, newStudent); err != nil {
		srv.log(ctx).Error("Failed to create student during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create student during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("studentID", newStudent.ID))

	return &usecase.RegisterOutput{Student: usecase.NewStudentView(newStudent)}, nil
}

func buildNewStudent(name, email, passwordHash string) *entity.Student {
	return &entity.Student{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// Login orchestrates the student login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	student, err := srv.studentRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			// Unknown email and wrong password must be indistinguishable
			// to the caller.
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load student for login")
	}

	// bcrypt comparison is CPU-bound and deliberately slow.
	if !srv.hasher.Check(input.Password, student.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Generate(student.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("studentID", student.ID))

	return &usecase.LoginOutput{
		Token:   token,
		Student: usecase.NewStudentView(student),
	}, nil
}
