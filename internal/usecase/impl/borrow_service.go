package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "biblio/internal/delivery/context"
	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/domain/repository"
	"biblio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const hoursPerDay = 24

// borrowService implements the BorrowUsecase interface.
type borrowService struct {
	txManager  repository.TransactionManager
	borrowRepo repository.BorrowRepository
	logger     *slog.Logger
	now        func() time.Time
}

// BorrowServiceParams holds dependencies for borrowService, injected by Fx.
type BorrowServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	BorrowRepo repository.BorrowRepository
	Logger     *slog.Logger
}

// NewBorrowService is the constructor for borrowService.
func NewBorrowService(params BorrowServiceParams) usecase.BorrowUsecase {
	return &borrowService{
		txManager:  params.TxManager,
		borrowRepo: params.BorrowRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *borrowService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBorrow validates both references, computes the duration snapshot
// and persists the record, all within a single transaction.
func (srv *borrowService) CreateBorrow(ctx context.Context, input *usecase.CreateBorrowInput) (*usecase.CreateBorrowOutput, error) {
	borrowedAt, err := parseBorrowedAt(input.BorrowedAt)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "borrowedAt must be a date (2006-01-02) or RFC 3339 timestamp")
	}

	now := srv.now()
	if borrowedAt.After(now) {
		// A future borrowedAt would store a negative duration.
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "borrowedAt must not be in the future")
	}

	durationDays := daysBetween(borrowedAt, now)

	var created *entity.Borrow
	var student *entity.Student

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.NewStudentRepository()
		bookRepo := repoFactory.NewBookRepository()
		borrowRepo := repoFactory.NewBorrowRepository()

		// Resolve both references up front so a missing one surfaces as a
		// precise not-found error instead of an opaque store failure.
		found, err := studentRepo.FindByID(ctx, input.StudentID)
		if errors.Is(err, repository.ErrStudentNotFound) {
			return domainerrors.ErrStudentNotFound.WrapMessage("borrow creation failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to resolve student for borrow")
		}
		student = found

		if _, err := bookRepo.FindByID(ctx, input.BookID); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return domainerrors.ErrBookNotFound.WrapMessage("borrow creation failed")
			}

			return errors.Wrap(err, "failed to resolve book for borrow")
		}

		borrow := &entity.Borrow{
			StudentID:    input.StudentID,
			BookID:       input.BookID,
			BorrowedAt:   borrowedAt,
			ReturnedAt:   nil,
			DurationDays: durationDays,
		}
		if err := borrowRepo.Create(ctx, borrow); err != nil {
			return errors.Wrap(err, "failed to create borrow record")
		}
		created = borrow

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create borrow record",
			slog.Any("studentID", input.StudentID),
			slog.Any("bookID", input.BookID),
			slog.Any("error", err))

		return nil, err
	}

	created.Student = student

	srv.log(ctx).Debug("Borrow record created",
		slog.Any("borrowID", created.ID),
		slog.Int("durationDays", durationDays))

	return &usecase.CreateBorrowOutput{
		Borrow:       created,
		Student:      usecase.NewStudentView(student),
		DaysBorrowed: durationDays,
	}, nil
}

// ReturnBook moves a borrow record to its terminal state. The duration is
// recomputed over the actual borrowed-to-returned interval, replacing the
// creation-time snapshot.
func (srv *borrowService) ReturnBook(ctx context.Context, borrowID uint) (*entity.Borrow, error) {
	var returned *entity.Borrow

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		borrowRepo := repoFactory.NewBorrowRepository()

		borrow, err := borrowRepo.FindByID(ctx, borrowID)
		if errors.Is(err, repository.ErrBorrowNotFound) {
			return domainerrors.ErrBorrowNotFound.WrapMessage("return failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load borrow record for return")
		}

		// Double return is a hard error so double-return bugs surface
		// instead of being silently absorbed.
		if borrow.Returned() {
			return domainerrors.ErrAlreadyReturned.WrapMessage("return failed")
		}

		now := srv.now()
		borrow.ReturnedAt = &now
		borrow.DurationDays = daysBetween(borrow.BorrowedAt, now)

		if err := borrowRepo.Update(ctx, borrow); err != nil {
			return errors.Wrap(err, "failed to persist return transition")
		}
		returned = borrow

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to return borrow record", slog.Any("borrowID", borrowID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Borrow record returned", slog.Any("borrowID", borrowID))

	return returned, nil
}

// ListBorrows retrieves all borrow records.
func (srv *borrowService) ListBorrows(ctx context.Context) ([]*entity.Borrow, error) {
	borrows, err := srv.borrowRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list borrow records")
	}

	return borrows, nil
}

// GetBorrow retrieves a single borrow record by ID.
func (srv *borrowService) GetBorrow(ctx context.Context, borrowID uint) (*entity.Borrow, error) {
	borrow, err := srv.borrowRepo.FindByID(ctx, borrowID)
	if err != nil {
		if errors.Is(err, repository.ErrBorrowNotFound) {
			return nil, domainerrors.ErrBorrowNotFound.WrapMessage("borrow lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find borrow record")
	}

	return borrow, nil
}

// parseBorrowedAt accepts the calendar-date form used by clients of the
// original API as well as a full RFC 3339 timestamp.
func parseBorrowedAt(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, value)
}

// daysBetween computes ceil((to - from) / 1 day): zero when both fall at
// the same instant, one for any partial day.
func daysBetween(from, to time.Time) int {
	elapsed := to.Sub(from)
	if elapsed <= 0 {
		return 0
	}

	days := int(elapsed / (hoursPerDay * time.Hour))
	if elapsed%(hoursPerDay*time.Hour) != 0 {
		days++
	}

	return days
}
