package shift_test

import (
	"context"
	"testing"
	"time"

	"go-shift-admin/internal/history"
	historyMock "go-shift-admin/internal/history/mock"
	"go-shift-admin/internal/messaging/kafka"
	kafkaMock "go-shift-admin/internal/messaging/kafka/mock"
	"go-shift-admin/internal/shift"
	shifterrors "go-shift-admin/internal/shift/errors"
	shiftMock "go-shift-admin/internal/shift/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *shiftMock.MockRepository
	tracker *historyMock.MockTracker
	outbox  *kafkaMock.MockOutboxRepository
	service shift.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := shiftMock.NewMockRepository(ctrl)
	tracker := historyMock.NewMockTracker(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox).AnyTimes()

	return &serviceDeps{
		sqlMock: sqlMock,
		repo:    repo,
		tracker: tracker,
		outbox:  outbox,
		service: shift.NewService(gdb, repo, tracker, outbox),
	}
}

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the row, the version and the outbox event together", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *shift.Shift) error {
				s.ID = 42
				return nil
			})
		deps.tracker.EXPECT().
			RecordShiftChange(ctx, gomock.Any(), history.ChangeInsert, gomock.Nil(), gomock.Any()).
			Return(1, nil)

		var event kafka.OutboxEvent
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				event = e
				return nil
			})

		res, err := deps.service.Create(ctx, shift.CreateShiftRequest{
			EmployeeID: 7,
			ShiftDate:  "2026-01-15",
			ShiftFields: shift.ShiftFields{
				ShiftCode: strPtr("A"),
				StartTime: strPtr("09:00"),
				EndTime:   strPtr("18:00"),
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(42), res.ID)
		assert.Equal(t, "2026-01-15", res.ShiftDate)
		assert.Equal(t, "09:00", *res.StartTime)

		assert.Equal(t, "shift", event.AggregateType)
		assert.Equal(t, "42", event.AggregateID)
		assert.Equal(t, kafka.OutboxStatusPending, event.Status)
		assert.NotEmpty(t, event.Payload)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate employee and date", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_shift_employee_date"})

		_, err := deps.service.Create(ctx, shift.CreateShiftRequest{
			EmployeeID: 7,
			ShiftDate:  "2026-01-15",
		})

		assert.ErrorIs(t, err, shifterrors.ErrDuplicateShift)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid date", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, shift.CreateShiftRequest{
			EmployeeID: 7,
			ShiftDate:  "15/01/2026",
		})

		assert.ErrorIs(t, err, shifterrors.ErrInvalidShiftDate)
	})

	t.Run("invalid time of day", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, shift.CreateShiftRequest{
			EmployeeID:  7,
			ShiftDate:   "2026-01-15",
			ShiftFields: shift.ShiftFields{StartTime: strPtr("25:99")},
		})

		assert.ErrorIs(t, err, shifterrors.ErrInvalidTimeOfDay)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *shift.Shift {
		start := time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)
		return &shift.Shift{
			ID:         42,
			EmployeeID: 7,
			ShiftDate:  time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			ShiftCode:  strPtr("A"),
			StartTime:  &start,
		}
	}

	t.Run("tracked change writes a new version", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().FindByID(ctx, int64(42)).Return(existing(), nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.tracker.EXPECT().
			RecordShiftChange(ctx, gomock.Any(), history.ChangeUpdate, gomock.Any(), gomock.Any()).
			Return(2, nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		res, err := deps.service.Update(ctx, 42, shift.UpdateShiftRequest{
			ShiftFields: shift.ShiftFields{ShiftCode: strPtr("B")},
		})

		assert.NoError(t, err)
		assert.Equal(t, "B", *res.ShiftCode)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("no-op change writes no version and no event", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().FindByID(ctx, int64(42)).Return(existing(), nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.tracker.EXPECT().
			RecordShiftChange(ctx, gomock.Any(), history.ChangeUpdate, gomock.Any(), gomock.Any()).
			Return(0, nil)
		// no outbox expectation: nothing changed, nothing announced

		_, err := deps.service.Update(ctx, 42, shift.UpdateShiftRequest{
			ShiftFields: shift.ShiftFields{ShiftCode: strPtr("A"), StartTime: strPtr("09:00")},
		})

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().FindByID(ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 99, shift.UpdateShiftRequest{})

		assert.ErrorIs(t, err, shifterrors.ErrShiftNotFound)
	})

	t.Run("concurrent version allocation loses the race", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().FindByID(ctx, int64(42)).Return(existing(), nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.tracker.EXPECT().
			RecordShiftChange(ctx, gomock.Any(), history.ChangeUpdate, gomock.Any(), gomock.Any()).
			Return(0, &pgconn.PgError{Code: "23505", ConstraintName: "uq_shift_change_version"})

		_, err := deps.service.Update(ctx, 42, shift.UpdateShiftRequest{
			ShiftFields: shift.ShiftFields{ShiftCode: strPtr("B")},
		})

		assert.ErrorIs(t, err, shifterrors.ErrConcurrentModification)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("records the before image and an event", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		row := &shift.Shift{
			ID:         42,
			EmployeeID: 7,
			ShiftDate:  time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			ShiftCode:  strPtr("A"),
		}
		deps.repo.EXPECT().FindByID(ctx, int64(42)).Return(row, nil)

		var before *history.ShiftImage
		recorded := deps.tracker.EXPECT().
			RecordShiftChange(ctx, gomock.Any(), history.ChangeDelete, gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, _ *gorm.DB, _ history.ChangeType, b, _ *history.ShiftImage) (int, error) {
				before = b
				return 3, nil
			})
		// the history record lands before the row is removed
		deps.repo.EXPECT().Delete(ctx, int64(42)).Return(nil).After(recorded)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		err := deps.service.Delete(ctx, 42)

		assert.NoError(t, err)
		assert.Equal(t, "A", *before.ShiftCode)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().FindByID(ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Delete(ctx, 99), shifterrors.ErrShiftNotFound)
	})
}

func TestService_ApplyRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("restored values go through the tracked update path", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		row := &shift.Shift{
			ID:         42,
			EmployeeID: 7,
			ShiftDate:  time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			ShiftCode:  strPtr("B"),
			IsRemote:   true,
		}
		deps.repo.EXPECT().FindByID(ctx, int64(42)).Return(row, nil)

		var saved *shift.Shift
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *shift.Shift) error {
				saved = s
				return nil
			})
		deps.tracker.EXPECT().
			RecordShiftChange(ctx, gomock.Any(), history.ChangeUpdate, gomock.Any(), gomock.Any()).
			Return(4, nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		err := deps.service.ApplyRestore(ctx, 42, history.RestoredShiftFields{
			ShiftCode: strPtr("A"),
			IsHoliday: false,
			IsRemote:  false,
		})

		assert.NoError(t, err)
		assert.Equal(t, "A", *saved.ShiftCode)
		assert.False(t, saved.IsRemote)
	})

	t.Run("shift deleted since the version was read", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().FindByID(ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.ApplyRestore(ctx, 42, history.RestoredShiftFields{})
		assert.ErrorIs(t, err, shifterrors.ErrShiftNotFound)
	})
}
