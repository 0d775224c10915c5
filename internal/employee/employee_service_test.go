package employee_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-shift-admin/internal/employee"
	employeeerrors "go-shift-admin/internal/employee/errors"
	employeeMock "go-shift-admin/internal/employee/mock"
	"go-shift-admin/internal/history"
	historyMock "go-shift-admin/internal/history/mock"
	"go-shift-admin/internal/messaging/kafka"
	kafkaMock "go-shift-admin/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeCounter struct {
	next  int64
	calls int
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.calls++
	return f.next, nil
}

type serviceDeps struct {
	sqlMock     sqlmock.Sqlmock
	repo        *employeeMock.MockRepository
	historyRepo *historyMock.MockRepository
	tracker     *historyMock.MockTracker
	counter     *fakeCounter
	outbox      *kafkaMock.MockOutboxRepository
	service     employee.Service
}

func setupServiceTest(t *testing.T, rdb *redis.Client) *serviceDeps {
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := employeeMock.NewMockRepository(ctrl)
	historyRepo := historyMock.NewMockRepository(ctrl)
	tracker := historyMock.NewMockTracker(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	counterRepo := &fakeCounter{next: 7}

	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox).AnyTimes()

	return &serviceDeps{
		sqlMock:     sqlMock,
		repo:        repo,
		historyRepo: historyRepo,
		tracker:     tracker,
		counter:     counterRepo,
		outbox:      outbox,
		service:     employee.NewService(gdb, repo, historyRepo, tracker, counterRepo, outbox, rdb),
	}
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a code and records the insert", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				e.ID = 7
				return nil
			})
		deps.tracker.EXPECT().
			RecordEmployeeChange(ctx, gomock.Any(), history.ChangeInsert, gomock.Nil(), gomock.Any()).
			Return(1, nil)

		var event kafka.OutboxEvent
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				event = e
				return nil
			})

		res, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name:     "山田 太郎",
			NameKana: strPtr("ヤマダ タロウ"),
			GroupID:  int64Ptr(3),
		})

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000007", res.EmployeeCode)
		assert.Equal(t, 1, deps.counter.calls)
		assert.Equal(t, "employee", event.AggregateType)
		assert.Equal(t, "7", event.AggregateID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("explicit code skips the counter", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.tracker.EXPECT().
			RecordEmployeeChange(ctx, gomock.Any(), history.ChangeInsert, gomock.Nil(), gomock.Any()).
			Return(1, nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		res, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeCode: "STAFF-42",
			Name:         "山田 太郎",
		})

		assert.NoError(t, err)
		assert.Equal(t, "STAFF-42", res.EmployeeCode)
		assert.Zero(t, deps.counter.calls)
	})

	t.Run("invalid assignment date", func(t *testing.T) {
		deps := setupServiceTest(t, nil)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name:           "山田 太郎",
			AssignmentDate: strPtr("01-04-2026"),
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDate)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("hands before and after images to the tracker", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		existing := &employee.Employee{
			ID:      7,
			Name:    "山田 太郎",
			GroupID: int64Ptr(3),
		}
		deps.repo.EXPECT().FindByID(ctx, int64(7)).Return(existing, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		var before, after *history.EmployeeImage
		deps.tracker.EXPECT().
			RecordEmployeeChange(ctx, gomock.Any(), history.ChangeUpdate, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *gorm.DB, _ history.ChangeType, b, a *history.EmployeeImage) (int, error) {
				before, after = b, a
				return 2, nil
			})
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.Update(ctx, 7, employee.UpdateEmployeeRequest{
			Name:    "山田 太郎",
			GroupID: int64Ptr(5),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), *before.GroupID)
		assert.Equal(t, int64(5), *after.GroupID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().FindByID(ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 99, employee.UpdateEmployeeRequest{Name: "x"})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t, nil)
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	existing := &employee.Employee{ID: 7, Name: "山田 太郎"}
	deps.repo.EXPECT().FindByID(ctx, int64(7)).Return(existing, nil)
	recorded := deps.tracker.EXPECT().
		RecordEmployeeChange(ctx, gomock.Any(), history.ChangeDelete, gomock.Any(), gomock.Nil()).
		Return(3, nil)
	// the history record lands before the row is removed
	deps.repo.EXPECT().Delete(ctx, int64(7)).Return(nil).After(recorded)
	deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	assert.NoError(t, deps.service.Delete(ctx, 7))
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestService_GetByID_AsOf(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t, nil)

	existing := &employee.Employee{ID: 7, Name: "山田 花子", NameKana: strPtr("ヤマダ ハナコ")}
	deps.repo.EXPECT().FindByID(ctx, int64(7)).Return(existing, nil)

	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	deps.historyRepo.EXPECT().
		FindNameRecordAt(ctx, int64(7), asOf).
		Return(&history.NameRecord{Name: "山田 太郎", NameKana: strPtr("ヤマダ タロウ")}, nil)

	res, err := deps.service.GetByID(ctx, 7, &asOf)

	assert.NoError(t, err)
	assert.Equal(t, "山田 太郎", res.Name)
	assert.Equal(t, "ヤマダ タロウ", *res.NameKana)
}

func TestService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss loads from the database and fills the cache", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		deps := setupServiceTest(t, rdb)

		rows := []employee.Employee{
			{ID: 1, Name: "佐藤"},
			{ID: 2, Name: "鈴木"},
		}
		expected := []employee.EmployeeOption{{ID: 1, Name: "佐藤"}, {ID: 2, Name: "鈴木"}}
		payload, _ := json.Marshal(expected)

		redisMock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.repo.EXPECT().FindOptions(ctx).Return(rows, nil)
		redisMock.ExpectSet(employee.EmployeeOptionsKey, payload, time.Hour).SetVal("OK")

		res, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, res)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		deps := setupServiceTest(t, rdb)

		cached := []employee.EmployeeOption{{ID: 1, Name: "佐藤"}}
		payload, _ := json.Marshal(cached)
		redisMock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(payload))

		res, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, cached, res)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
