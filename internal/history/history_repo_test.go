package history_test

import (
	"context"
	"testing"
	"time"

	"go-shift-admin/internal/history"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (history.Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	return history.NewRepository(gdb), mock
}

func TestRepository_NextShiftVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("first change starts at 1", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(`SELECT COALESCE\(MAX\(version\), 0\) \+ 1`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1))

		next, err := repo.NextShiftVersion(ctx, 42)

		assert.NoError(t, err)
		assert.Equal(t, 1, next)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("continues from the current max", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(`SELECT COALESCE\(MAX\(version\), 0\) \+ 1`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(7))

		next, err := repo.NextShiftVersion(ctx, 42)

		assert.NoError(t, err)
		assert.Equal(t, 7, next)
	})
}

func TestRepository_NextEmployeeVersion(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(version\), 0\) \+ 1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))

	next, err := repo.NextEmployeeVersion(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 3, next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteShiftChange(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the record", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectExec(`DELETE FROM "shift_change_history"`).
			WithArgs(int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteShiftChange(ctx, 9))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows affected maps to not found", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectExec(`DELETE FROM "shift_change_history"`).
			WithArgs(int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteShiftChange(ctx, 9)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestRepository_FindShiftVersion_NotFound(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(`SELECT \* FROM "shift_change_history"`).
		WithArgs(int64(42), 99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "shift_id", "version"}))

	_, err := repo.FindShiftVersion(context.Background(), 42, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_CloseCurrentNameRecord(t *testing.T) {
	repo, mock := setupRepoTest(t)

	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// map updates are applied in sorted key order
	mock.ExpectExec(`UPDATE "employee_name_history" SET`).
		WithArgs(false, at, int64(7), true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.CloseCurrentNameRecord(context.Background(), 7, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
