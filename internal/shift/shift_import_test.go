package shift_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go-shift-admin/internal/history"
	"go-shift-admin/internal/shift"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_BulkImport(t *testing.T) {
	ctx := context.Background()

	t.Run("creates, updates and skips row by row", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		known := map[int64]struct{}{1: {}, 2: {}, 3: {}}
		deps.repo.EXPECT().FindEmployeeIDs(ctx, gomock.Any()).Return(known, nil)

		existing := &shift.Shift{
			ID:         10,
			EmployeeID: 2,
			ShiftDate:  time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			ShiftCode:  strPtr("A"),
		}
		deps.repo.EXPECT().
			FindByEmployeeAndDate(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, employeeID int64, _ time.Time) (*shift.Shift, error) {
				if employeeID == 2 || employeeID == 3 {
					row := *existing
					row.EmployeeID = employeeID
					return &row, nil
				}
				return nil, gorm.ErrRecordNotFound
			}).
			Times(3)

		// employee 1: new row
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		// employee 2: changed row
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		// employee 3: identical row, version 0, no write

		deps.tracker.EXPECT().
			RecordShiftChange(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *gorm.DB, op history.ChangeType, before, after *history.ShiftImage) (int, error) {
				if op == history.ChangeInsert {
					return 1, nil
				}
				if before.TrackedEqual(after) {
					return 0, nil
				}
				return 2, nil
			}).
			Times(3)

		summary, err := deps.service.BulkImport(ctx, shift.BulkImportRequest{
			Rows: []shift.ImportRow{
				{EmployeeID: 1, ShiftDate: "2026-01-15", ShiftFields: shift.ShiftFields{ShiftCode: strPtr("A")}},
				{EmployeeID: 2, ShiftDate: "2026-01-15", ShiftFields: shift.ShiftFields{ShiftCode: strPtr("B")}},
				{EmployeeID: 3, ShiftDate: "2026-01-15", ShiftFields: shift.ShiftFields{ShiftCode: strPtr("A")}},
				{EmployeeID: 9, ShiftDate: "2026-01-15", ShiftFields: shift.ShiftFields{ShiftCode: strPtr("C")}},
				{EmployeeID: 1, ShiftDate: "bad-date"},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, summary.Total)
		assert.Equal(t, 1, summary.Created)
		assert.Equal(t, 1, summary.Updated)
		assert.Equal(t, 1, summary.Skipped)
		assert.Equal(t, 2, summary.Failed)

		indices := make([]int, len(summary.Errors))
		for i, e := range summary.Errors {
			indices[i] = e.RowIndex
		}
		assert.Contains(t, indices, 3) // unknown employee
		assert.Contains(t, indices, 4) // unparseable date
	})

	t.Run("a failing batch does not stop the pipeline", func(t *testing.T) {
		deps := setupServiceTest(t)

		// 250 valid rows: batch one holds rows 0..199, batch two 200..249.
		// Employee 13 sits in batch one and poisons it.
		rows := make([]shift.ImportRow, 250)
		known := make(map[int64]struct{}, 250)
		for i := range rows {
			id := int64(i + 1)
			rows[i] = shift.ImportRow{
				EmployeeID:  id,
				ShiftDate:   fmt.Sprintf("2026-01-%02d", i%28+1),
				ShiftFields: shift.ShiftFields{ShiftCode: strPtr("A")},
			}
			known[id] = struct{}{}
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().FindEmployeeIDs(ctx, gomock.Any()).Return(known, nil)
		deps.repo.EXPECT().
			FindByEmployeeAndDate(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, employeeID int64, _ time.Time) (*shift.Shift, error) {
				if employeeID == 13 {
					return nil, errors.New("connection reset")
				}
				return nil, gorm.ErrRecordNotFound
			}).
			AnyTimes()
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).AnyTimes()
		deps.tracker.EXPECT().
			RecordShiftChange(ctx, gomock.Any(), history.ChangeInsert, gomock.Nil(), gomock.Any()).
			Return(1, nil).
			AnyTimes()

		summary, err := deps.service.BulkImport(ctx, shift.BulkImportRequest{Rows: rows})

		assert.NoError(t, err)
		assert.Equal(t, 250, summary.Total)
		assert.Equal(t, 50, summary.Created)
		// Failed counts every row of the rolled-back batch; the reported
		// list is capped for display.
		assert.Equal(t, 200, summary.Failed)
		assert.Len(t, summary.Errors, 100)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("honors the requested batch size", func(t *testing.T) {
		deps := setupServiceTest(t)

		// four new rows at batch size two: two transactions
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		rows := make([]shift.ImportRow, 4)
		known := make(map[int64]struct{}, 4)
		for i := range rows {
			id := int64(i + 1)
			rows[i] = shift.ImportRow{
				EmployeeID:  id,
				ShiftDate:   "2026-01-15",
				ShiftFields: shift.ShiftFields{ShiftCode: strPtr("A")},
			}
			known[id] = struct{}{}
		}

		deps.repo.EXPECT().FindEmployeeIDs(ctx, gomock.Any()).Return(known, nil)
		deps.repo.EXPECT().
			FindByEmployeeAndDate(ctx, gomock.Any(), gomock.Any()).
			Return(nil, gorm.ErrRecordNotFound).
			Times(4)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(4)
		deps.tracker.EXPECT().
			RecordShiftChange(ctx, gomock.Any(), history.ChangeInsert, gomock.Nil(), gomock.Any()).
			Return(1, nil).
			Times(4)

		summary, err := deps.service.BulkImport(ctx, shift.BulkImportRequest{
			Rows:      rows,
			BatchSize: 2,
		})

		assert.NoError(t, err)
		assert.Equal(t, 4, summary.Created)
		assert.Zero(t, summary.Failed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("empty request", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.BulkImport(ctx, shift.BulkImportRequest{})
		assert.Error(t, err)
	})
}
