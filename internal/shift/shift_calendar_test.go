package shift_test

import (
	"context"
	"testing"
	"time"

	"go-shift-admin/internal/shift"
	shifterrors "go-shift-admin/internal/shift/errors"

	"github.com/stretchr/testify/assert"
)

func TestService_GetCalendar(t *testing.T) {
	ctx := context.Background()

	monthStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("probe row decides hasMore", func(t *testing.T) {
		deps := setupServiceTest(t)

		group := int64(3)
		roster := []shift.EmployeeRef{
			{ID: 1, Name: "佐藤", GroupID: &group},
			{ID: 2, Name: "鈴木", GroupID: &group},
			{ID: 3, Name: "高橋", GroupID: &group}, // the probe row
		}

		deps.repo.EXPECT().
			CountCalendarEmployees(ctx, nilGroupID(), "", monthStart).
			Return(int64(5), nil)
		deps.repo.EXPECT().
			ListCalendarEmployees(ctx, nilGroupID(), "", monthStart, 0, 3).
			Return(roster, nil)

		start := time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)
		deps.repo.EXPECT().
			FindByEmployeesAndRange(ctx, []int64{1, 2}, monthStart, monthEnd).
			Return([]shift.Shift{
				{ID: 10, EmployeeID: 1, ShiftDate: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), ShiftCode: strPtr("A"), StartTime: &start},
				{ID: 11, EmployeeID: 1, ShiftDate: time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), IsHoliday: true},
			}, nil)

		res, meta, err := deps.service.GetCalendar(ctx, shift.CalendarQuery{
			Month:    "2026-01",
			Page:     1,
			PageSize: 2,
		})

		assert.NoError(t, err)
		assert.Equal(t, "2026-01", res.Month)
		assert.Len(t, res.Days, 31)
		assert.Equal(t, "2026-01-01", res.Days[0])
		assert.Equal(t, "2026-01-31", res.Days[30])

		// the probe row is trimmed from the page
		assert.Len(t, res.Employees, 2)
		assert.Equal(t, int64(1), res.Employees[0].EmployeeID)

		cell, ok := res.Employees[0].Shifts["2026-01-05"]
		assert.True(t, ok)
		assert.Equal(t, "A", *cell.ShiftCode)
		assert.Equal(t, "09:00", *cell.StartTime)
		assert.True(t, res.Employees[0].Shifts["2026-01-06"].IsHoliday)

		// employees without shifts still get an empty, non-nil grid
		assert.NotNil(t, res.Employees[1].Shifts)
		assert.Empty(t, res.Employees[1].Shifts)

		assert.Equal(t, int64(5), meta.Total)
		assert.True(t, meta.HasMore)
		assert.Equal(t, 2, meta.NextPage)
		assert.Equal(t, 2, meta.PageSize)
	})

	t.Run("last page has no probe row", func(t *testing.T) {
		deps := setupServiceTest(t)

		roster := []shift.EmployeeRef{{ID: 4, Name: "田中"}}
		deps.repo.EXPECT().
			CountCalendarEmployees(ctx, nilGroupID(), "", monthStart).
			Return(int64(5), nil)
		deps.repo.EXPECT().
			ListCalendarEmployees(ctx, nilGroupID(), "", monthStart, 4, 3).
			Return(roster, nil)
		deps.repo.EXPECT().
			FindByEmployeesAndRange(ctx, []int64{4}, monthStart, monthEnd).
			Return(nil, nil)

		res, meta, err := deps.service.GetCalendar(ctx, shift.CalendarQuery{
			Month:    "2026-01",
			Page:     3,
			PageSize: 2,
		})

		assert.NoError(t, err)
		assert.Len(t, res.Employees, 1)
		assert.False(t, meta.HasMore)
		assert.Zero(t, meta.NextPage)
	})

	t.Run("name search narrows roster and total", func(t *testing.T) {
		deps := setupServiceTest(t)

		roster := []shift.EmployeeRef{{ID: 1, Name: "佐藤", NameKana: strPtr("さとう")}}
		deps.repo.EXPECT().
			CountCalendarEmployees(ctx, nilGroupID(), "さと", monthStart).
			Return(int64(1), nil)
		deps.repo.EXPECT().
			ListCalendarEmployees(ctx, nilGroupID(), "さと", monthStart, 0, 3).
			Return(roster, nil)
		deps.repo.EXPECT().
			FindByEmployeesAndRange(ctx, []int64{1}, monthStart, monthEnd).
			Return(nil, nil)

		res, meta, err := deps.service.GetCalendar(ctx, shift.CalendarQuery{
			Month:    "2026-01",
			Search:   "さと",
			Page:     1,
			PageSize: 2,
		})

		assert.NoError(t, err)
		assert.Len(t, res.Employees, 1)
		assert.Equal(t, int64(1), meta.Total)
		assert.False(t, meta.HasMore)
	})

	t.Run("invalid month", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, _, err := deps.service.GetCalendar(ctx, shift.CalendarQuery{Month: "January 2026"})
		assert.ErrorIs(t, err, shifterrors.ErrInvalidMonth)
	})
}

// nilGroupID is the literal expectation value for an unfiltered roster.
func nilGroupID() *int64 { return nil }
