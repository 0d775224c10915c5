package shift

import (
	"context"
	"time"

	shifterrors "go-shift-admin/internal/shift/errors"
)

const (
	defaultTablePageSize = 50
	maxTablePageSize     = 200
)

// GetTable lists one month of shifts as flat rows, date first, then the
// roster display order within each day.
func (s *service) GetTable(ctx context.Context, q TableQuery) ([]ShiftResponse, int64, error) {
	monthStart, err := time.Parse("2006-01", q.Month)
	if err != nil {
		return nil, 0, shifterrors.ErrInvalidMonth
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultTablePageSize
	}
	if pageSize > maxTablePageSize {
		pageSize = maxTablePageSize
	}

	rows, total, err := s.repo.ListMonthShifts(ctx, monthStart, monthEnd, q.GroupID, q.EmployeeID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	res := make([]ShiftResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, total, nil
}
