package shift

import (
	"context"
	"time"

	shifterrors "go-shift-admin/internal/shift/errors"
)

const (
	defaultCalendarPageSize = 20
	maxCalendarPageSize     = 100
)

// GetCalendar builds the month grid: the roster page on one axis, every day
// of the month on the other. One extra employee is fetched past the page
// size; its presence, not a count, decides hasMore.
func (s *service) GetCalendar(ctx context.Context, q CalendarQuery) (CalendarResponse, CalendarMeta, error) {
	monthStart, err := time.Parse("2006-01", q.Month)
	if err != nil {
		return CalendarResponse{}, CalendarMeta{}, shifterrors.ErrInvalidMonth
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultCalendarPageSize
	}
	if pageSize > maxCalendarPageSize {
		pageSize = maxCalendarPageSize
	}

	total, err := s.repo.CountCalendarEmployees(ctx, q.GroupID, q.Search, monthStart)
	if err != nil {
		return CalendarResponse{}, CalendarMeta{}, err
	}

	roster, err := s.repo.ListCalendarEmployees(ctx, q.GroupID, q.Search, monthStart, (page-1)*pageSize, pageSize+1)
	if err != nil {
		return CalendarResponse{}, CalendarMeta{}, err
	}

	hasMore := len(roster) > pageSize
	if hasMore {
		roster = roster[:pageSize]
	}

	ids := make([]int64, len(roster))
	for i, e := range roster {
		ids[i] = e.ID
	}

	rows, err := s.repo.FindByEmployeesAndRange(ctx, ids, monthStart, monthEnd)
	if err != nil {
		return CalendarResponse{}, CalendarMeta{}, err
	}

	byEmployee := make(map[int64]map[string]ShiftCell, len(roster))
	for _, row := range rows {
		day := row.ShiftDate.Format("2006-01-02")
		if byEmployee[row.EmployeeID] == nil {
			byEmployee[row.EmployeeID] = make(map[string]ShiftCell)
		}
		byEmployee[row.EmployeeID][day] = mapToCell(row)
	}

	res := CalendarResponse{
		Month:     q.Month,
		Days:      monthDays(monthStart, monthEnd),
		Employees: make([]CalendarEmployee, len(roster)),
	}
	for i, e := range roster {
		cells := byEmployee[e.ID]
		if cells == nil {
			cells = map[string]ShiftCell{}
		}
		res.Employees[i] = CalendarEmployee{
			EmployeeID: e.ID,
			Name:       e.Name,
			GroupID:    e.GroupID,
			Shifts:     cells,
		}
	}

	meta := CalendarMeta{
		Total:    total,
		HasMore:  hasMore,
		PageSize: pageSize,
	}
	if hasMore {
		meta.NextPage = page + 1
	}
	return res, meta, nil
}

func monthDays(from, to time.Time) []string {
	days := make([]string, 0, 31)
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format("2006-01-02"))
	}
	return days
}
