package dashboard

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// RecentChangeRow is one shift log entry joined with the employee's current
// display name. The join is LEFT: history outlives the employee.
type RecentChangeRow struct {
	ID           int64
	ShiftID      int64
	EmployeeID   int64
	EmployeeName *string
	ShiftDate    time.Time
	ChangeType   string
	Version      int
	ChangedAt    time.Time
}

// DayShiftRow is one shift of the requested day with its roster context.
type DayShiftRow struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string
	GroupName    *string
	ShiftCode    *string
	StartTime    *time.Time
	EndTime      *time.Time
	IsHoliday    bool
	IsPaidLeave  bool
	IsRemote     bool
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountActiveEmployees(ctx context.Context, asOf time.Time) (int64, error)
	CountGroups(ctx context.Context) (int64, error)
	CountWorkingShifts(ctx context.Context, date time.Time) (int64, error)
	CountRemoteShifts(ctx context.Context, date time.Time) (int64, error)
	RecentShiftChanges(ctx context.Context, limit int) ([]RecentChangeRow, error)
	ListDayShifts(ctx context.Context, date time.Time) ([]DayShiftRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Table("employees").Count(&total).Error
	return total, err
}

func (r *repository) CountActiveEmployees(ctx context.Context, asOf time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("termination_date IS NULL OR termination_date >= ?", asOf.Format("2006-01-02")).
		Count(&total).Error
	return total, err
}

func (r *repository) CountGroups(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Table("groups").Count(&total).Error
	return total, err
}

// CountWorkingShifts counts the day's shifts that actually put someone on
// duty: a start time is set and the day is not marked a holiday.
func (r *repository) CountWorkingShifts(ctx context.Context, date time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("shifts").
		Where("shift_date = ?", date.Format("2006-01-02")).
		Where("start_time IS NOT NULL").
		Where("is_holiday = ?", false).
		Count(&total).Error
	return total, err
}

func (r *repository) CountRemoteShifts(ctx context.Context, date time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("shifts").
		Where("shift_date = ?", date.Format("2006-01-02")).
		Where("is_remote = ?", true).
		Count(&total).Error
	return total, err
}

func (r *repository) RecentShiftChanges(ctx context.Context, limit int) ([]RecentChangeRow, error) {
	query := `
SELECT
	h.id,
	h.shift_id,
	h.employee_id,
	e.name AS employee_name,
	h.shift_date,
	h.change_type,
	h.version,
	h.changed_at
FROM shift_change_history h
LEFT JOIN employees e ON e.id = h.employee_id
ORDER BY h.changed_at DESC, h.id DESC
LIMIT ?
`
	var rows []RecentChangeRow
	err := r.db.WithContext(ctx).Raw(query, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListDayShifts(ctx context.Context, date time.Time) ([]DayShiftRow, error) {
	query := `
SELECT
	s.id,
	s.employee_id,
	e.name AS employee_name,
	g.name AS group_name,
	s.shift_code,
	s.start_time,
	s.end_time,
	s.is_holiday,
	s.is_paid_leave,
	s.is_remote
FROM shifts s
JOIN employees e ON e.id = s.employee_id
LEFT JOIN groups g ON g.id = e.group_id
WHERE s.shift_date = ?
ORDER BY e.name_kana ASC NULLS LAST, e.name ASC, s.id ASC
`
	var rows []DayShiftRow
	err := r.db.WithContext(ctx).Raw(query, date.Format("2006-01-02")).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
