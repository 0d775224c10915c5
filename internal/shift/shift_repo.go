package shift

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, s *Shift) error
	Update(ctx context.Context, s *Shift) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Shift, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Shift, error)

	FindEmployeeIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error)
	CountCalendarEmployees(ctx context.Context, groupID *int64, search string, asOf time.Time) (int64, error)
	ListCalendarEmployees(ctx context.Context, groupID *int64, search string, asOf time.Time, offset, limit int) ([]EmployeeRef, error)
	FindByEmployeesAndRange(ctx context.Context, employeeIDs []int64, from, to time.Time) ([]Shift, error)
	ListMonthShifts(ctx context.Context, from, to time.Time, groupID, employeeID *int64, offset, limit int) ([]Shift, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository bound to the caller's transaction.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Shift{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("shift_date = ?", date.Format("2006-01-02")).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindEmployeeIDs returns which of the given ids exist, as a set. The
// import pipeline uses it to reject unknown employees row by row instead
// of failing a whole batch on a foreign key violation.
func (r *repository) FindEmployeeIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	if len(ids) == 0 {
		return map[int64]struct{}{}, nil
	}

	var found []int64
	err := r.db.WithContext(ctx).
		Model(&EmployeeRef{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}

	set := make(map[int64]struct{}, len(found))
	for _, id := range found {
		set[id] = struct{}{}
	}
	return set, nil
}

func (r *repository) calendarEmployeeQuery(ctx context.Context, groupID *int64, search string, asOf time.Time) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&EmployeeRef{}).
		Where("termination_date IS NULL OR termination_date >= ?", asOf.Format("2006-01-02"))
	if groupID != nil {
		q = q.Where("group_id = ?", *groupID)
	}
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("name ILIKE ? OR name_kana ILIKE ?", pattern, pattern)
	}
	return q
}

func (r *repository) CountCalendarEmployees(ctx context.Context, groupID *int64, search string, asOf time.Time) (int64, error) {
	var total int64
	err := r.calendarEmployeeQuery(ctx, groupID, search, asOf).Count(&total).Error
	return total, err
}

// ListCalendarEmployees pages the roster in display order. Callers ask for
// one row past the page size to learn whether another page exists without
// a second count query.
func (r *repository) ListCalendarEmployees(ctx context.Context, groupID *int64, search string, asOf time.Time, offset, limit int) ([]EmployeeRef, error) {
	var rows []EmployeeRef
	err := r.calendarEmployeeQuery(ctx, groupID, search, asOf).
		Order("group_id ASC NULLS LAST").
		Order("name_kana ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// ListMonthShifts pages the month's shifts as flat rows for the table view,
// ordered by date then by employee display order.
func (r *repository) ListMonthShifts(ctx context.Context, from, to time.Time, groupID, employeeID *int64, offset, limit int) ([]Shift, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Shift{}).
		Joins("JOIN employees ON employees.id = shifts.employee_id").
		Where("shifts.shift_date >= ? AND shifts.shift_date < ?", from.Format("2006-01-02"), to.Format("2006-01-02"))
	if groupID != nil {
		q = q.Where("employees.group_id = ?", *groupID)
	}
	if employeeID != nil {
		q = q.Where("shifts.employee_id = ?", *employeeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Shift
	err := q.
		Preload("Employee").
		Order("shifts.shift_date ASC").
		Order("employees.name_kana ASC").
		Order("shifts.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindByEmployeesAndRange(ctx context.Context, employeeIDs []int64, from, to time.Time) ([]Shift, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	var rows []Shift
	err := r.db.WithContext(ctx).
		Where("employee_id IN ?", employeeIDs).
		Where("shift_date >= ? AND shift_date < ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("employee_id ASC, shift_date ASC").
		Find(&rows).Error
	return rows, err
}
