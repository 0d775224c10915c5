package history

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ChangeFilter narrows the shift history listing.
type ChangeFilter struct {
	ShiftID    *int64
	EmployeeID *int64
}

//go:generate mockgen -source=history_repo.go -destination=mock/history_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	NextShiftVersion(ctx context.Context, shiftID int64) (int, error)
	CreateShiftChange(ctx context.Context, rec *ShiftChange) error
	FindShiftChanges(ctx context.Context, filter ChangeFilter, page, pageSize int) ([]ShiftChange, int64, error)
	FindShiftVersions(ctx context.Context, shiftID int64) ([]ShiftChange, error)
	FindShiftVersion(ctx context.Context, shiftID int64, version int) (*ShiftChange, error)
	DeleteShiftChange(ctx context.Context, id int64) error

	NextEmployeeVersion(ctx context.Context, employeeID int64) (int, error)
	CreateEmployeeChange(ctx context.Context, rec *EmployeeChange) error
	FindEmployeeChanges(ctx context.Context, employeeID int64) ([]EmployeeChange, error)

	CreateNameRecord(ctx context.Context, rec *NameRecord) error
	CloseCurrentNameRecord(ctx context.Context, employeeID int64, at time.Time) error
	FindNameRecords(ctx context.Context, employeeID int64) ([]NameRecord, error)
	FindNameRecordAt(ctx context.Context, employeeID int64, at time.Time) (*NameRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository bound to the caller's transaction so that
// history writes commit or roll back together with the state write.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// NextShiftVersion allocates max(version)+1 for a shift inside the caller's
// transaction. Two transactions racing on the same shift can both read the
// same max; the unique index on (shift_id, version) then fails the second
// insert, which surfaces as a retryable conflict to the caller.
func (r *repository) NextShiftVersion(ctx context.Context, shiftID int64) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(version), 0) + 1
		FROM shift_change_history
		WHERE shift_id = ?
	`, shiftID).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *repository) CreateShiftChange(ctx context.Context, rec *ShiftChange) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindShiftChanges(ctx context.Context, filter ChangeFilter, page, pageSize int) ([]ShiftChange, int64, error) {
	q := r.db.WithContext(ctx).Model(&ShiftChange{})
	if filter.ShiftID != nil {
		q = q.Where("shift_id = ?", *filter.ShiftID)
	}
	if filter.EmployeeID != nil {
		q = q.Where("employee_id = ?", *filter.EmployeeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []ShiftChange
	err := q.
		Order("changed_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindShiftVersions(ctx context.Context, shiftID int64) ([]ShiftChange, error) {
	var rows []ShiftChange
	err := r.db.WithContext(ctx).
		Where("shift_id = ?", shiftID).
		Order("version DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindShiftVersion(ctx context.Context, shiftID int64, version int) (*ShiftChange, error) {
	var rec ShiftChange
	err := r.db.WithContext(ctx).
		Where("shift_id = ?", shiftID).
		Where("version = ?", version).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) DeleteShiftChange(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&ShiftChange{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) NextEmployeeVersion(ctx context.Context, employeeID int64) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(version), 0) + 1
		FROM employee_change_history
		WHERE employee_id = ?
	`, employeeID).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *repository) CreateEmployeeChange(ctx context.Context, rec *EmployeeChange) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindEmployeeChanges(ctx context.Context, employeeID int64) ([]EmployeeChange, error) {
	var rows []EmployeeChange
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("version DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateNameRecord(ctx context.Context, rec *NameRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// CloseCurrentNameRecord archives the open SCD record. It must run in the
// same transaction as the insert of the replacement record; a commit between
// the two would be observable as "no current name".
func (r *repository) CloseCurrentNameRecord(ctx context.Context, employeeID int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&NameRecord{}).
		Where("employee_id = ?", employeeID).
		Where("is_current = ?", true).
		Updates(map[string]interface{}{
			"valid_to":   at,
			"is_current": false,
		}).Error
}

func (r *repository) FindNameRecords(ctx context.Context, employeeID int64) ([]NameRecord, error) {
	var rows []NameRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("valid_from DESC").
		Find(&rows).Error
	return rows, err
}

// FindNameRecordAt resolves the name valid at a point in time: the record
// whose interval contains `at`, where the current record's interval is
// open-ended.
func (r *repository) FindNameRecordAt(ctx context.Context, employeeID int64, at time.Time) (*NameRecord, error) {
	var rec NameRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("valid_from <= ?", at).
		Where("valid_to > ? OR (is_current = ? AND valid_to IS NULL)", at, true).
		Order("valid_from DESC").
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
