package history

import (
	"time"
)

type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// ShiftChange is one immutable fact in the shift delta log. ShiftID is a
// plain column, not a foreign key: history must stay queryable after the
// shift itself is deleted.
//
// The composite unique index on (shift_id, version) is what turns two
// concurrent writers racing on the same shift into a serialization failure
// for the loser instead of a duplicate version.
type ShiftChange struct {
	ID         int64      `gorm:"column:id;primaryKey;autoIncrement"`
	ShiftID    int64      `gorm:"column:shift_id;not null;uniqueIndex:uq_shift_change_version,priority:1"`
	EmployeeID int64      `gorm:"column:employee_id;not null;index:idx_shift_change_employee"`
	ShiftDate  time.Time  `gorm:"column:shift_date;type:date;not null"`
	ChangeType ChangeType `gorm:"column:change_type;type:varchar(10);not null"`
	Version    int        `gorm:"column:version;not null;uniqueIndex:uq_shift_change_version,priority:2"`

	OldShiftCode   *string    `gorm:"column:old_shift_code;type:varchar(20)"`
	OldStartTime   *time.Time `gorm:"column:old_start_time;type:time"`
	OldEndTime     *time.Time `gorm:"column:old_end_time;type:time"`
	OldIsHoliday   *bool      `gorm:"column:old_is_holiday"`
	OldIsPaidLeave *bool      `gorm:"column:old_is_paid_leave"`
	OldIsRemote    *bool      `gorm:"column:old_is_remote"`

	NewShiftCode   *string    `gorm:"column:new_shift_code;type:varchar(20)"`
	NewStartTime   *time.Time `gorm:"column:new_start_time;type:time"`
	NewEndTime     *time.Time `gorm:"column:new_end_time;type:time"`
	NewIsHoliday   *bool      `gorm:"column:new_is_holiday"`
	NewIsPaidLeave *bool      `gorm:"column:new_is_paid_leave"`
	NewIsRemote    *bool      `gorm:"column:new_is_remote"`

	ChangedAt time.Time `gorm:"column:changed_at;not null;autoCreateTime"`
}

func (ShiftChange) TableName() string {
	return "shift_change_history"
}

// EmployeeChange is the delta log for group/role/position assignment,
// versioned per employee id the same way ShiftChange is per shift id.
type EmployeeChange struct {
	ID         int64      `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID int64      `gorm:"column:employee_id;not null;uniqueIndex:uq_employee_change_version,priority:1"`
	ChangeType ChangeType `gorm:"column:change_type;type:varchar(10);not null"`
	Version    int        `gorm:"column:version;not null;uniqueIndex:uq_employee_change_version,priority:2"`

	OldGroupID    *int64 `gorm:"column:old_group_id"`
	OldRoleID     *int64 `gorm:"column:old_role_id"`
	OldPositionID *int64 `gorm:"column:old_position_id"`

	NewGroupID    *int64 `gorm:"column:new_group_id"`
	NewRoleID     *int64 `gorm:"column:new_role_id"`
	NewPositionID *int64 `gorm:"column:new_position_id"`

	ChangedAt time.Time `gorm:"column:changed_at;not null;autoCreateTime"`
}

func (EmployeeChange) TableName() string {
	return "employee_change_history"
}

// NameRecord is the slowly-changing dimension for the display name.
// Exactly one record per employee has is_current = true and valid_to = NULL
// while the employee exists; intervals never overlap.
type NameRecord struct {
	ID         int64      `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID int64      `gorm:"column:employee_id;not null;index:idx_name_history_employee"`
	Name       string     `gorm:"column:name;type:varchar(100);not null"`
	NameKana   *string    `gorm:"column:name_kana;type:varchar(100)"`
	ValidFrom  time.Time  `gorm:"column:valid_from;not null"`
	ValidTo    *time.Time `gorm:"column:valid_to"`
	IsCurrent  bool       `gorm:"column:is_current;not null;default:false"`
}

func (NameRecord) TableName() string {
	return "employee_name_history"
}
