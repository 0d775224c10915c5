package shift

import (
	"time"

	"go-shift-admin/internal/history"
)

// Shift is the live row, one per employee per calendar day. Every mutation
// of a tracked field goes through the history tracker inside the same
// transaction.
type Shift struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID  int64      `gorm:"column:employee_id;not null;uniqueIndex:uq_shift_employee_date,priority:1"`
	ShiftDate   time.Time  `gorm:"column:shift_date;type:date;not null;uniqueIndex:uq_shift_employee_date,priority:2;index:idx_shift_date"`
	ShiftCode   *string    `gorm:"column:shift_code;type:varchar(20)"`
	StartTime   *time.Time `gorm:"column:start_time;type:time"`
	EndTime     *time.Time `gorm:"column:end_time;type:time"`
	IsHoliday   bool       `gorm:"column:is_holiday;not null;default:false"`
	IsPaidLeave bool       `gorm:"column:is_paid_leave;not null;default:false"`
	IsRemote    bool       `gorm:"column:is_remote;not null;default:false"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Shift) TableName() string {
	return "shifts"
}

// snapshot captures the tracked fields as an immutable image for the
// history tracker. Taken before and after every write.
func (s *Shift) snapshot() *history.ShiftImage {
	img := &history.ShiftImage{
		ShiftID:     s.ID,
		EmployeeID:  s.EmployeeID,
		ShiftDate:   s.ShiftDate,
		IsHoliday:   s.IsHoliday,
		IsPaidLeave: s.IsPaidLeave,
		IsRemote:    s.IsRemote,
	}
	if s.ShiftCode != nil {
		v := *s.ShiftCode
		img.ShiftCode = &v
	}
	if s.StartTime != nil {
		v := *s.StartTime
		img.StartTime = &v
	}
	if s.EndTime != nil {
		v := *s.EndTime
		img.EndTime = &v
	}
	return img
}

// EmployeeRef is a read-only projection of the employees table used for
// joins and the calendar roster.
type EmployeeRef struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	Name            string     `gorm:"column:name"`
	NameKana        *string    `gorm:"column:name_kana"`
	GroupID         *int64     `gorm:"column:group_id"`
	TerminationDate *time.Time `gorm:"column:termination_date"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
