package employee

import (
	"time"

	"go-shift-admin/internal/history"
)

type Employee struct {
	ID              int64      `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeCode    string     `gorm:"column:employee_code;type:varchar(20);not null;uniqueIndex:uq_employee_code"`
	Name            string     `gorm:"column:name;type:varchar(100);not null"`
	NameKana        *string    `gorm:"column:name_kana;type:varchar(100)"`
	GroupID         *int64     `gorm:"column:group_id;index"`
	RoleID          *int64     `gorm:"column:role_id"`
	PositionID      *int64     `gorm:"column:position_id"`
	AssignmentDate  *time.Time `gorm:"column:assignment_date;type:date"`
	TerminationDate *time.Time `gorm:"column:termination_date;type:date"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`

	Group    *GroupRef `gorm:"foreignKey:GroupID;references:ID"`
	Role     *RoleRef  `gorm:"foreignKey:RoleID;references:ID"`
	Position *RoleRef  `gorm:"foreignKey:PositionID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

// snapshot captures the fields the history tracker watches: the name pair
// for the SCD and the assignment triple for the delta log.
func (e *Employee) snapshot() *history.EmployeeImage {
	img := &history.EmployeeImage{
		EmployeeID: e.ID,
		Name:       e.Name,
	}
	if e.NameKana != nil {
		v := *e.NameKana
		img.NameKana = &v
	}
	if e.GroupID != nil {
		v := *e.GroupID
		img.GroupID = &v
	}
	if e.RoleID != nil {
		v := *e.RoleID
		img.RoleID = &v
	}
	if e.PositionID != nil {
		v := *e.PositionID
		img.PositionID = &v
	}
	return img
}

type GroupRef struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (GroupRef) TableName() string {
	return "groups"
}

// RoleRef covers both roles and positions: positions are function roles
// with role_type POSITION.
type RoleRef struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	RoleCode string `gorm:"column:role_code"`
	RoleName string `gorm:"column:role_name"`
	RoleType string `gorm:"column:role_type"`
}

func (RoleRef) TableName() string {
	return "function_roles"
}
