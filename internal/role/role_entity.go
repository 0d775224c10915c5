package role

import "time"

// Role types. POSITION roles double as job positions on the employee record.
const (
	TypeFunction  = "FUNCTION"
	TypeAuthority = "AUTHORITY"
	TypePosition  = "POSITION"
)

type FunctionRole struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RoleCode  string    `gorm:"column:role_code;type:varchar(20);not null;uniqueIndex:uq_role_code"`
	RoleName  string    `gorm:"column:role_name;type:varchar(100);not null"`
	RoleType  string    `gorm:"column:role_type;type:varchar(20);not null"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (FunctionRole) TableName() string {
	return "function_roles"
}

func validRoleType(t string) bool {
	switch t {
	case TypeFunction, TypeAuthority, TypePosition:
		return true
	}
	return false
}
