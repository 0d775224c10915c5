package history

import "time"

// ShiftImage is the row snapshot handed to the tracker by every shift write
// path. Before-image is nil on insert, after-image is nil on delete.
type ShiftImage struct {
	ShiftID    int64
	EmployeeID int64
	ShiftDate  time.Time

	ShiftCode   *string
	StartTime   *time.Time
	EndTime     *time.Time
	IsHoliday   bool
	IsPaidLeave bool
	IsRemote    bool
}

// TrackedEqual reports whether all tracked shift fields match. Date and
// employee are identity, not tracked fields.
func (a *ShiftImage) TrackedEqual(b *ShiftImage) bool {
	return strPtrEqual(a.ShiftCode, b.ShiftCode) &&
		timePtrEqual(a.StartTime, b.StartTime) &&
		timePtrEqual(a.EndTime, b.EndTime) &&
		a.IsHoliday == b.IsHoliday &&
		a.IsPaidLeave == b.IsPaidLeave &&
		a.IsRemote == b.IsRemote
}

// EmployeeImage is the employee row snapshot for the tracker. Name fields
// feed the SCD, assignment fields feed the delta log.
type EmployeeImage struct {
	EmployeeID int64

	Name     string
	NameKana *string

	GroupID    *int64
	RoleID     *int64
	PositionID *int64
}

func (a *EmployeeImage) NameEqual(b *EmployeeImage) bool {
	return a.Name == b.Name && strPtrEqual(a.NameKana, b.NameKana)
}

func (a *EmployeeImage) AssignmentEqual(b *EmployeeImage) bool {
	return int64PtrEqual(a.GroupID, b.GroupID) &&
		int64PtrEqual(a.RoleID, b.RoleID) &&
		int64PtrEqual(a.PositionID, b.PositionID)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
