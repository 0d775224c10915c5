package history

import "time"

type ShiftFieldValues struct {
	ShiftCode   *string `json:"shift_code"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	IsHoliday   *bool   `json:"is_holiday"`
	IsPaidLeave *bool   `json:"is_paid_leave"`
	IsRemote    *bool   `json:"is_remote"`
}

type ShiftChangeResponse struct {
	ID         int64             `json:"id"`
	ShiftID    int64             `json:"shift_id"`
	EmployeeID int64             `json:"employee_id"`
	ShiftDate  string            `json:"shift_date"`
	ChangeType string            `json:"change_type"`
	Version    int               `json:"version"`
	OldValues  *ShiftFieldValues `json:"old_values"`
	NewValues  *ShiftFieldValues `json:"new_values"`
	ChangedAt  string            `json:"changed_at"`
}

type AssignmentValues struct {
	GroupID    *int64 `json:"group_id"`
	RoleID     *int64 `json:"role_id"`
	PositionID *int64 `json:"position_id"`
}

type EmployeeChangeResponse struct {
	ID         int64             `json:"id"`
	EmployeeID int64             `json:"employee_id"`
	ChangeType string            `json:"change_type"`
	Version    int               `json:"version"`
	OldValues  *AssignmentValues `json:"old_values"`
	NewValues  *AssignmentValues `json:"new_values"`
	ChangedAt  string            `json:"changed_at"`
}

type NameRecordResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	NameKana  *string `json:"name_kana,omitempty"`
	ValidFrom string  `json:"valid_from"`
	ValidTo   *string `json:"valid_to"`
	IsCurrent bool    `json:"is_current"`
}

type EmployeeHistoryResponse struct {
	EmployeeID  int64                    `json:"employee_id"`
	Assignments []EmployeeChangeResponse `json:"assignments"`
	Names       []NameRecordResponse     `json:"names"`
}

type RestoreRequest struct {
	Version int `json:"version" binding:"required,min=1"`
}

func mapShiftChange(r ShiftChange) ShiftChangeResponse {
	resp := ShiftChangeResponse{
		ID:         r.ID,
		ShiftID:    r.ShiftID,
		EmployeeID: r.EmployeeID,
		ShiftDate:  r.ShiftDate.Format("2006-01-02"),
		ChangeType: string(r.ChangeType),
		Version:    r.Version,
		ChangedAt:  r.ChangedAt.UTC().Format(time.RFC3339),
	}
	if r.ChangeType != ChangeInsert {
		resp.OldValues = &ShiftFieldValues{
			ShiftCode:   r.OldShiftCode,
			StartTime:   formatTimeOfDay(r.OldStartTime),
			EndTime:     formatTimeOfDay(r.OldEndTime),
			IsHoliday:   r.OldIsHoliday,
			IsPaidLeave: r.OldIsPaidLeave,
			IsRemote:    r.OldIsRemote,
		}
	}
	if r.ChangeType != ChangeDelete {
		resp.NewValues = &ShiftFieldValues{
			ShiftCode:   r.NewShiftCode,
			StartTime:   formatTimeOfDay(r.NewStartTime),
			EndTime:     formatTimeOfDay(r.NewEndTime),
			IsHoliday:   r.NewIsHoliday,
			IsPaidLeave: r.NewIsPaidLeave,
			IsRemote:    r.NewIsRemote,
		}
	}
	return resp
}

func mapEmployeeChange(r EmployeeChange) EmployeeChangeResponse {
	resp := EmployeeChangeResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		ChangeType: string(r.ChangeType),
		Version:    r.Version,
		ChangedAt:  r.ChangedAt.UTC().Format(time.RFC3339),
	}
	if r.ChangeType != ChangeInsert {
		resp.OldValues = &AssignmentValues{
			GroupID:    r.OldGroupID,
			RoleID:     r.OldRoleID,
			PositionID: r.OldPositionID,
		}
	}
	if r.ChangeType != ChangeDelete {
		resp.NewValues = &AssignmentValues{
			GroupID:    r.NewGroupID,
			RoleID:     r.NewRoleID,
			PositionID: r.NewPositionID,
		}
	}
	return resp
}

func mapNameRecord(r NameRecord) NameRecordResponse {
	resp := NameRecordResponse{
		ID:        r.ID,
		Name:      r.Name,
		NameKana:  r.NameKana,
		ValidFrom: r.ValidFrom.UTC().Format(time.RFC3339),
		IsCurrent: r.IsCurrent,
	}
	if r.ValidTo != nil {
		v := r.ValidTo.UTC().Format(time.RFC3339)
		resp.ValidTo = &v
	}
	return resp
}

func formatTimeOfDay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format("15:04")
	return &v
}
