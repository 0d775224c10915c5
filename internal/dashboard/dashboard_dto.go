package dashboard

import "time"

type RecentChangeResponse struct {
	ID           int64  `json:"id"`
	ShiftID      int64  `json:"shift_id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	ShiftDate    string `json:"shift_date"`
	ChangeType   string `json:"change_type"`
	Version      int    `json:"version"`
	ChangedAt    string `json:"changed_at"`
}

type StatsResponse struct {
	TotalEmployees  int64                  `json:"total_employees"`
	ActiveEmployees int64                  `json:"active_employees"`
	TotalGroups     int64                  `json:"total_groups"`
	TodayWorking    int64                  `json:"today_working"`
	TodayRemote     int64                  `json:"today_remote"`
	RecentChanges   []RecentChangeResponse `json:"recent_changes"`
}

type DayShiftResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	GroupName    *string `json:"group_name"`
	ShiftCode    *string `json:"shift_code"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	IsHoliday    bool    `json:"is_holiday"`
	IsPaidLeave  bool    `json:"is_paid_leave"`
	IsRemote     bool    `json:"is_remote"`
}

func mapRecentChange(row RecentChangeRow) RecentChangeResponse {
	res := RecentChangeResponse{
		ID:         row.ID,
		ShiftID:    row.ShiftID,
		EmployeeID: row.EmployeeID,
		ShiftDate:  row.ShiftDate.Format("2006-01-02"),
		ChangeType: row.ChangeType,
		Version:    row.Version,
		ChangedAt:  row.ChangedAt.UTC().Format(time.RFC3339),
	}
	if row.EmployeeName != nil {
		res.EmployeeName = *row.EmployeeName
	}
	return res
}

func mapDayShift(row DayShiftRow) DayShiftResponse {
	return DayShiftResponse{
		ID:           row.ID,
		EmployeeID:   row.EmployeeID,
		EmployeeName: row.EmployeeName,
		GroupName:    row.GroupName,
		ShiftCode:    row.ShiftCode,
		StartTime:    formatTimeOfDay(row.StartTime),
		EndTime:      formatTimeOfDay(row.EndTime),
		IsHoliday:    row.IsHoliday,
		IsPaidLeave:  row.IsPaidLeave,
		IsRemote:     row.IsRemote,
	}
}

func formatTimeOfDay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format("15:04")
	return &v
}
