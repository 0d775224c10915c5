package shift

import "time"

// ShiftFields is the tracked field set shared by create, update and import
// payloads. Times are HH:MM strings on the wire.
type ShiftFields struct {
	ShiftCode   *string `json:"shift_code" binding:"omitempty,max=20"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	IsHoliday   bool    `json:"is_holiday"`
	IsPaidLeave bool    `json:"is_paid_leave"`
	IsRemote    bool    `json:"is_remote"`
}

type CreateShiftRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required"`
	ShiftDate  string `json:"shift_date" binding:"required"`
	ShiftFields
}

type UpdateShiftRequest struct {
	ShiftFields
}

type ShiftResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	ShiftDate    string  `json:"shift_date"`
	ShiftCode    *string `json:"shift_code"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	IsHoliday    bool    `json:"is_holiday"`
	IsPaidLeave  bool    `json:"is_paid_leave"`
	IsRemote     bool    `json:"is_remote"`
	UpdatedAt    string  `json:"updated_at"`
}

// CalendarQuery selects one month of the roster. Employees are the paging
// unit; days within the month are always complete. Search matches the
// employee name or kana, case-insensitive.
type CalendarQuery struct {
	Month    string
	GroupID  *int64
	Search   string
	Page     int
	PageSize int
}

// ShiftCell is one day cell in the calendar grid.
type ShiftCell struct {
	ID          int64   `json:"id"`
	ShiftCode   *string `json:"shift_code"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	IsHoliday   bool    `json:"is_holiday"`
	IsPaidLeave bool    `json:"is_paid_leave"`
	IsRemote    bool    `json:"is_remote"`
}

type CalendarEmployee struct {
	EmployeeID int64                `json:"employee_id"`
	Name       string               `json:"name"`
	GroupID    *int64               `json:"group_id"`
	Shifts     map[string]ShiftCell `json:"shifts"`
}

type CalendarResponse struct {
	Month     string             `json:"month"`
	Days      []string           `json:"days"`
	Employees []CalendarEmployee `json:"employees"`
}

// BulkEditRequest applies one field set to a selection of shifts. Used by
// the calendar's multi-select edit.
type BulkEditRequest struct {
	ShiftIDs []int64 `json:"shift_ids" binding:"required,min=1"`
	ShiftFields
}

type BulkEditError struct {
	ShiftID int64  `json:"shift_id"`
	Message string `json:"message"`
}

type BulkEditSummary struct {
	Total   int             `json:"total"`
	Updated int             `json:"updated"`
	Skipped int             `json:"skipped"`
	Failed  int             `json:"failed"`
	Errors  []BulkEditError `json:"errors"`
}

// TableQuery selects one month of shifts as flat rows.
type TableQuery struct {
	Month      string
	GroupID    *int64
	EmployeeID *int64
	Page       int
	PageSize   int
}

type ImportRow struct {
	EmployeeID int64  `json:"employee_id" binding:"required"`
	ShiftDate  string `json:"shift_date" binding:"required"`
	ShiftFields
}

// BulkImportRequest carries the uploaded roster. BatchSize bounds how many
// rows share one transaction; larger batches hold locks longer, smaller
// ones commit more often. Zero means the default.
type BulkImportRequest struct {
	Rows      []ImportRow `json:"rows" binding:"required,min=1,dive"`
	BatchSize int         `json:"batch_size" binding:"omitempty,min=1"`
}

type ImportRowError struct {
	RowIndex int    `json:"row_index"`
	Message  string `json:"message"`
}

type ImportSummary struct {
	Total   int              `json:"total"`
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Skipped int              `json:"skipped"`
	Failed  int              `json:"failed"`
	Errors  []ImportRowError `json:"errors"`
}

func mapToResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:          s.ID,
		EmployeeID:  s.EmployeeID,
		ShiftDate:   s.ShiftDate.Format("2006-01-02"),
		ShiftCode:   s.ShiftCode,
		StartTime:   formatTimeOfDay(s.StartTime),
		EndTime:     formatTimeOfDay(s.EndTime),
		IsHoliday:   s.IsHoliday,
		IsPaidLeave: s.IsPaidLeave,
		IsRemote:    s.IsRemote,
		UpdatedAt:   s.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if s.Employee != nil {
		resp.EmployeeName = s.Employee.Name
	}
	return resp
}

func mapToCell(s Shift) ShiftCell {
	return ShiftCell{
		ID:          s.ID,
		ShiftCode:   s.ShiftCode,
		StartTime:   formatTimeOfDay(s.StartTime),
		EndTime:     formatTimeOfDay(s.EndTime),
		IsHoliday:   s.IsHoliday,
		IsPaidLeave: s.IsPaidLeave,
		IsRemote:    s.IsRemote,
	}
}

func formatTimeOfDay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format("15:04")
	return &v
}
