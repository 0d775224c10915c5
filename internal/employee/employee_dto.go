package employee

import "time"

type CreateEmployeeRequest struct {
	EmployeeCode   string  `json:"employee_code" binding:"omitempty,max=20"`
	Name           string  `json:"name" binding:"required,max=100"`
	NameKana       *string `json:"name_kana" binding:"omitempty,max=100"`
	GroupID        *int64  `json:"group_id"`
	RoleID         *int64  `json:"role_id"`
	PositionID     *int64  `json:"position_id"`
	AssignmentDate *string `json:"assignment_date"`
}

type UpdateEmployeeRequest struct {
	Name            string  `json:"name" binding:"required,max=100"`
	NameKana        *string `json:"name_kana" binding:"omitempty,max=100"`
	GroupID         *int64  `json:"group_id"`
	RoleID          *int64  `json:"role_id"`
	PositionID      *int64  `json:"position_id"`
	AssignmentDate  *string `json:"assignment_date"`
	TerminationDate *string `json:"termination_date"`
}

type EmployeeResponse struct {
	ID              int64   `json:"id"`
	EmployeeCode    string  `json:"employee_code"`
	Name            string  `json:"name"`
	NameKana        *string `json:"name_kana"`
	GroupID         *int64  `json:"group_id"`
	RoleID          *int64  `json:"role_id"`
	PositionID      *int64  `json:"position_id"`
	GroupName       string  `json:"group_name,omitempty"`
	RoleName        string  `json:"role_name,omitempty"`
	PositionName    string  `json:"position_name,omitempty"`
	AssignmentDate  *string `json:"assignment_date"`
	TerminationDate *string `json:"termination_date"`
}

// EmployeeOption is the slim shape served to dropdowns, cached in Redis.
type EmployeeOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ListFilter struct {
	Search     string
	GroupID    *int64
	ActiveOnly bool
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:              e.ID,
		EmployeeCode:    e.EmployeeCode,
		Name:            e.Name,
		NameKana:        e.NameKana,
		GroupID:         e.GroupID,
		RoleID:          e.RoleID,
		PositionID:      e.PositionID,
		AssignmentDate:  formatDate(e.AssignmentDate),
		TerminationDate: formatDate(e.TerminationDate),
	}
	if e.Group != nil {
		resp.GroupName = e.Group.Name
	}
	if e.Role != nil {
		resp.RoleName = e.Role.RoleName
	}
	if e.Position != nil {
		resp.PositionName = e.Position.RoleName
	}
	return resp
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format("2006-01-02")
	return &v
}
