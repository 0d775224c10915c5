package events

import "time"

const EmployeeChangedTopic = "shiftadmin.employee.changed.v1"

type EmployeeChangedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID int64     `json:"employee_id"`
	ChangeType string    `json:"change_type"`
	Version    int       `json:"version"`
	OccurredAt time.Time `json:"occurred_at"`
}
