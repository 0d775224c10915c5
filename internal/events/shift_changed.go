package events

import "time"

const ShiftChangedTopic = "shiftadmin.shift.changed.v1"

type ShiftChangedEvent struct {
	EventType  string    `json:"event_type"`
	ShiftID    int64     `json:"shift_id"`
	EmployeeID int64     `json:"employee_id"`
	ShiftDate  string    `json:"shift_date"`
	ChangeType string    `json:"change_type"`
	Version    int       `json:"version"`
	OccurredAt time.Time `json:"occurred_at"`
}
