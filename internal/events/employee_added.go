package events

import "time"

const (
	EmployeeLifecycleTopic = "ems.employee.lifecycle.v1"
	EmployeeAddedEventType = "employee_added"
)

type EmployeeAddedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	EmpID      string    `json:"emp_id"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	OccurredAt time.Time `json:"occurred_at"`
}
