package domain

import "time"

// Event types carried on the live update stream.
const (
	EventTypeConnected       = "connected"
	EventTypeTimesheetUpdate = "timesheet-update"
)

// ChangeEvent describes a mutation that happened elsewhere. It is never
// persisted and exists only between the emitter and live subscribers.
type ChangeEvent struct {
	Type      string    `json:"type"`
	Event     string    `json:"event,omitempty"`
	Model     string    `json:"model,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
