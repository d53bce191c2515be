package workstatus

import (
	"time"

	"go-attendo/internal/aggregate"
)

// Status is a stage of the daily progression.
type Status string

const (
	StatusInactive  Status = "inactive"
	StatusGoWork    Status = "go_work"
	StatusCheckIn   Status = "check_in"
	StatusCheckOut  Status = "check_out"
	StatusComplete  Status = "complete"
	StatusCompleted Status = "completed"
)

// Action is what a user performs; each one records an entry of the same name.
type Action string

const (
	ActionGoWork   Action = "go_work"
	ActionCheckIn  Action = "check_in"
	ActionCheckOut Action = "check_out"
	ActionComplete Action = "complete"
)

func (a Action) Valid() bool {
	switch a {
	case ActionGoWork, ActionCheckIn, ActionCheckOut, ActionComplete:
		return true
	}
	return false
}

// WorkStatusEntry is one append-only history record.
type WorkStatusEntry struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

// WorkState is the value stored under workStatus.
type WorkState struct {
	Status    Status    `json:"status"`
	Date      string    `json:"date"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Confirmation struct {
	Required bool   `json:"required"`
	Reason   string `json:"reason,omitempty"`
}

type TodayStatus struct {
	Date       string                    `json:"date"`
	Status     Status                    `json:"status"`
	Entries    []WorkStatusEntry         `json:"entries"`
	Detail     aggregate.DayStatusDetail `json:"detail"`
	NextAction Action                    `json:"nextAction,omitempty"`
}
