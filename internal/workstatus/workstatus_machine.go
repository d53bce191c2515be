package workstatus

import (
	"time"

	"go-attendo/internal/aggregate"
	"go-attendo/internal/reminder"
	statuserrors "go-attendo/internal/workstatus/errors"
)

const (
	MinGoWorkToCheckIn   = 5 * time.Minute
	MinCheckInToCheckOut = 2 * time.Hour
)

const (
	reasonEarlyCheckIn  = "Less than 5 minutes have passed since you left for work. Check in anyway?"
	reasonEarlyCheckOut = "Less than 2 hours have passed since you checked in. Check out anyway?"
)

var rank = map[Status]int{
	StatusInactive:  0,
	StatusGoWork:    1,
	StatusCheckIn:   2,
	StatusCheckOut:  3,
	StatusComplete:  4,
	StatusCompleted: 5,
}

// prerequisites name the step that must already be recorded today.
var prerequisites = map[Action]Status{
	ActionCheckIn:  StatusGoWork,
	ActionCheckOut: StatusCheckIn,
	ActionComplete: StatusCheckOut,
}

// Current reads the stored state as of today; a state from another date is inactive.
func Current(state *WorkState, today string) Status {
	if state == nil || state.Date != today || state.Status == "" {
		return StatusInactive
	}
	return state.Status
}

// Latest returns the newest timestamp of status among entries.
func Latest(entries []WorkStatusEntry, status Status) *time.Time {
	var latest *time.Time
	for i := range entries {
		e := entries[i]
		if e.Status != status {
			continue
		}
		if latest == nil || e.Timestamp.After(*latest) {
			ts := e.Timestamp
			latest = &ts
		}
	}
	return latest
}

// EntriesOn filters history down to one date, in recorded order.
func EntriesOn(history []WorkStatusEntry, date string) []WorkStatusEntry {
	out := make([]WorkStatusEntry, 0)
	for _, e := range history {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// Steps condenses a day's entries into the latest instant of each step.
func Steps(entries []WorkStatusEntry) aggregate.DaySteps {
	return aggregate.DaySteps{
		GoWork:   Latest(entries, StatusGoWork),
		CheckIn:  Latest(entries, StatusCheckIn),
		CheckOut: Latest(entries, StatusCheckOut),
		Complete: Latest(entries, StatusComplete),
	}
}

// NeedsConfirmation applies the minimum elapsed time rules against today's entries.
func NeedsConfirmation(action Action, today []WorkStatusEntry, now time.Time) Confirmation {
	switch action {
	case ActionCheckIn:
		if gw := Latest(today, StatusGoWork); gw != nil && now.Sub(*gw) < MinGoWorkToCheckIn {
			return Confirmation{Required: true, Reason: reasonEarlyCheckIn}
		}
	case ActionCheckOut:
		if ci := Latest(today, StatusCheckIn); ci != nil && now.Sub(*ci) < MinCheckInToCheckOut {
			return Confirmation{Required: true, Reason: reasonEarlyCheckOut}
		}
	}
	return Confirmation{}
}

// Check decides whether action may run from current. Nothing is mutated.
func Check(current Status, today []WorkStatusEntry, action Action, now time.Time, confirmed bool) error {
	if !action.Valid() {
		return statuserrors.ErrInvalidAction
	}
	if current == StatusCompleted {
		return statuserrors.ErrDayCompleted
	}
	if rank[Status(action)] < rank[current] {
		return statuserrors.ErrInvalidTransition.WithDetails(map[string]string{
			"current": string(current),
			"action":  string(action),
		})
	}
	if need, ok := prerequisites[action]; ok && Latest(today, need) == nil {
		return statuserrors.ErrPrerequisiteMissing.WithDetails(map[string]string{
			"required": string(need),
		})
	}
	if !confirmed {
		if c := NeedsConfirmation(action, today, now); c.Required {
			return statuserrors.ErrConfirmationRequired.WithDetails(c.Reason)
		}
	}
	return nil
}

// Next is the action the UI should offer after current.
func Next(current Status) Action {
	switch current {
	case StatusInactive:
		return ActionGoWork
	case StatusGoWork:
		return ActionCheckIn
	case StatusCheckIn:
		return ActionCheckOut
	case StatusCheckOut:
		return ActionComplete
	}
	return ""
}

// After is the state recorded once action succeeds.
func After(action Action) Status {
	if action == ActionComplete {
		return StatusCompleted
	}
	return Status(action)
}

// ReminderFor maps an action to the reminder it makes moot.
func ReminderFor(action Action) (reminder.Type, bool) {
	switch action {
	case ActionGoWork:
		return reminder.TypeDeparture, true
	case ActionCheckIn:
		return reminder.TypeCheckIn, true
	case ActionCheckOut:
		return reminder.TypeCheckOut, true
	}
	return "", false
}

// actionFor is the inverse of ReminderFor.
func actionFor(t reminder.Type) (Action, bool) {
	switch t {
	case reminder.TypeDeparture:
		return ActionGoWork, true
	case reminder.TypeCheckIn:
		return ActionCheckIn, true
	case reminder.TypeCheckOut:
		return ActionCheckOut, true
	}
	return "", false
}
