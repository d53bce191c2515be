package reminder

import (
	"fmt"
	"sort"
	"time"

	"go-attendo/internal/shift"
)

// Policy is the global reminder lead time of a user.
type Policy string

const (
	PolicyNone        Policy = "none"
	PolicyBefore5Min  Policy = "before_5_min"
	PolicyBefore15Min Policy = "before_15_min"
	PolicyBefore30Min Policy = "before_30_min"
)

var policyMinutes = map[Policy]int{
	PolicyNone:        0,
	PolicyBefore5Min:  5,
	PolicyBefore15Min: 15,
	PolicyBefore30Min: 30,
}

func (p Policy) Valid() bool {
	_, ok := policyMinutes[p]
	return ok
}

// Minutes is the lead time of p; unknown policies count as none.
func (p Policy) Minutes() int {
	return policyMinutes[p]
}

func ParsePolicy(s string) (Policy, error) {
	p := Policy(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown reminder policy %q", s)
	}
	return p, nil
}

// Type is the shift milestone a reminder is tied to.
type Type string

const (
	TypeDeparture Type = "departure"
	TypeCheckIn   Type = "check_in"
	TypeCheckOut  Type = "check_out"
)

// ReminderType values record where a trigger offset came from.
const (
	SourceShift = "shift"
)

// ScheduledReminder is the bookkeeping entry for one live notification.
type ScheduledReminder struct {
	ID            string    `json:"id"`
	ShiftID       string    `json:"shiftId"`
	Type          Type      `json:"type"`
	ScheduledTime time.Time `json:"scheduledTime"`
	ReminderType  string    `json:"reminderType"`
}

// Payload travels with a notification and comes back when it fires.
type Payload struct {
	UserID        string    `json:"userId"`
	ShiftID       string    `json:"shiftId"`
	Type          Type      `json:"type"`
	ScheduledTime time.Time `json:"scheduledTime"`
	ReminderType  string    `json:"reminderType"`
}

// Trigger is one computed fire time.
type Trigger struct {
	Type         Type
	At           time.Time
	ReminderType string
}

// NotificationID is stable per user, shift and type so rescheduling overwrites.
func NotificationID(userID, shiftID string, t Type) string {
	return fmt.Sprintf("%s:%s:%s", userID, shiftID, t)
}

// ComputeTriggers resolves the reminders of s on today, or the next weekday
// the shift applies to, using now's location. Triggers at or before now are
// dropped.
func ComputeTriggers(s shift.Shift, now time.Time, policy Policy) []Trigger {
	day, ok := nextApplicableDay(s, now)
	if !ok {
		return nil
	}

	var triggers []Trigger
	add := func(t Type, hhmm string, offset time.Duration, source string, nextDay bool) {
		base, ok := shift.At(day, hhmm)
		if !ok {
			return
		}
		if nextDay {
			base = base.AddDate(0, 0, 1)
		}
		at := base.Add(offset)
		if !at.After(now) {
			return
		}
		triggers = append(triggers, Trigger{Type: t, At: at, ReminderType: source})
	}

	before, beforeSource := resolveOffset(s.RemindBeforeWork, policy)
	after, afterSource := resolveOffset(s.RemindAfterWork, policy)

	if before > 0 {
		if s.DepartureTime != "" {
			add(TypeDeparture, s.DepartureTime, -before, beforeSource, false)
		}
		add(TypeCheckIn, s.StartWorkTime, -before, beforeSource, false)
	}
	if after > 0 {
		add(TypeCheckOut, s.EndWorkTime, after, afterSource, endsNextDay(s))
	}

	sort.SliceStable(triggers, func(i, j int) bool { return triggers[i].At.Before(triggers[j].At) })
	return triggers
}

func resolveOffset(shiftMinutes int, policy Policy) (time.Duration, string) {
	if shiftMinutes > 0 {
		return time.Duration(shiftMinutes) * time.Minute, SourceShift
	}
	return time.Duration(policy.Minutes()) * time.Minute, string(policy)
}

func nextApplicableDay(s shift.Shift, now time.Time) (time.Time, bool) {
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i)
		if s.AppliesOn(day.Weekday()) {
			return day, true
		}
	}
	return time.Time{}, false
}

func endsNextDay(s shift.Shift) bool {
	start, ok1 := shift.At(time.Time{}, s.StartWorkTime)
	end, ok2 := shift.At(time.Time{}, s.EndWorkTime)
	return ok1 && ok2 && end.Before(start)
}
