package shift

import (
	"sort"
	"time"
)

const clockLayout = "15:04"

// Shift is a named work-time template.
type Shift struct {
	ID               string `json:"id"`
	Name             string `json:"name" validate:"required,max=200,shiftname"`
	StartWorkTime    string `json:"startWorkTime" validate:"required,hhmm"`
	EndWorkTime      string `json:"endWorkTime" validate:"required,hhmm"`
	DepartureTime    string `json:"departureTime" validate:"omitempty,hhmm"`
	OfficeEndTime    string `json:"officeEndTime,omitempty" validate:"omitempty,hhmm"`
	RemindBeforeWork int    `json:"remindBeforeWork" validate:"min=0,max=1440"`
	RemindAfterWork  int    `json:"remindAfterWork" validate:"min=0,max=1440"`
	ShowSignButton   *bool  `json:"showSignButton,omitempty"`
	AppliedDays      []int  `json:"appliedDays" validate:"dive,min=0,max=6"`
	Active           bool   `json:"active"`
}

// AppliesOn reports whether the shift runs on weekday (Sunday = 0).
func (s Shift) AppliesOn(weekday time.Weekday) bool {
	for _, d := range s.AppliedDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

// OfficeEnd is the paid-hours cutoff; endWorkTime when no officeEndTime is set.
func (s Shift) OfficeEnd() string {
	if s.OfficeEndTime != "" {
		return s.OfficeEndTime
	}
	return s.EndWorkTime
}

// StandardMinutes is officeEnd - start, wrapped past midnight.
func (s Shift) StandardMinutes() int {
	start, ok1 := minutesOfDay(s.StartWorkTime)
	end, ok2 := minutesOfDay(s.OfficeEnd())
	if !ok1 || !ok2 {
		return 0
	}
	diff := end - start
	if diff < 0 {
		diff += 24 * 60
	}
	return diff
}

func (s Shift) signButton() bool {
	return s.ShowSignButton != nil && *s.ShowSignButton
}

func (s Shift) sortedDays() []int {
	days := append([]int(nil), s.AppliedDays...)
	sort.Ints(days)
	out := days[:0]
	for i, d := range days {
		if i > 0 && d == days[i-1] {
			continue
		}
		out = append(out, d)
	}
	return out
}

// At resolves an HH:mm time of day on the calendar day of day, in day's location.
func At(day time.Time, hhmm string) (time.Time, bool) {
	m, ok := minutesOfDay(hhmm)
	if !ok {
		return time.Time{}, false
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, day.Location()), true
}

func minutesOfDay(hhmm string) (int, bool) {
	t, err := time.Parse(clockLayout, hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
