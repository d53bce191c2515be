package aggregate

import "time"

const DateLayout = "2006-01-02"

// Code is the grid classification of one calendar day.
type Code string

const (
	CodeFull       Code = "✓"
	CodeIncomplete Code = "!"
	CodeIrregular  Code = "RV"
	CodeLeave      Code = "P"
	CodeSick       Code = "B"
	CodeHoliday    Code = "H"
	CodeAbsent     Code = "X"
	CodeFuture     Code = "--"
	CodeNoData     Code = "?"
)

// Manual reports whether c may be assigned by a user override.
func (c Code) Manual() bool {
	switch c {
	case CodeFull, CodeIncomplete, CodeIrregular, CodeLeave, CodeSick, CodeHoliday, CodeAbsent:
		return true
	}
	return false
}

// DaySteps holds the latest recorded instant of each step on one date.
type DaySteps struct {
	GoWork   *time.Time
	CheckIn  *time.Time
	CheckOut *time.Time
	Complete *time.Time
}

func (s DaySteps) Empty() bool {
	return s.GoWork == nil && s.CheckIn == nil && s.CheckOut == nil && s.Complete == nil
}

type DayStatusDetail struct {
	Date           string     `json:"date"`
	CheckInTime    *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime   *time.Time `json:"checkOutTime,omitempty"`
	CompleteTime   *time.Time `json:"completeTime,omitempty"`
	TotalHours     *float64   `json:"totalHours,omitempty"`
	RegularHours   float64    `json:"regularHours"`
	OvertimeHours  float64    `json:"overtimeHours"`
	LateCheckIn    bool       `json:"lateCheckIn,omitempty"`
	EarlyCheckOut  bool       `json:"earlyCheckOut,omitempty"`
	Status         Code       `json:"status"`
	Note           string     `json:"note,omitempty"`
	ManualOverride bool       `json:"manualOverride"`
}

type Hours struct {
	Regular  float64 `json:"regularHours"`
	Overtime float64 `json:"overtimeHours"`
}

// Tally is the running classification of a week or a month.
type Tally struct {
	DaysFullWork   int     `json:"daysFullWork"`
	DaysRV         int     `json:"daysRV"`
	DaysIncomplete int     `json:"daysIncomplete"`
	DaysLeave      int     `json:"daysLeave"`
	DaysSick       int     `json:"daysSick"`
	DaysHoliday    int     `json:"daysHoliday"`
	DaysAbsent     int     `json:"daysAbsent"`
	RegularHours   float64 `json:"regularHours"`
	OvertimeHours  float64 `json:"overtimeHours"`
}

// Tallies are keyed by ISO week ("2026-W43") and by month ("2026-10").
type Tallies struct {
	Weeks  map[string]Tally `json:"weeks"`
	Months map[string]Tally `json:"months"`
}

type GridDay struct {
	Date    string `json:"date"`
	Weekday int    `json:"weekday"`
	Code    Code   `json:"code"`
}

type WeeklyStatus struct {
	Week  string    `json:"week"`
	Days  []GridDay `json:"days"`
	Tally Tally     `json:"tally"`
}

type MonthlyStats struct {
	Month string            `json:"month"`
	Tally Tally             `json:"tally"`
	Days  []DayStatusDetail `json:"days"`
}
