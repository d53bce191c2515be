package aggregate

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go-attendo/internal/shift"
)

// Tolerance is the slack allowed on late check-in and early check-out.
const Tolerance = 5 * time.Minute

// ComputeHours splits the worked minutes between checkIn and checkOut into
// regular time, capped at the shift's standard minutes, and overtime.
// A checkOut before checkIn is read as the next day. Without a shift every
// minute is regular.
func ComputeHours(checkIn, checkOut time.Time, s *shift.Shift) Hours {
	actual := int(checkOut.Sub(checkIn) / time.Minute)
	if checkOut.Before(checkIn) {
		actual += 24 * 60
	}
	if actual < 0 {
		actual = 0
	}

	standard := actual
	if s != nil {
		standard = s.StandardMinutes()
	}

	regular := min(actual, standard)
	overtime := max(0, actual-standard)
	return Hours{
		Regular:  round2(float64(regular) / 60),
		Overtime: round2(float64(overtime) / 60),
	}
}

// DayStatusCode classifies a day from its steps alone; manual codes are never produced here.
func DayStatusCode(steps DaySteps, s *shift.Shift) Code {
	if steps.Empty() {
		return CodeNoData
	}
	if steps.CheckIn == nil || steps.CheckOut == nil {
		return CodeIncomplete
	}
	if IsLateCheckIn(*steps.CheckIn, s) || IsEarlyCheckOut(*steps.CheckIn, *steps.CheckOut, s) {
		return CodeIrregular
	}
	return CodeFull
}

// IsLateCheckIn reports a check-in more than Tolerance after startWorkTime.
func IsLateCheckIn(checkIn time.Time, s *shift.Shift) bool {
	start, ok := shiftStart(checkIn, s)
	return ok && checkIn.Sub(start) > Tolerance
}

// IsEarlyCheckOut reports a check-out more than Tolerance before the office end
// of the shift the check-in belongs to.
func IsEarlyCheckOut(checkIn, checkOut time.Time, s *shift.Shift) bool {
	start, ok := shiftStart(checkIn, s)
	if !ok {
		return false
	}
	end := start.Add(time.Duration(s.StandardMinutes()) * time.Minute)
	return end.Sub(checkOut) > Tolerance
}

// shiftStart anchors startWorkTime to the occurrence nearest to t.
func shiftStart(t time.Time, s *shift.Shift) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	start, ok := shift.At(t, s.StartWorkTime)
	if !ok {
		return time.Time{}, false
	}
	switch diff := t.Sub(start); {
	case diff < -12*time.Hour:
		start = start.AddDate(0, 0, -1)
	case diff > 12*time.Hour:
		start = start.AddDate(0, 0, 1)
	}
	return start, true
}

// Derive rebuilds the detail of date from its steps. A manual override on prev
// keeps its code and note. Nil means the day has nothing left to show.
func Derive(date string, steps DaySteps, s *shift.Shift, prev *DayStatusDetail) *DayStatusDetail {
	overridden := prev != nil && prev.ManualOverride
	if steps.Empty() && !overridden {
		return nil
	}

	d := DayStatusDetail{
		Date:         date,
		CheckInTime:  steps.CheckIn,
		CheckOutTime: steps.CheckOut,
		CompleteTime: steps.Complete,
		Status:       DayStatusCode(steps, s),
	}

	if steps.CheckIn != nil && steps.CheckOut != nil {
		h := ComputeHours(*steps.CheckIn, *steps.CheckOut, s)
		d.RegularHours = h.Regular
		d.OvertimeHours = h.Overtime
		d.LateCheckIn = IsLateCheckIn(*steps.CheckIn, s)
		d.EarlyCheckOut = IsEarlyCheckOut(*steps.CheckIn, *steps.CheckOut, s)
		if steps.Complete != nil {
			total := round2(h.Regular + h.Overtime)
			d.TotalHours = &total
		}
	} else if steps.CheckIn != nil {
		d.LateCheckIn = IsLateCheckIn(*steps.CheckIn, s)
	}

	if overridden {
		d.Status = prev.Status
		d.Note = prev.Note
		d.ManualOverride = true
	}
	return &d
}

func (t Tally) with(d DayStatusDetail, sign int) Tally {
	switch d.Status {
	case CodeFull:
		t.DaysFullWork += sign
	case CodeIrregular:
		t.DaysRV += sign
	case CodeIncomplete:
		t.DaysIncomplete += sign
	case CodeLeave:
		t.DaysLeave += sign
	case CodeSick:
		t.DaysSick += sign
	case CodeHoliday:
		t.DaysHoliday += sign
	case CodeAbsent:
		t.DaysAbsent += sign
	}
	t.RegularHours = round2(t.RegularHours + float64(sign)*d.RegularHours)
	t.OvertimeHours = round2(t.OvertimeHours + float64(sign)*d.OvertimeHours)
	return t
}

func (t Tally) zero() bool {
	return t == Tally{}
}

func NewTallies() Tallies {
	return Tallies{Weeks: map[string]Tally{}, Months: map[string]Tally{}}
}

// Apply moves a day from the buckets of old to those of next. Either may be nil.
func (ts *Tallies) Apply(old, next *DayStatusDetail) {
	if ts.Weeks == nil {
		ts.Weeks = map[string]Tally{}
	}
	if ts.Months == nil {
		ts.Months = map[string]Tally{}
	}
	if old != nil {
		ts.bump(*old, -1)
	}
	if next != nil {
		ts.bump(*next, 1)
	}
}

func (ts *Tallies) bump(d DayStatusDetail, sign int) {
	week, month, err := PeriodKeys(d.Date)
	if err != nil {
		return
	}
	for _, target := range []struct {
		m   map[string]Tally
		key string
	}{{ts.Weeks, week}, {ts.Months, month}} {
		t := target.m[target.key].with(d, sign)
		if t.zero() {
			delete(target.m, target.key)
			continue
		}
		target.m[target.key] = t
	}
}

// Rebuild recomputes every tally from scratch.
func Rebuild(details map[string]DayStatusDetail) Tallies {
	ts := NewTallies()
	dates := make([]string, 0, len(details))
	for date := range details {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		d := details[date]
		ts.Apply(nil, &d)
	}
	return ts
}

// PeriodKeys returns the ISO week key and month key of an ISO date.
func PeriodKeys(date string) (week, month string, err error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", "", err
	}
	return WeekKey(t), t.Format("2006-01"), nil
}

func WeekKey(t time.Time) string {
	y, w := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", y, w)
}

func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// WeekStart is the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeeklyGrid lays out Monday..Sunday of ref's week. Unrecorded days after
// today are "--", unrecorded past days "?".
func WeeklyGrid(weekly map[string]Code, ref, today time.Time) []GridDay {
	start := WeekStart(ref)
	todayKey := today.Format(DateLayout)

	days := make([]GridDay, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format(DateLayout)
		code, ok := weekly[key]
		switch {
		case ok:
		case key > todayKey:
			code = CodeFuture
		default:
			code = CodeNoData
		}
		days = append(days, GridDay{Date: key, Weekday: int(day.Weekday()), Code: code})
	}
	return days
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
