package reminder

import (
	"time"

	ics "github.com/arran4/golang-ical"
)

const calendarProductID = "-//go-attendo//reminders//EN"

var calendarSummaries = map[Type]string{
	TypeDeparture: "Time to leave for work",
	TypeCheckIn:   "Check in",
	TypeCheckOut:  "Check out",
}

// BuildCalendar renders reminders as an iCalendar feed, one zero-length event
// with a display alarm per reminder.
func BuildCalendar(reminders []ScheduledReminder, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)

	for _, r := range reminders {
		at := r.ScheduledTime.UTC()

		event := cal.AddEvent(r.ID + "@go-attendo")
		event.SetDtStampTime(stamp.UTC())
		event.SetStartAt(at)
		event.SetEndAt(at)
		event.SetSummary(calendarSummaries[r.Type])
		event.SetDescription("shift " + r.ShiftID + ", " + r.ReminderType)

		alarm := event.AddAlarm()
		alarm.SetAction(ics.ActionDisplay)
		alarm.SetTrigger("PT0M")
	}
	return cal.Serialize()
}
