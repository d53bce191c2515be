package events

import "time"

const (
	ReminderFiredTopic     = "attendo.reminder.fired.v1"
	ReminderFiredEventType = "reminder_fired"
)

type ReminderFiredEvent struct {
	EventType      string    `json:"event_type"`
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	ShiftID        string    `json:"shift_id"`
	ReminderType   string    `json:"reminder_type"`
	Source         string    `json:"source"`
	ScheduledTime  time.Time `json:"scheduled_time"`
	FiredAt        time.Time `json:"fired_at"`
}
