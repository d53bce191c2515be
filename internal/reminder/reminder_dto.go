package reminder

type PolicyRequest struct {
	Policy string `json:"policy" binding:"required"`
}

type PolicyResponse struct {
	Policy    Policy              `json:"policy"`
	Reminders []ScheduledReminder `json:"reminders,omitempty"`
}
