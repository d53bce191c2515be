package shift

type ShiftRequest struct {
	Name             string `json:"name" binding:"required,max=200"`
	StartWorkTime    string `json:"startWorkTime" binding:"required,hhmm"`
	EndWorkTime      string `json:"endWorkTime" binding:"required,hhmm"`
	DepartureTime    string `json:"departureTime" binding:"omitempty,hhmm"`
	OfficeEndTime    string `json:"officeEndTime" binding:"omitempty,hhmm"`
	RemindBeforeWork int    `json:"remindBeforeWork" binding:"min=0,max=1440"`
	RemindAfterWork  int    `json:"remindAfterWork" binding:"min=0,max=1440"`
	ShowSignButton   *bool  `json:"showSignButton"`
	AppliedDays      []int  `json:"appliedDays" binding:"dive,min=0,max=6"`
}

func (r ShiftRequest) toShift(id string) Shift {
	return Shift{
		ID:               id,
		Name:             r.Name,
		StartWorkTime:    r.StartWorkTime,
		EndWorkTime:      r.EndWorkTime,
		DepartureTime:    r.DepartureTime,
		OfficeEndTime:    r.OfficeEndTime,
		RemindBeforeWork: r.RemindBeforeWork,
		RemindAfterWork:  r.RemindAfterWork,
		ShowSignButton:   r.ShowSignButton,
		AppliedDays:      r.AppliedDays,
	}
}
