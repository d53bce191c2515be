package aggregate

type WeeklyQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type MonthlyQuery struct {
	Year  int `form:"year" binding:"omitempty,min=1970,max=9999"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

type DayStatusRequest struct {
	Code string `json:"code" binding:"required"`
	Note string `json:"note" binding:"max=500"`
}
