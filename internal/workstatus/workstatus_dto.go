package workstatus

type ActionRequest struct {
	Action    string `json:"action" binding:"required,oneof=go_work check_in check_out complete"`
	Confirmed bool   `json:"confirmed"`
}

type ConfirmationQuery struct {
	Action string `form:"action" binding:"required,oneof=go_work check_in check_out complete"`
}
