package request_models

type CreateScheduleRequest struct {
	ScheduleName string `json:"schedule_name" binding:"required,max=100"`
	// Dates in YYYY-MM-DD, start time in HH:MM.
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	Budget       int64  `json:"budget"`
	ScheduleType string `json:"schedule_type" binding:"required,oneof=PERSONAL GROUP"`
	CartID       string `json:"cart_id" binding:"required,uuid4"`
}

type UpdateScheduleRequest struct {
	ScheduleName string `json:"schedule_name" binding:"required,max=100"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	Budget       int64  `json:"budget"`
	ScheduleType string `json:"schedule_type" binding:"required,oneof=PERSONAL GROUP"`
}
