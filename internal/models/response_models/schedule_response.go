package response_models

// PlanItem mirrors the item shape the AI prompt demands in its output
// example; the JSON tags are part of the provider contract.
type PlanItem struct {
	ContentID string  `json:"contentId"`
	Title     string  `json:"title"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Category  string  `json:"category"`
}

type DailyPlan struct {
	DayNumber int        `json:"dayNumber"`
	Items     []PlanItem `json:"items"`
}

// DailyPlanDocument is the parsed form of the plan JSON the model
// returns, decoded only after schema validation.
type DailyPlanDocument struct {
	ScheduleID string      `json:"scheduleId"`
	DailyPlans []DailyPlan `json:"dailyPlans"`
}

type ScheduleResponse struct {
	ScheduleID   string `json:"schedule_id"`
	ScheduleName string `json:"schedule_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	StartTime    string `json:"start_time"`
	Budget       int64  `json:"budget"`
	ScheduleType string `json:"schedule_type"`
	CartID       string `json:"cart_id"`
	HasPlan      bool   `json:"has_plan"`
}
