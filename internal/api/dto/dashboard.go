package dto

type DashboardResponse struct {
	Date       string              `json:"date"`
	Tasks      []TaskResponse      `json:"tasks"`
	Habits     []HabitResponse     `json:"habits"`
	Reflection *ReflectionResponse `json:"reflection,omitempty"`
	Stats      StatsResponse       `json:"stats"`
}
