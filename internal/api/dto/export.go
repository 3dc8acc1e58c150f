package dto

// ImportResponse represents the outcome of importing a state snapshot
type ImportResponse struct {
	Tasks       int `json:"tasks"`
	Habits      int `json:"habits"`
	Reflections int `json:"reflections"`
}
