package dto

// StatsResponse represents the derived progress metrics in API responses
// @Description Experience, level, streak and life score computed from the current state
type StatsResponse struct {
	XP              int `json:"xp"`
	Level           int `json:"level"`
	Streak          int `json:"streak"`
	LifeScore       int `json:"life_score"`
	RelativeXP      int `json:"relative_xp"`
	ProgressPercent int `json:"progress_percent"`
}
