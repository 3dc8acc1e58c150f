package stats

// XP awards and level sizing.
const (
	TaskXP       = 25
	HabitEntryXP = 10
	LevelSize    = 250
)

// LifeScoreWindow is the number of trailing days the life score averages
// over. The divisor stays fixed even when some days carry no entries.
const LifeScoreWindow = 7

// UserStats is derived in full from the task and habit collections on
// every read. It is never stored.
type UserStats struct {
	XP              int `json:"xp"`
	Level           int `json:"level"`
	Streak          int `json:"streak"`
	LifeScore       int `json:"life_score"`
	RelativeXP      int `json:"relative_xp"`
	ProgressPercent int `json:"progress_percent"`
}
