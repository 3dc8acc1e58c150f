package stats

import (
	"math"
	"time"

	"github.com/ahmedmaged64/LifeQuest/internal/domain/habits"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/task"
)

// Compute derives the full stat block from the current collections.
// today anchors the rolling windows, in YYYY-MM-DD form. Unparseable
// anchors zero the date-dependent figures rather than failing.
func Compute(tasks []task.Task, habitList []habits.Habit, today string) UserStats {
	xp := TaskXP*task.CompletedCount(tasks) + HabitEntryXP*habits.TotalChecked(habitList)
	level := xp/LevelSize + 1
	relativeXP := xp - (level-1)*LevelSize

	return UserStats{
		XP:              xp,
		Level:           level,
		Streak:          computeStreak(tasks, habitList, today),
		LifeScore:       computeLifeScore(tasks, habitList, today),
		RelativeXP:      relativeXP,
		ProgressPercent: 100 * relativeXP / LevelSize,
	}
}

// computeLifeScore averages per-day completion ratios over the trailing
// window. Days with no tasks and no habits contribute 0; the divisor
// stays LifeScoreWindow regardless.
func computeLifeScore(tasks []task.Task, habitList []habits.Habit, today string) int {
	anchor, err := time.Parse(task.DateLayout, today)
	if err != nil {
		return 0
	}

	sum := 0.0
	for i := 0; i < LifeScoreWindow; i++ {
		day := anchor.AddDate(0, 0, -i).Format(task.DateLayout)
		dayTasks := task.ForDate(tasks, day)
		totalUnits := len(dayTasks) + len(habitList)
		if totalUnits == 0 {
			continue
		}
		doneUnits := task.CompletedCount(dayTasks) + habits.CheckedOn(habitList, day)
		sum += float64(doneUnits) / float64(totalUnits)
	}

	return int(math.Round(100 * sum / LifeScoreWindow))
}

// computeStreak counts consecutive active days walking backward. A day
// is active when at least one task was completed on it or at least one
// habit was checked off. An inactive today starts the walk at yesterday
// so a live streak survives until the day actually ends.
func computeStreak(tasks []task.Task, habitList []habits.Habit, today string) int {
	anchor, err := time.Parse(task.DateLayout, today)
	if err != nil {
		return 0
	}

	day := anchor
	if !activeOn(tasks, habitList, day.Format(task.DateLayout)) {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for activeOn(tasks, habitList, day.Format(task.DateLayout)) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func activeOn(tasks []task.Task, habitList []habits.Habit, date string) bool {
	return task.CompletedOn(tasks, date) || habits.CheckedOn(habitList, date) > 0
}
