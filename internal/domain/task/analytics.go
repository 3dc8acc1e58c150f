package task

// CompletedCount returns how many of the given tasks are completed.
func CompletedCount(tasks []Task) int {
	n := 0
	for i := range tasks {
		if tasks[i].Status == StatusCompleted {
			n++
		}
	}
	return n
}

// ForDate returns the tasks scheduled on the given calendar date.
func ForDate(tasks []Task, date string) []Task {
	out := make([]Task, 0)
	for i := range tasks {
		if tasks[i].Date == date {
			out = append(out, tasks[i])
		}
	}
	return out
}

// CompletedOn reports whether at least one task was completed on date.
func CompletedOn(tasks []Task, date string) bool {
	for i := range tasks {
		if tasks[i].Date == date && tasks[i].Status == StatusCompleted {
			return true
		}
	}
	return false
}
