package habits

// TotalChecked returns the number of done entries across all habits.
func TotalChecked(habits []Habit) int {
	n := 0
	for i := range habits {
		n += habits[i].CheckedDays()
	}
	return n
}

// CheckedOn counts how many habits were checked off on date.
func CheckedOn(habits []Habit, date string) int {
	n := 0
	for i := range habits {
		if habits[i].DoneOn(date) {
			n++
		}
	}
	return n
}
