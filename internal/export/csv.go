package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ahmedmaged64/LifeQuest/internal/infrastructure/state"
)

// renderCSV writes the snapshot as three labeled sections separated by
// blank lines. The format is read-only; only the JSON export imports.
func renderCSV(snap *state.AppState) ([]byte, error) {
	records := [][]string{
		{"tasks"},
		{"id", "title", "date", "start_time", "end_time", "priority", "status", "recurrence", "is_all_day", "notes", "created_at", "updated_at"},
	}
	for i := range snap.Tasks {
		t := &snap.Tasks[i]
		records = append(records, []string{
			t.ID.String(),
			t.Title,
			t.Date,
			t.StartTime,
			t.EndTime,
			string(t.Priority),
			string(t.Status),
			string(t.Recurrence),
			strconv.FormatBool(t.IsAllDay),
			t.Notes,
			t.CreatedAt.UTC().Format(time.RFC3339),
			t.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	records = append(records,
		[]string{""},
		[]string{"habits"},
		[]string{"id", "name", "icon", "category", "created_at", "history"})
	for i := range snap.Habits {
		h := &snap.Habits[i]
		records = append(records, []string{
			h.ID.String(),
			h.Name,
			h.Icon,
			h.Category,
			h.CreatedAt,
			flattenHistory(h.History),
		})
	}

	records = append(records,
		[]string{""},
		[]string{"reflections"},
		[]string{"date", "well", "improvement", "journal"})
	dates := make([]string, 0, len(snap.Reflections))
	for date := range snap.Reflections {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		r := snap.Reflections[date]
		records = append(records, []string{r.Date, r.Well, r.Improvement, r.Journal})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// flattenHistory renders the done map as date=true pairs, oldest first.
func flattenHistory(history map[string]bool) string {
	dates := make([]string, 0, len(history))
	for date, done := range history {
		if done {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	pairs := make([]string, 0, len(dates))
	for _, date := range dates {
		pairs = append(pairs, fmt.Sprintf("%s=true", date))
	}
	return strings.Join(pairs, ";")
}
