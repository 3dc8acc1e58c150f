package handlers

import (
	"github.com/ahmedmaged64/LifeQuest/internal/api/dto"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/advice"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/habits"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/reflection"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/settings"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/stats"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/task"
)

// Tasks
func TaskToResponse(t *task.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:         t.ID,
		Title:      t.Title,
		StartTime:  t.StartTime,
		EndTime:    t.EndTime,
		Priority:   string(t.Priority),
		Status:     string(t.Status),
		IsAllDay:   t.IsAllDay,
		Date:       t.Date,
		Recurrence: string(t.Recurrence),
		Notes:      t.Notes,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func TasksToResponse(tasks []task.Task) []dto.TaskResponse {
	response := make([]dto.TaskResponse, len(tasks))
	for i, t := range tasks {
		response[i] = *TaskToResponse(&t)
	}
	return response
}

// Habits
func HabitToResponse(h *habits.Habit) *dto.HabitResponse {
	if h == nil {
		return nil
	}
	history := h.History
	if history == nil {
		history = map[string]bool{}
	}
	return &dto.HabitResponse{
		ID:        h.ID,
		Name:      h.Name,
		Icon:      h.Icon,
		Category:  h.Category,
		CreatedAt: h.CreatedAt,
		History:   history,
	}
}

func HabitsToResponse(habitList []habits.Habit) []dto.HabitResponse {
	response := make([]dto.HabitResponse, len(habitList))
	for i, h := range habitList {
		response[i] = *HabitToResponse(&h)
	}
	return response
}

// Reflections
func ReflectionToResponse(r *reflection.Reflection) *dto.ReflectionResponse {
	if r == nil {
		return nil
	}
	return &dto.ReflectionResponse{
		Date:        r.Date,
		Well:        r.Well,
		Improvement: r.Improvement,
		Journal:     r.Journal,
	}
}

func ReflectionsToResponse(reflections []reflection.Reflection) []dto.ReflectionResponse {
	response := make([]dto.ReflectionResponse, len(reflections))
	for i, r := range reflections {
		response[i] = *ReflectionToResponse(&r)
	}
	return response
}

// Stats
func StatsToResponse(s *stats.UserStats) *dto.StatsResponse {
	if s == nil {
		return nil
	}
	return &dto.StatsResponse{
		XP:              s.XP,
		Level:           s.Level,
		Streak:          s.Streak,
		LifeScore:       s.LifeScore,
		RelativeXP:      s.RelativeXP,
		ProgressPercent: s.ProgressPercent,
	}
}

// Advice
func AdviceToResponse(a *advice.Advice) *dto.AdviceResponse {
	if a == nil {
		return nil
	}
	return &dto.AdviceResponse{
		Date:      a.Date,
		Text:      a.Text,
		Generated: a.Generated,
	}
}

// Settings
func SettingsToResponse(s *settings.Settings) *dto.SettingsResponse {
	if s == nil {
		return nil
	}
	return &dto.SettingsResponse{
		Theme: string(s.Theme),
	}
}
