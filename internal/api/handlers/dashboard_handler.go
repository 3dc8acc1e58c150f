package handlers

import (
	"net/http"
	"time"

	"github.com/ahmedmaged64/LifeQuest/internal/api/dto"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/habits"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/reflection"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/stats"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/task"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	tasksService      task.Service
	habitsService     habits.Service
	reflectionService reflection.Service
	statsService      stats.Service
	logger            *zap.Logger
}

func NewDashboardHandler(
	tasksService task.Service,
	habitsService habits.Service,
	reflectionService reflection.Service,
	statsService stats.Service,
	logger *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		tasksService:      tasksService,
		habitsService:     habitsService,
		reflectionService: reflectionService,
		statsService:      statsService,
		logger:            logger,
	}
}

// GetDashboard godoc
// @Summary Get the daily dashboard
// @Description Get a day's tasks, every habit, the day's reflection if one exists, and the current progress metrics in a single response
// @Tags dashboard
// @Accept json
// @Produce json
// @Param date query string false "Calendar date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.DashboardResponse "Dashboard assembled successfully"
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(task.DateLayout)
	} else if _, err := time.Parse(task.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	// Collect each section independently so one failure doesn't blank the
	// whole dashboard
	response := dto.DashboardResponse{Date: date}

	dayTasks, err := h.tasksService.ListTasks(c.Request.Context(), task.TaskFilter{Date: &date})
	if err != nil {
		h.logger.Error("Failed to get dashboard tasks", zap.Error(err))
		dayTasks = nil
	}
	response.Tasks = TasksToResponse(dayTasks)

	habitList, err := h.habitsService.ListHabits(c.Request.Context(), habits.HabitFilter{})
	if err != nil {
		h.logger.Error("Failed to get dashboard habits", zap.Error(err))
		habitList = nil
	}
	response.Habits = HabitsToResponse(habitList)

	// A missing reflection is the normal case, not a failure
	dayReflection, err := h.reflectionService.GetReflection(c.Request.Context(), date)
	if err != nil && err != reflection.ErrReflectionNotFound {
		h.logger.Error("Failed to get dashboard reflection", zap.Error(err))
	}
	if err == nil {
		response.Reflection = ReflectionToResponse(dayReflection)
	}

	userStats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to get dashboard stats", zap.Error(err))
		userStats = &stats.UserStats{}
	}
	response.Stats = *StatsToResponse(userStats)

	c.JSON(http.StatusOK, gin.H{"data": response})
}
