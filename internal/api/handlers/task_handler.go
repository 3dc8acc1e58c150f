package handlers

import (
	"net/http"

	"github.com/ahmedmaged64/LifeQuest/internal/api/dto"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/task"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// TaskHandler handles HTTP requests for task operations
type TaskHandler struct {
	service task.Service
}

// NewTaskHandler creates a new TaskHandler instance
func NewTaskHandler(service task.Service) *TaskHandler {
	return &TaskHandler{service: service}
}

// task domain validation failures all surface as *task.Error
func isTaskValidationError(err error) bool {
	if err == task.ErrInvalidInput {
		return true
	}
	_, ok := err.(*task.Error)
	return ok
}

func taskStatusCode(err error) int {
	switch {
	case err == task.ErrTaskNotFound:
		return http.StatusNotFound
	case isTaskValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// CreateTask godoc
// @Summary Create a new task
// @Description Create a new task on the daily planner
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task creation request"
// @Success 201 {object} dto.TaskResponse "Task created successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	// Get validated model from context (set by validation middleware)
	var req dto.CreateTaskRequest
	validatedModel, exists := c.Get("validated_model")

	if exists {
		// The model is a pointer since the middleware created it with reflect.New
		if validatedPtr, ok := validatedModel.(*dto.CreateTaskRequest); ok {
			req = *validatedPtr
		} else {
			log.Errorf("Invalid model type: %T, expected *dto.CreateTaskRequest", validatedModel)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model type from validation"})
			return
		}
	} else {
		// If validation middleware didn't run, do manual binding
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	input := task.CreateTaskInput{
		Title:      req.Title,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Priority:   task.TaskPriority(req.Priority),
		IsAllDay:   req.IsAllDay,
		Date:       req.Date,
		Recurrence: task.TaskRecurrence(req.Recurrence),
		Notes:      req.Notes,
	}

	createdTask, err := h.service.CreateTask(c.Request.Context(), input)
	if err != nil {
		c.JSON(taskStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": TaskToResponse(createdTask)})
}

// GetTask godoc
// @Summary Get a task by ID
// @Description Get detailed information about a specific task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID" format(uuid)
// @Success 200 {object} dto.TaskResponse "Task details retrieved successfully"
// @Failure 400 {object} map[string]string "Invalid task ID"
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID"})
		return
	}

	t, err := h.service.GetTask(c.Request.Context(), id)
	if err != nil {
		c.JSON(taskStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": TaskToResponse(t)})
}

// ListTasks godoc
// @Summary List tasks
// @Description Get tasks, optionally filtered by date, status, priority, recurrence or a title search
// @Tags tasks
// @Accept json
// @Produce json
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Param status query string false "Task status" Enums(pending, in_progress, completed)
// @Param priority query string false "Task priority" Enums(low, medium, high)
// @Param recurrence query string false "Task recurrence" Enums(none, daily, weekly)
// @Param search query string false "Case-insensitive title substring"
// @Success 200 {object} dto.TaskListResponse "List of tasks retrieved successfully"
// @Failure 400 {object} map[string]string "Invalid request parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var req dto.TaskFilterRequest
	validatedQuery, exists := c.Get("validated_query")

	if exists {
		if validatedPtr, ok := validatedQuery.(*dto.TaskFilterRequest); ok {
			req = *validatedPtr
		} else {
			log.Errorf("Invalid model type: %T, expected *dto.TaskFilterRequest", validatedQuery)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model type from validation"})
			return
		}
	} else {
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
			return
		}
	}

	tasks, err := h.service.ListTasks(c.Request.Context(), taskFilterFromRequest(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.TaskListResponse{
		Tasks: TasksToResponse(tasks),
		Total: len(tasks),
	}})
}

// GetTodayTasks godoc
// @Summary Get today's tasks
// @Description Get all tasks scheduled on the current day
// @Tags tasks
// @Accept json
// @Produce json
// @Success 200 {object} dto.TaskListResponse "Today's tasks retrieved successfully"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/tasks/today [get]
func (h *TaskHandler) GetTodayTasks(c *gin.Context) {
	tasks, err := h.service.GetTodayTasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.TaskListResponse{
		Tasks: TasksToResponse(tasks),
		Total: len(tasks),
	}})
}

// UpdateTask godoc
// @Summary Update a task
// @Description Update an existing task's information; writing the status directly never schedules a recurring successor
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID" format(uuid)
// @Param task body dto.UpdateTaskRequest true "Task update information"
// @Success 200 {object} dto.TaskResponse "Task updated successfully"
// @Failure 400 {object} map[string]string "Invalid request or task ID"
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID"})
		return
	}

	var req dto.UpdateTaskRequest
	validatedModel, exists := c.Get("validated_model")

	if exists {
		if validatedPtr, ok := validatedModel.(*dto.UpdateTaskRequest); ok {
			req = *validatedPtr
		} else {
			log.Errorf("Invalid model type: %T, expected *dto.UpdateTaskRequest", validatedModel)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model type from validation"})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	input := task.UpdateTaskInput{
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsAllDay:  req.IsAllDay,
		Date:      req.Date,
		Notes:     req.Notes,
	}
	if req.Priority != nil {
		priority := task.TaskPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.Status != nil {
		status := task.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Recurrence != nil {
		recurrence := task.TaskRecurrence(*req.Recurrence)
		input.Recurrence = &recurrence
	}

	updatedTask, err := h.service.UpdateTask(c.Request.Context(), id, input)
	if err != nil {
		c.JSON(taskStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": TaskToResponse(updatedTask)})
}

// ToggleTask godoc
// @Summary Toggle a task's completion
// @Description Flip a task between completed and pending. Completing a daily task schedules its next occurrence on the following day unless one already exists.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID" format(uuid)
// @Success 200 {object} dto.ToggleTaskResponse "Task toggled successfully"
// @Failure 400 {object} map[string]string "Invalid task ID"
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/tasks/{id}/toggle [post]
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID"})
		return
	}

	result, err := h.service.ToggleTask(c.Request.Context(), id)
	if err != nil {
		c.JSON(taskStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	response := dto.ToggleTaskResponse{Task: *TaskToResponse(result.Task)}
	if result.Successor != nil {
		response.Successor = TaskToResponse(result.Successor)
	}

	c.JSON(http.StatusOK, gin.H{"data": response})
}

// DeleteTask godoc
// @Summary Delete a task
// @Description Delete a task by ID
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID" format(uuid)
// @Success 204 "Task deleted successfully"
// @Failure 400 {object} map[string]string "Invalid task ID"
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID"})
		return
	}

	err = h.service.DeleteTask(c.Request.Context(), id)
	if err != nil {
		c.JSON(taskStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func taskFilterFromRequest(req dto.TaskFilterRequest) task.TaskFilter {
	filter := task.TaskFilter{}
	if req.Date != "" {
		filter.Date = &req.Date
	}
	if req.Status != "" {
		status := task.TaskStatus(req.Status)
		filter.Status = &status
	}
	if req.Priority != "" {
		priority := task.TaskPriority(req.Priority)
		filter.Priority = &priority
	}
	if req.Recurrence != "" {
		recurrence := task.TaskRecurrence(req.Recurrence)
		filter.Recurrence = &recurrence
	}
	if req.Search != "" {
		filter.Search = &req.Search
	}
	return filter
}
