package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifehub/core/internal/application/services"
	"github.com/lifehub/core/internal/infrastructure/logger"
	"github.com/lifehub/core/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService *services.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *services.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CompleteTaskRequest toggles a task's completion state.
type CompleteTaskRequest struct {
	Completed bool `json:"completed"`
}

// CreateTask godoc
// @Summary Create a new task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body ports.CreateTaskRequest true "Task data"
// @Success 201 {object} entities.Task
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), userID, req)
	if err != nil {
		h.logger.Errorw("Create task failed", "error", err, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

// GetTask godoc
// @Summary Get task by ID
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} entities.Task
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	userID := getUserIDFromContext(c)

	taskID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), userID, taskID)
	if err != nil {
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// ListTasks godoc
// @Summary List all tasks of the current user
// @Tags tasks
// @Produce json
// @Success 200 {array} entities.Task
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	userID := getUserIDFromContext(c)

	tasks, err := h.taskService.ListTasks(c.Request().Context(), userID)
	if err != nil {
		h.logger.Errorw("List tasks failed", "error", err, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

// ListBuckets godoc
// @Summary List tasks grouped into planning buckets
// @Description Groups tasks into today, overdue, this week, completed and inbox
// @Tags tasks
// @Produce json
// @Success 200 {object} entities.TaskBuckets
// @Security BearerAuth
// @Router /tasks/buckets [get]
func (h *TaskHandler) ListBuckets(c echo.Context) error {
	userID := getUserIDFromContext(c)

	buckets, err := h.taskService.ListBuckets(c.Request().Context(), userID)
	if err != nil {
		h.logger.Errorw("List task buckets failed", "error", err, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, buckets)
}

// UpdateTask godoc
// @Summary Update a task
// @Description Partial update; omitted fields keep their current value
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body ports.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} entities.Task
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	userID := getUserIDFromContext(c)

	taskID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), userID, taskID, req)
	if err != nil {
		h.logger.Errorw("Update task failed", "error", err, "task_id", taskID, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	userID := getUserIDFromContext(c)

	taskID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), userID, taskID); err != nil {
		return domainHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CompleteTask godoc
// @Summary Complete or reopen a task
// @Description Completing a recurring task spawns its next occurrence
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body CompleteTaskRequest true "Target completion state"
// @Success 200 {object} entities.Task
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/complete [post]
func (h *TaskHandler) CompleteTask(c echo.Context) error {
	userID := getUserIDFromContext(c)

	taskID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	req := CompleteTaskRequest{Completed: true}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	task, err := h.taskService.CompleteTask(c.Request().Context(), userID, taskID, req.Completed)
	if err != nil {
		h.logger.Errorw("Complete task failed", "error", err, "task_id", taskID, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// ReorderTasks godoc
// @Summary Reorder tasks
// @Description Persists the manual sort order given by the ID list
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body ports.ReorderTasksRequest true "Ordered task IDs"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/reorder [post]
func (h *TaskHandler) ReorderTasks(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.ReorderTasksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.taskService.ReorderTasks(c.Request().Context(), userID, req.TaskIDs); err != nil {
		h.logger.Errorw("Reorder tasks failed", "error", err, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Tasks reordered"})
}
