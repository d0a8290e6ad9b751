package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifehub/core/internal/application/services"
	"github.com/lifehub/core/internal/infrastructure/logger"
	"github.com/lifehub/core/internal/ports"
)

// GoalHandler handles goal-related requests
type GoalHandler struct {
	goalService *services.GoalService
	logger      *logger.Logger
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService *services.GoalService, logger *logger.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

// ListGoals godoc
// @Summary List goals
// @Tags goals
// @Produce json
// @Success 200 {array} entities.Goal
// @Security BearerAuth
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID := getUserIDFromContext(c)

	goals, err := h.goalService.ListGoals(c.Request().Context(), userID)
	if err != nil {
		h.logger.Errorw("List goals failed", "error", err, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, goals)
}

// CreateGoal godoc
// @Summary Create a new goal
// @Tags goals
// @Accept json
// @Produce json
// @Param request body ports.GoalUpsertRequest true "Goal data"
// @Success 201 {object} entities.Goal
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.GoalUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	goal, err := h.goalService.CreateGoal(c.Request().Context(), userID, req)
	if err != nil {
		h.logger.Errorw("Create goal failed", "error", err, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusCreated, goal)
}

// GetGoal godoc
// @Summary Get goal by ID
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} entities.Goal
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/{id} [get]
func (h *GoalHandler) GetGoal(c echo.Context) error {
	userID := getUserIDFromContext(c)

	goalID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	goal, err := h.goalService.GetGoal(c.Request().Context(), userID, goalID)
	if err != nil {
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, goal)
}

// UpdateGoal godoc
// @Summary Update a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body ports.GoalUpsertRequest true "Goal data"
// @Success 200 {object} entities.Goal
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	userID := getUserIDFromContext(c)

	goalID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req ports.GoalUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	goal, err := h.goalService.UpdateGoal(c.Request().Context(), userID, goalID, req)
	if err != nil {
		h.logger.Errorw("Update goal failed", "error", err, "goal_id", goalID, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, goal)
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Description Linked tasks, habits and addictions lose the reference but survive
// @Tags goals
// @Param id path string true "Goal ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID := getUserIDFromContext(c)

	goalID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.goalService.DeleteGoal(c.Request().Context(), userID, goalID); err != nil {
		return domainHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
