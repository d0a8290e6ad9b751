package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lifehub/core/internal/application/services"
	"github.com/lifehub/core/internal/infrastructure/logger"
	"github.com/lifehub/core/internal/ports"
)

// defaultWindowDays is used when a list endpoint gets no ?days= parameter.
const defaultWindowDays = 30

// HabitHandler handles habit-related requests
type HabitHandler struct {
	habitService *services.HabitService
	logger       *logger.Logger
}

// NewHabitHandler creates a new habit handler
func NewHabitHandler(habitService *services.HabitService, logger *logger.Logger) *HabitHandler {
	return &HabitHandler{
		habitService: habitService,
		logger:       logger,
	}
}

// windowDaysParam reads the ?days= query parameter, falling back to the
// default window. Range clamping happens in the service.
func windowDaysParam(c echo.Context) int {
	if daysStr := c.QueryParam("days"); daysStr != "" {
		if days, err := strconv.Atoi(daysStr); err == nil {
			return days
		}
	}
	return defaultWindowDays
}

// ListHabits godoc
// @Summary List habits with day history
// @Description Returns every habit with its day records inside the trailing window
// @Tags habits
// @Produce json
// @Param days query int false "Window size in days (1-365, default 30)"
// @Success 200 {array} ports.HabitWithHistory
// @Security BearerAuth
// @Router /habits [get]
func (h *HabitHandler) ListHabits(c echo.Context) error {
	userID := getUserIDFromContext(c)

	habits, err := h.habitService.ListWithHistory(c.Request().Context(), userID, windowDaysParam(c))
	if err != nil {
		h.logger.Errorw("List habits failed", "error", err, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, habits)
}

// CreateHabit godoc
// @Summary Create a new habit
// @Tags habits
// @Accept json
// @Produce json
// @Param request body ports.HabitUpsertRequest true "Habit data"
// @Success 201 {object} entities.Habit
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /habits [post]
func (h *HabitHandler) CreateHabit(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.HabitUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	habit, err := h.habitService.CreateHabit(c.Request().Context(), userID, req)
	if err != nil {
		h.logger.Errorw("Create habit failed", "error", err, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusCreated, habit)
}

// GetHabit godoc
// @Summary Get habit by ID
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} entities.Habit
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /habits/{id} [get]
func (h *HabitHandler) GetHabit(c echo.Context) error {
	userID := getUserIDFromContext(c)

	habitID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	habit, err := h.habitService.GetHabit(c.Request().Context(), userID, habitID)
	if err != nil {
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, habit)
}

// UpdateHabit godoc
// @Summary Update a habit
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID"
// @Param request body ports.HabitUpsertRequest true "Habit data"
// @Success 200 {object} entities.Habit
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /habits/{id} [put]
func (h *HabitHandler) UpdateHabit(c echo.Context) error {
	userID := getUserIDFromContext(c)

	habitID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req ports.HabitUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	habit, err := h.habitService.UpdateHabit(c.Request().Context(), userID, habitID, req)
	if err != nil {
		h.logger.Errorw("Update habit failed", "error", err, "habit_id", habitID, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, habit)
}

// DeleteHabit godoc
// @Summary Delete a habit and its day records
// @Tags habits
// @Param id path string true "Habit ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /habits/{id} [delete]
func (h *HabitHandler) DeleteHabit(c echo.Context) error {
	userID := getUserIDFromContext(c)

	habitID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.habitService.DeleteHabit(c.Request().Context(), userID, habitID); err != nil {
		return domainHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetDayStatus godoc
// @Summary Set the status of a habit on a day
// @Description Status none removes the record, skip and full upsert it
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID"
// @Param date path string true "Day (YYYY-MM-DD)"
// @Param request body ports.SetDayStatusRequest true "Day status"
// @Success 200 {object} entities.HabitDay
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /habits/{id}/days/{date} [put]
func (h *HabitHandler) SetDayStatus(c echo.Context) error {
	userID := getUserIDFromContext(c)

	habitID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	date, err := parseDateParam(c)
	if err != nil {
		return err
	}

	var req ports.SetDayStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	day, err := h.habitService.SetDayStatus(c.Request().Context(), userID, habitID, date, req.Status)
	if err != nil {
		h.logger.Errorw("Set habit day failed", "error", err, "habit_id", habitID, "date", date.String())
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, day)
}
