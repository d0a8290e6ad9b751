package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifehub/core/internal/application/services"
	"github.com/lifehub/core/internal/infrastructure/logger"
	"github.com/lifehub/core/internal/ports"
)

// AddictionHandler handles addiction-related requests
type AddictionHandler struct {
	addictionService *services.AddictionService
	logger           *logger.Logger
}

// NewAddictionHandler creates a new addiction handler
func NewAddictionHandler(addictionService *services.AddictionService, logger *logger.Logger) *AddictionHandler {
	return &AddictionHandler{
		addictionService: addictionService,
		logger:           logger,
	}
}

// ListAddictions godoc
// @Summary List addictions with reset history
// @Description Returns every addiction with its in-window reset dates and the latest reset moment overall
// @Tags addictions
// @Produce json
// @Param days query int false "Window size in days (1-365, default 30)"
// @Success 200 {array} ports.AddictionWithResets
// @Security BearerAuth
// @Router /addictions [get]
func (h *AddictionHandler) ListAddictions(c echo.Context) error {
	userID := getUserIDFromContext(c)

	addictions, err := h.addictionService.ListWithResets(c.Request().Context(), userID, windowDaysParam(c))
	if err != nil {
		h.logger.Errorw("List addictions failed", "error", err, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, addictions)
}

// CreateAddiction godoc
// @Summary Create a new addiction tracker
// @Tags addictions
// @Accept json
// @Produce json
// @Param request body ports.AddictionUpsertRequest true "Addiction data"
// @Success 201 {object} entities.Addiction
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /addictions [post]
func (h *AddictionHandler) CreateAddiction(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.AddictionUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	addiction, err := h.addictionService.CreateAddiction(c.Request().Context(), userID, req)
	if err != nil {
		h.logger.Errorw("Create addiction failed", "error", err, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusCreated, addiction)
}

// GetAddiction godoc
// @Summary Get addiction by ID
// @Tags addictions
// @Produce json
// @Param id path string true "Addiction ID"
// @Success 200 {object} entities.Addiction
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /addictions/{id} [get]
func (h *AddictionHandler) GetAddiction(c echo.Context) error {
	userID := getUserIDFromContext(c)

	addictionID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	addiction, err := h.addictionService.GetAddiction(c.Request().Context(), userID, addictionID)
	if err != nil {
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, addiction)
}

// UpdateAddiction godoc
// @Summary Update an addiction
// @Tags addictions
// @Accept json
// @Produce json
// @Param id path string true "Addiction ID"
// @Param request body ports.AddictionUpsertRequest true "Addiction data"
// @Success 200 {object} entities.Addiction
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /addictions/{id} [put]
func (h *AddictionHandler) UpdateAddiction(c echo.Context) error {
	userID := getUserIDFromContext(c)

	addictionID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req ports.AddictionUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	addiction, err := h.addictionService.UpdateAddiction(c.Request().Context(), userID, addictionID, req)
	if err != nil {
		h.logger.Errorw("Update addiction failed", "error", err, "addiction_id", addictionID, "user_id", userID)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, addiction)
}

// DeleteAddiction godoc
// @Summary Delete an addiction and its reset ledger
// @Tags addictions
// @Param id path string true "Addiction ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /addictions/{id} [delete]
func (h *AddictionHandler) DeleteAddiction(c echo.Context) error {
	userID := getUserIDFromContext(c)

	addictionID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.addictionService.DeleteAddiction(c.Request().Context(), userID, addictionID); err != nil {
		return domainHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetReset godoc
// @Summary Record a reset on a day
// @Description Appends a relapse event; repeated calls for the same day stack
// @Tags addictions
// @Param id path string true "Addiction ID"
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /addictions/{id}/resets/{date} [put]
func (h *AddictionHandler) SetReset(c echo.Context) error {
	userID := getUserIDFromContext(c)

	addictionID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	date, err := parseDateParam(c)
	if err != nil {
		return err
	}

	if err := h.addictionService.SetReset(c.Request().Context(), userID, addictionID, date); err != nil {
		h.logger.Errorw("Set reset failed", "error", err, "addiction_id", addictionID, "date", date.String())
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Reset recorded"})
}

// RemoveReset godoc
// @Summary Remove the latest reset of a day
// @Description Removes only the most recently recorded event for that day
// @Tags addictions
// @Param id path string true "Addiction ID"
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /addictions/{id}/resets/{date} [delete]
func (h *AddictionHandler) RemoveReset(c echo.Context) error {
	userID := getUserIDFromContext(c)

	addictionID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	date, err := parseDateParam(c)
	if err != nil {
		return err
	}

	if err := h.addictionService.RemoveReset(c.Request().Context(), userID, addictionID, date); err != nil {
		h.logger.Errorw("Remove reset failed", "error", err, "addiction_id", addictionID, "date", date.String())
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Reset removed"})
}
