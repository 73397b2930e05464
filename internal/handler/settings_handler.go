package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodcart/internal/service"
)

// SettingsHandler handles the site-settings key-value endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetAll godoc
// @Summary Get all public settings as a key-value map
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]string
// @Router /settings [get]
func (h *SettingsHandler) GetAll(c echo.Context) error {
	settings, err := h.settingsService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update godoc
// @Summary Upsert settings from a key-value map
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body map[string]string true "Settings to upsert"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Router /settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var updates map[string]string
	if err := c.Bind(&updates); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.settingsService.BulkUpsert(c.Request().Context(), updates); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Settings updated successfully"})
}

// Init godoc
// @Summary Initialize default settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Router /settings/init [post]
func (h *SettingsHandler) Init(c echo.Context) error {
	if err := h.settingsService.InitDefaults(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Default settings initialized"})
}
