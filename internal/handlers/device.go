package handlers

import (
	"errors"
	"net/http"

	"smartcloth"
	"smartcloth/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK       = "ok"
	statusAccepted = "accepted"

	errGetState        = "failed to load state"
	errNotStarted      = "engine not started"
	errPressFailed     = "failed to press button"
	errScaleFailed     = "failed to set scale"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, smartcloth.ErrorResponse{Error: userMsg})
}

// ButtonRequest is the payload of a key press.
type ButtonRequest struct {
	// Key kind. Allowed: group, main, barcode
	Kind string `json:"kind" binding:"required" example:"group"`
	// Group 1..20 or main 1..5 (raw, cooked, add, delete, save); ignored for barcode
	ID int `json:"id" example:"7"`
}

// ScaleRequest is a gross load-cell reading.
type ScaleRequest struct {
	Grams *float64 `json:"grams" binding:"required" example:"412.5"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  smartcloth.StatusResponse
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, smartcloth.StatusResponse{Status: statusOK})
}

// @Summary      Press a device key
// @Description  The press is queued and consumed by the next engine tick; an unconsumed press is replaced.
// @Tags         device
// @Accept       json
// @Produce      json
// @Param        body  body      ButtonRequest  true  "Key"
// @Success      202   {object}  smartcloth.StatusResponse
// @Failure      400   {object}  smartcloth.ErrorResponse
// @Failure      401   {object}  smartcloth.ErrorResponse
// @Router       /api/v1/device/buttons [post]
// @Security     BearerAuth
func (h *Handler) pressButton(c *gin.Context) {
	var req ButtonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, smartcloth.ErrorResponse{Error: errInvalidBodyPref + err.Error()})
		return
	}
	err := h.services.Device.Press(c.Request.Context(), service.ButtonParams{Kind: req.Kind, ID: req.ID})
	switch {
	case service.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, smartcloth.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errPressFailed, "device_press_failed", err, "kind", req.Kind, "id", req.ID)
		return
	}
	c.JSON(http.StatusAccepted, smartcloth.StatusResponse{Status: statusAccepted})
}

// @Summary      Feed a scale reading
// @Tags         device
// @Accept       json
// @Produce      json
// @Param        body  body      ScaleRequest  true  "Gross grams"
// @Success      202   {object}  smartcloth.StatusResponse
// @Failure      400   {object}  smartcloth.ErrorResponse
// @Failure      401   {object}  smartcloth.ErrorResponse
// @Router       /api/v1/device/scale [post]
// @Security     BearerAuth
func (h *Handler) setScale(c *gin.Context) {
	var req ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, smartcloth.ErrorResponse{Error: errInvalidBodyPref + err.Error()})
		return
	}
	err := h.services.Device.SetScale(c.Request.Context(), service.ScaleParams{Grams: *req.Grams})
	switch {
	case service.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, smartcloth.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errScaleFailed, "device_scale_failed", err)
		return
	}
	c.JSON(http.StatusAccepted, smartcloth.StatusResponse{Status: statusAccepted})
}

// @Summary      Get device state
// @Tags         device
// @Produce      json
// @Success      200  {object}  models.DeviceState
// @Failure      401  {object}  smartcloth.ErrorResponse
// @Failure      500  {object}  smartcloth.ErrorResponse
// @Router       /api/v1/device/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "device_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Get the current display view
// @Tags         device
// @Produce      json
// @Success      200  {object}  engine.View
// @Failure      401  {object}  smartcloth.ErrorResponse
// @Failure      503  {object}  smartcloth.ErrorResponse
// @Router       /api/v1/device/display [get]
// @Security     BearerAuth
func (h *Handler) getDisplay(c *gin.Context) {
	v, err := h.services.Monitoring.Display(c.Request.Context())
	if err != nil {
		h.engineUnavailable(c, "device_get_display_failed", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// engineUnavailable answers 503 while the engine has not booted and 500
// otherwise.
func (h *Handler) engineUnavailable(c *gin.Context, logKey string, err error) {
	if errors.Is(err, service.ErrNotStarted) {
		c.JSON(http.StatusServiceUnavailable, smartcloth.ErrorResponse{Error: errNotStarted})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errGetState, logKey, err)
}
