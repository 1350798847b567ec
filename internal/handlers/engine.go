package handlers

import (
	"net/http"
	"strings"

	"smartcloth"
	"smartcloth/internal/engine"

	"github.com/gin-gonic/gin"
)

// @Summary      List transition rules
// @Description  Optional 'from' narrows the table to the rules leaving one state.
// @Tags         engine
// @Produce      json
// @Param        from  query     string  false  "State name"  example(WEIGHED)
// @Success      200   {object}  smartcloth.ListResponse[engine.Rule]
// @Failure      400   {object}  smartcloth.ErrorResponse
// @Failure      401   {object}  smartcloth.ErrorResponse
// @Router       /api/v1/engine/rules [get]
// @Security     BearerAuth
func (h *Handler) getRules(c *gin.Context) {
	rules := h.services.Inspector.Rules()
	if qs := strings.TrimSpace(c.Query("from")); qs != "" {
		s, err := engine.ParseState(strings.ToUpper(qs))
		if err != nil {
			c.JSON(http.StatusBadRequest, smartcloth.ErrorResponse{Error: err.Error()})
			return
		}
		rules = engine.RulesFrom(rules, s)
	}
	c.JSON(http.StatusOK, smartcloth.NewList(rules))
}

// @Summary      Engine debug dump
// @Tags         engine
// @Produce      plain
// @Success      200  {string}  string
// @Failure      401  {object}  smartcloth.ErrorResponse
// @Router       /api/v1/engine/debug [get]
// @Security     BearerAuth
func (h *Handler) getDebug(c *gin.Context) {
	c.String(http.StatusOK, h.services.Inspector.Dump())
}

// @Summary      Full engine snapshot
// @Tags         engine
// @Produce      json
// @Success      200  {object}  engine.Snapshot
// @Failure      401  {object}  smartcloth.ErrorResponse
// @Failure      503  {object}  smartcloth.ErrorResponse
// @Router       /api/v1/engine/snapshot [get]
// @Security     BearerAuth
func (h *Handler) getSnapshot(c *gin.Context) {
	s, err := h.services.Monitoring.Snapshot(c.Request.Context())
	if err != nil {
		h.engineUnavailable(c, "engine_snapshot_failed", err)
		return
	}
	c.JSON(http.StatusOK, s)
}
