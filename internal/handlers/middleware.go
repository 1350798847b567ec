package handlers

import (
	"net/http"
	"strings"
	"time"

	"smartcloth"

	"github.com/gin-gonic/gin"
)

// operatorCtx is the gin context key holding the authenticated operator id.
const operatorCtx = "operatorId"

const (
	errMissingAuth = "missing Authorization header"
	errBadAuth     = "invalid Authorization header format"
	errBadToken    = "invalid or expired token"
)

// operatorMiddleware guards /api/v1: it accepts "Bearer <token>" only and
// stores the operator id for the handlers behind it.
func (h *Handler) operatorMiddleware(c *gin.Context) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, smartcloth.ErrorResponse{Error: errMissingAuth})
		return
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, smartcloth.ErrorResponse{Error: errBadAuth})
		return
	}

	operatorID, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, smartcloth.ErrorResponse{Error: errBadToken})
		return
	}

	c.Set(operatorCtx, operatorID)
	c.Next()
}

// requestLogger writes one line per request. Websocket upgrades are logged
// when the stream ends.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	fields := []interface{}{
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	}
	if id, ok := c.Get(operatorCtx); ok {
		fields = append(fields, "operator", id)
	}
	if c.Writer.Status() >= http.StatusInternalServerError {
		h.log.Warnw("http_request", fields...)
		return
	}
	h.log.Debugw("http_request", fields...)
}
