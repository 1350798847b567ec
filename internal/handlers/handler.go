package handlers

import (
	"smartcloth/internal/logger"
	"smartcloth/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// WebSocket streams share the HTTP port.
	router.GET("/ws", h.wsConnect)
	router.GET("/ws/display", h.wsDisplay)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.operatorMiddleware)
	{
		h.registerDeviceRoutes(api)
		h.registerEngineRoutes(api)
		api.GET("/meals", h.getMeals)
		api.GET("/logs", h.getLogs)
	}
}

func (h *Handler) registerDeviceRoutes(api *gin.RouterGroup) {
	device := api.Group("/device")
	{
		// Body example: {"kind":"group","id":7}
		device.POST("/buttons", h.pressButton)
		// Body example: {"grams":412.5}
		device.POST("/scale", h.setScale)
		device.GET("/state", h.getState)
		device.GET("/display", h.getDisplay)
	}
}

func (h *Handler) registerEngineRoutes(api *gin.RouterGroup) {
	eng := api.Group("/engine")
	{
		eng.GET("/rules", h.getRules)
		eng.GET("/debug", h.getDebug)
		eng.GET("/snapshot", h.getSnapshot)
	}
}
