package handlers

import (
	"time"

	_ "thermostat_api/docs"
	"thermostat_api/internal/logger"
	"thermostat_api/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	streamInterval time.Duration
}

// Option customizes a Handler.
type Option func(*Handler)

// WithStreamInterval sets the default push period of the /ws state stream.
func WithStreamInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 && d <= maxInterval {
			h.streamInterval = d
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log.OrNop(), streamInterval: defaultInterval}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery(), h.requestIDMiddleware, h.requestLogMiddleware)
	router.NoRoute(h.notFound)
	router.NoMethod(h.methodNotAllowed)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/comprueba/", h.health)
	router.GET("/health", h.health)

	h.registerThermostatRoutes(router)

	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerThermostatRoutes(r *gin.Engine) {
	t := r.Group("/termostato")
	{
		t.GET("/", h.getThermostat)

		t.GET("/temperatura_ambiente/", h.getAmbient)
		t.POST("/temperatura_ambiente/", h.setAmbient)

		t.GET("/temperatura_deseada/", h.getTarget)
		t.POST("/temperatura_deseada/", h.setTarget)

		t.GET("/bateria/", h.getBattery)
		t.POST("/bateria/", h.setBattery)

		t.GET("/estado_climatizador/", h.getMode)
		t.POST("/estado_climatizador/", h.setMode)

		// derived from the battery charge; read-only
		t.GET("/indicador/", h.getIndicator)

		t.GET("/historial/", h.getHistory)
	}
}
