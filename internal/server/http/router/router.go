package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/grocermart/partnersync/internal/metrics"
	"github.com/grocermart/partnersync/internal/server/http/handlers"
	"github.com/grocermart/partnersync/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PartnerFacade, logger *slog.Logger, registry *metrics.Registry) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	simulationHandler := handlers.NewSimulationHandler(facade)
	partnerHandler := handlers.NewPartnerHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Healthz)
	engine.GET("/metrics", gin.WrapH(registry.Handler()))

	api := engine.Group("/api")
	api.POST("/orders/:id/simulate", simulationHandler.Simulate)
	api.GET("/simulations/:id", simulationHandler.Get)
	api.DELETE("/simulations/:id", simulationHandler.Cleanup)
	api.DELETE("/simulations", simulationHandler.CleanupAll)

	partner := api.Group("/partner")
	partner.POST("/orders/:id/send", partnerHandler.SendOrder)
	partner.POST("/export/:entity", partnerHandler.ExportSnapshot)
	partner.POST("/sync/:entity/:key", partnerHandler.SyncEntity)
	partner.POST("/archive", partnerHandler.Archive)

	return engine
}
