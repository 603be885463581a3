package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/jab1897/LoneStarLedger5/internal/handler"
	"github.com/jab1897/LoneStarLedger5/internal/middleware"
)

// Setup sets up all routes
func Setup(
	h *server.Hertz,
	districtHandler *handler.DistrictHandler,
	campusHandler *handler.CampusHandler,
	spendingHandler *handler.SpendingHandler,
	geoHandler *handler.GeoHandler,
	statsHandler *handler.StatsHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Health check routes
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	// API v1 routes
	apiV1 := h.Group("/api/v1")
	{
		districts := apiV1.Group("/districts")
		{
			districts.GET("", districtHandler.List)
			districts.GET("/counties", districtHandler.Counties)
			districts.GET("/:id", districtHandler.Get)
			districts.GET("/:id/campuses", campusHandler.ListByDistrict)
			districts.GET("/:id/spending", spendingHandler.ListByDistrict)
			districts.GET("/:id/spending/categories", spendingHandler.Categories)
			districts.GET("/:id/spending/export", spendingHandler.Export)
		}

		campuses := apiV1.Group("/campuses")
		{
			campuses.GET("", campusHandler.List)
			campuses.GET("/:id", campusHandler.Get)
		}

		geojson := apiV1.Group("/geojson")
		{
			geojson.GET("/districts/:id", geoHandler.DistrictFeature)
			geojson.GET("/districts/:id/campuses", geoHandler.CampusFeatures)
		}

		stats := apiV1.Group("/stats")
		{
			stats.GET("/state", statsHandler.StateStats)
			stats.GET("/fields/:dataset", statsHandler.DatasetFields)
		}
	}
}
