// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"limoquote/internal/http/handlers"
	"limoquote/internal/http/middleware"
	"limoquote/internal/modules/pricing"
	"limoquote/internal/modules/zones"
)

type ServerDeps struct {
	Pricing *pricing.Service
	Catalog *pricing.Catalog
	Zones   *zones.Service
}

func NewRouter(deps ServerDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery())

	quoteHandler := handlers.NewQuoteHandler(deps.Pricing)
	r.POST("/api/quotes", quoteHandler.Create)
	r.POST("/api/quotes/compare", quoteHandler.Compare)

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	r.GET("/api/vehicles", catalogHandler.ListVehicles)
	r.GET("/api/vehicles/:id/airports", catalogHandler.VehicleAirports)
	r.GET("/api/vehicles/:id/routes", catalogHandler.VehicleRoutes)
	r.GET("/api/airports", catalogHandler.ListAirports)
	r.GET("/api/zones", catalogHandler.ListZones)

	if deps.Zones != nil {
		zoneHandler := handlers.NewZoneHandler(deps.Zones)
		r.POST("/api/zones/resolve", zoneHandler.Resolve)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
