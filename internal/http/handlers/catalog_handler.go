// README: Read-only catalog handlers: vehicles, airports, zones, routes.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"limoquote/internal/modules/fleet"
	"limoquote/internal/modules/pricing"
)

type CatalogHandler struct {
	catalog *pricing.Catalog
}

func NewCatalogHandler(catalog *pricing.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"vehicles": fleet.Vehicles})
}

func (h *CatalogHandler) ListAirports(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"airports": pricing.Airports})
}

func (h *CatalogHandler) ListZones(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"zones": pricing.ServiceZones})
}

// VehicleAirports lists the airports a vehicle serves. With a ?zone= query
// the list narrows to pairs priced from that zone.
func (h *CatalogHandler) VehicleAirports(c *gin.Context) {
	id := fleet.VehicleID(c.Param("id"))
	if !fleet.Known(id) {
		writeError(c, http.StatusNotFound, pricing.ErrUnknownVehicle.Error())
		return
	}
	zone := pricing.ZoneID(c.Query("zone"))
	if zone != "" {
		if _, ok := pricing.ZoneByID(zone); !ok {
			writeError(c, http.StatusBadRequest, "unknown zone")
			return
		}
		writeJSON(c, http.StatusOK, gin.H{"airports": h.catalog.AirportsForZone(id, zone)})
		return
	}

	seen := map[pricing.AirportCode]bool{}
	var airports []pricing.Airport
	for _, z := range pricing.ServiceZones {
		for _, a := range h.catalog.AirportsForZone(id, z.ID) {
			if !seen[a.Code] {
				seen[a.Code] = true
				airports = append(airports, a)
			}
		}
	}
	writeJSON(c, http.StatusOK, gin.H{"airports": airports})
}

// VehicleRoutes lists contracted-route selectors for a vehicle, optionally
// narrowed to the destinations reachable from ?origin=.
func (h *CatalogHandler) VehicleRoutes(c *gin.Context) {
	id := fleet.VehicleID(c.Param("id"))
	if !fleet.Known(id) {
		writeError(c, http.StatusNotFound, pricing.ErrUnknownVehicle.Error())
		return
	}
	if origin := c.Query("origin"); origin != "" {
		writeJSON(c, http.StatusOK, gin.H{"destinations": h.catalog.RouteDestinations(id, origin)})
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"origins":   h.catalog.RouteOrigins(id),
		"locations": pricing.ContractedZones,
	})
}
