// README: Rate catalog: assembled tables, load-time key validation, lookups.
package pricing

import (
	"fmt"
	"strings"

	"limoquote/internal/modules/fleet"
)

// Catalog holds every rate table. It is loaded once per process and never
// mutated afterwards, so concurrent readers need no coordination.
type Catalog struct {
	Hourly           map[fleet.VehicleID]HourlyRate
	PointToPoint     map[fleet.VehicleID]PointToPointRate
	PremiumHourly    map[fleet.VehicleID]PremiumHourlyRate
	ZoneAirport      map[fleet.VehicleID][]ZoneAirportRate
	DirectAirport    map[fleet.VehicleID]map[string]DirectAirportRate
	ContractedRoutes map[fleet.VehicleID][]ContractedRoute
}

// DefaultCatalog returns the built-in business rate data.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Hourly:           defaultHourlyRates(),
		PointToPoint:     defaultPointToPointRates(),
		PremiumHourly:    defaultPremiumHourlyRates(),
		ZoneAirport:      defaultZoneAirportRates(),
		DirectAirport:    defaultDirectAirportRates(),
		ContractedRoutes: defaultContractedRoutes(),
	}
}

// Validate checks every composite key against the reference enumerations so
// a bad rate row fails at load time instead of surfacing as a silent lookup
// miss during quoting.
func (c *Catalog) Validate() error {
	for id, r := range c.Hourly {
		if !fleet.Known(id) {
			return fmt.Errorf("hourly rates: unknown vehicle %q", id)
		}
		if r.TotalStandard <= 0 || r.MinimumHours <= 0 {
			return fmt.Errorf("hourly rates: vehicle %q has non-positive rate or minimum", id)
		}
	}
	for id, r := range c.PointToPoint {
		if !fleet.Known(id) {
			return fmt.Errorf("point-to-point rates: unknown vehicle %q", id)
		}
		if r.TotalStandard <= 0 || r.MinimumHours <= 0 || r.BillingIncrement <= 0 {
			return fmt.Errorf("point-to-point rates: vehicle %q has non-positive rate, minimum or increment", id)
		}
	}
	for id, r := range c.PremiumHourly {
		if !fleet.Known(id) {
			return fmt.Errorf("premium hourly rates: unknown vehicle %q", id)
		}
		if r.HourlyPremium <= 0 {
			return fmt.Errorf("premium hourly rates: vehicle %q has non-positive rate", id)
		}
	}
	for id, rows := range c.ZoneAirport {
		if !fleet.Known(id) {
			return fmt.Errorf("zone airport rates: unknown vehicle %q", id)
		}
		for _, r := range rows {
			if _, ok := ZoneByID(r.Zone); !ok {
				return fmt.Errorf("zone airport rates: vehicle %q references unknown zone %q", id, r.Zone)
			}
			if _, ok := AirportByCode(r.Airport); !ok {
				return fmt.Errorf("zone airport rates: vehicle %q references unknown airport %q", id, r.Airport)
			}
			if r.Rate <= 0 {
				return fmt.Errorf("zone airport rates: vehicle %q has non-positive rate for %s/%s", id, r.Zone, r.Airport)
			}
		}
	}
	for id := range c.DirectAirport {
		if !fleet.Known(id) {
			return fmt.Errorf("direct airport rates: unknown vehicle %q", id)
		}
	}
	for id, routes := range c.ContractedRoutes {
		if !fleet.Known(id) {
			return fmt.Errorf("contracted routes: unknown vehicle %q", id)
		}
		for _, r := range routes {
			switch r.Service {
			case RouteGround, RouteArrival, RouteDeparture:
			default:
				return fmt.Errorf("contracted routes: vehicle %q has invalid service type %q", id, r.Service)
			}
			switch r.RateKind {
			case RouteRateFlat, RouteRateHourly:
			default:
				return fmt.Errorf("contracted routes: vehicle %q has invalid rate kind %q", id, r.RateKind)
			}
			if r.Service != RouteGround {
				_, originKnown := ContractedAirports[r.Origin]
				_, destKnown := ContractedAirports[r.Destination]
				if !originKnown && !destKnown {
					return fmt.Errorf("contracted routes: vehicle %q %s route %s -> %s names no known airport", id, r.Service, r.Origin, r.Destination)
				}
			}
			if r.Rate <= 0 {
				return fmt.Errorf("contracted routes: vehicle %q has non-positive rate for %s -> %s", id, r.Origin, r.Destination)
			}
		}
	}
	return nil
}

func (c *Catalog) hourlyRate(v fleet.VehicleID) (HourlyRate, bool) {
	r, ok := c.Hourly[v]
	return r, ok
}

func (c *Catalog) pointToPointRate(v fleet.VehicleID) (PointToPointRate, bool) {
	r, ok := c.PointToPoint[v]
	return r, ok
}

func (c *Catalog) premiumHourlyRate(v fleet.VehicleID) (PremiumHourlyRate, bool) {
	r, ok := c.PremiumHourly[v]
	return r, ok
}

func (c *Catalog) zoneAirportRate(v fleet.VehicleID, zone ZoneID, airport AirportCode) (ZoneAirportRate, bool) {
	for _, r := range c.ZoneAirport[v] {
		if r.Zone == zone && strings.EqualFold(string(r.Airport), string(airport)) {
			return r, true
		}
	}
	return ZoneAirportRate{}, false
}

func (c *Catalog) contractedRoute(v fleet.VehicleID, origin, destination string, service RouteServiceType) (ContractedRoute, bool) {
	for _, r := range c.ContractedRoutes[v] {
		if r.Origin == origin && r.Destination == destination && r.Service == service {
			return r, true
		}
	}
	return ContractedRoute{}, false
}

// DirectAirportRate looks up the alternate direct-code table by informal
// city token ("richmond", "dulles", ...).
func (c *Catalog) DirectAirportRate(v fleet.VehicleID, token string) (DirectAirportRate, bool) {
	r, ok := c.DirectAirport[v][strings.ToLower(token)]
	return r, ok
}

// AirportsForZone lists the airports a vehicle can serve from a zone.
func (c *Catalog) AirportsForZone(v fleet.VehicleID, zone ZoneID) []Airport {
	var out []Airport
	for _, r := range c.ZoneAirport[v] {
		if r.Zone != zone {
			continue
		}
		if a, ok := AirportByCode(r.Airport); ok {
			out = append(out, a)
		}
	}
	return out
}

// ZonesForAirport lists the pickup zones from which a vehicle serves an airport.
func (c *Catalog) ZonesForAirport(v fleet.VehicleID, airport AirportCode) []ServiceZone {
	seen := map[ZoneID]bool{}
	var out []ServiceZone
	for _, r := range c.ZoneAirport[v] {
		if !strings.EqualFold(string(r.Airport), string(airport)) || seen[r.Zone] {
			continue
		}
		seen[r.Zone] = true
		if z, ok := ZoneByID(r.Zone); ok {
			out = append(out, z)
		}
	}
	return out
}

// RouteOrigins lists the distinct contracted-route origins for a vehicle.
func (c *Catalog) RouteOrigins(v fleet.VehicleID) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range c.ContractedRoutes[v] {
		if !seen[r.Origin] {
			seen[r.Origin] = true
			out = append(out, r.Origin)
		}
	}
	return out
}

// RouteDestinations lists the distinct contracted destinations reachable
// from an origin for a vehicle.
func (c *Catalog) RouteDestinations(v fleet.VehicleID, origin string) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range c.ContractedRoutes[v] {
		if r.Origin != origin || seen[r.Destination] {
			continue
		}
		seen[r.Destination] = true
		out = append(out, r.Destination)
	}
	return out
}
