// README: Contracted-corporate route table (pre-negotiated origin/destination rates).
package pricing

import "limoquote/internal/modules/fleet"

type RouteRateKind string

const (
	RouteRateFlat   RouteRateKind = "flat"
	RouteRateHourly RouteRateKind = "hourly"
)

// ContractedRoute is a pre-negotiated price between a named origin and
// destination for a specific vehicle and trip direction. A match always
// short-circuits discount and surcharge composition.
type ContractedRoute struct {
	Origin         string
	Destination    string
	Service        RouteServiceType
	Rate           int64
	RateKind       RouteRateKind
	EstimatedHours float64
}

// Contracted locations and airport aliases used by the route table.
var ContractedZones = map[string]string{
	"Central Virginia": "Richmond metro and surrounding areas",
	"Mclean VA":        "McLean, Virginia (Northern VA)",
	"Cville":           "Charlottesville, Virginia",
}

var ContractedAirports = map[string]AirportCode{
	"Richmond International Airport":          AirportRIC,
	"Ronald Reagan National Airport":          AirportDCA,
	"Washington Dulles International Airport": AirportIAD,
	"Charlottesville Albemarle Airport":       AirportCHO,
}

func defaultContractedRoutes() map[fleet.VehicleID][]ContractedRoute {
	return map[fleet.VehicleID][]ContractedRoute{
		fleet.Sedan: {
			{Origin: "Central Virginia", Destination: "Central Virginia", Service: RouteGround, Rate: 95, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Central Virginia", Destination: "Charlottesville Albemarle Airport", Service: RouteDeparture, Rate: 300, RateKind: RouteRateFlat, EstimatedHours: 3},
			{Origin: "Central Virginia", Destination: "Cville", Service: RouteGround, Rate: 300, RateKind: RouteRateFlat, EstimatedHours: 3},
			{Origin: "Central Virginia", Destination: "Mclean VA", Service: RouteGround, Rate: 425, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Central Virginia", Destination: "Richmond International Airport", Service: RouteDeparture, Rate: 110, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Central Virginia", Destination: "Ronald Reagan National Airport", Service: RouteDeparture, Rate: 455, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Central Virginia", Destination: "Washington Dulles International Airport", Service: RouteDeparture, Rate: 465, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Charlottesville Albemarle Airport", Destination: "Central Virginia", Service: RouteGround, Rate: 300, RateKind: RouteRateFlat, EstimatedHours: 3},
			{Origin: "Cville", Destination: "Central Virginia", Service: RouteGround, Rate: 300, RateKind: RouteRateFlat, EstimatedHours: 3},
			{Origin: "Mclean VA", Destination: "Central Virginia", Service: RouteGround, Rate: 425, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Richmond International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 110, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Ronald Reagan National Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 455, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Washington Dulles International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 465, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Central Virginia", Destination: "Central Virginia", Service: RouteGround, Rate: 110, RateKind: RouteRateHourly, EstimatedHours: 1},
			{Origin: "Mclean VA", Destination: "Mclean VA", Service: RouteGround, Rate: 100, RateKind: RouteRateHourly, EstimatedHours: 5},
		},
		fleet.LimoBus: {
			{Origin: "Central Virginia", Destination: "Central Virginia", Service: RouteGround, Rate: 213, RateKind: RouteRateHourly, EstimatedHours: 1},
			{Origin: "Central Virginia", Destination: "Richmond International Airport", Service: RouteDeparture, Rate: 170, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Central Virginia", Destination: "Ronald Reagan National Airport", Service: RouteDeparture, Rate: 1097, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Central Virginia", Destination: "Washington Dulles International Airport", Service: RouteDeparture, Rate: 1107, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Richmond International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 218, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Ronald Reagan National Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 1097, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Washington Dulles International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 1107, RateKind: RouteRateFlat, EstimatedHours: 5},
		},
		fleet.MiniBusSofa: {
			{Origin: "Central Virginia", Destination: "Central Virginia", Service: RouteGround, Rate: 157, RateKind: RouteRateHourly, EstimatedHours: 1},
			{Origin: "Central Virginia", Destination: "Richmond International Airport", Service: RouteDeparture, Rate: 183, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Central Virginia", Destination: "Ronald Reagan National Airport", Service: RouteDeparture, Rate: 947, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Central Virginia", Destination: "Washington Dulles International Airport", Service: RouteDeparture, Rate: 957, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Richmond International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 183, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Ronald Reagan National Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 947, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Washington Dulles International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 957, RateKind: RouteRateFlat, EstimatedHours: 5},
		},
		fleet.SprinterLimo: {
			{Origin: "Central Virginia", Destination: "Central Virginia", Service: RouteGround, Rate: 183, RateKind: RouteRateHourly, EstimatedHours: 1},
			{Origin: "Central Virginia", Destination: "Richmond International Airport", Service: RouteDeparture, Rate: 188, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Central Virginia", Destination: "Ronald Reagan National Airport", Service: RouteDeparture, Rate: 957, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Central Virginia", Destination: "Washington Dulles International Airport", Service: RouteDeparture, Rate: 967, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Richmond International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 188, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Ronald Reagan National Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 957, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Washington Dulles International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 967, RateKind: RouteRateFlat, EstimatedHours: 5},
		},
		fleet.ExecutiveMini: {
			{Origin: "Central Virginia", Destination: "Central Virginia", Service: RouteGround, Rate: 157, RateKind: RouteRateHourly, EstimatedHours: 1},
			{Origin: "Central Virginia", Destination: "Richmond International Airport", Service: RouteDeparture, Rate: 183, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Central Virginia", Destination: "Ronald Reagan National Airport", Service: RouteDeparture, Rate: 947, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Central Virginia", Destination: "Washington Dulles International Airport", Service: RouteDeparture, Rate: 957, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Richmond International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 183, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Ronald Reagan National Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 947, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Washington Dulles International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 957, RateKind: RouteRateFlat, EstimatedHours: 5},
		},
		fleet.StretchLimo: {
			{Origin: "Central Virginia", Destination: "Central Virginia", Service: RouteGround, Rate: 169, RateKind: RouteRateHourly, EstimatedHours: 1},
			{Origin: "Central Virginia", Destination: "Richmond International Airport", Service: RouteDeparture, Rate: 178, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Central Virginia", Destination: "Ronald Reagan National Airport", Service: RouteDeparture, Rate: 932, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Central Virginia", Destination: "Washington Dulles International Airport", Service: RouteDeparture, Rate: 942, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Richmond International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 178, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Ronald Reagan National Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 932, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Washington Dulles International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 942, RateKind: RouteRateFlat, EstimatedHours: 5},
		},
		fleet.Transit: {
			{Origin: "Central Virginia", Destination: "Richmond International Airport", Service: RouteDeparture, Rate: 183, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Central Virginia", Destination: "Ronald Reagan National Airport", Service: RouteDeparture, Rate: 800, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Central Virginia", Destination: "Washington Dulles International Airport", Service: RouteDeparture, Rate: 800, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Mclean VA", Destination: "Mclean VA", Service: RouteGround, Rate: 137, RateKind: RouteRateHourly, EstimatedHours: 5},
			{Origin: "Richmond International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 183, RateKind: RouteRateFlat, EstimatedHours: 1},
			{Origin: "Ronald Reagan National Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 800, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Washington Dulles International Airport", Destination: "Central Virginia", Service: RouteArrival, Rate: 800, RateKind: RouteRateFlat, EstimatedHours: 5},
			{Origin: "Central Virginia", Destination: "Central Virginia", Service: RouteGround, Rate: 157, RateKind: RouteRateFlat, EstimatedHours: 1},
		},
	}
}
