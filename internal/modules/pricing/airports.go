// README: Airport and service-zone reference data with zone-based flat rates.
package pricing

import (
	"strings"

	"limoquote/internal/modules/fleet"
)

type AirportCode string

const (
	AirportRIC AirportCode = "RIC"
	AirportDCA AirportCode = "DCA"
	AirportIAD AirportCode = "IAD"
	AirportBWI AirportCode = "BWI"
	AirportCHO AirportCode = "CHO"
)

type Airport struct {
	Code     AirportCode `json:"code"`
	Name     string      `json:"name"`
	FullName string      `json:"full_name"`
	City     string      `json:"city"`
	State    string      `json:"state"`
}

var Airports = []Airport{
	{Code: AirportRIC, Name: "Richmond International", FullName: "Richmond International Airport", City: "Richmond", State: "VA"},
	{Code: AirportDCA, Name: "Reagan National", FullName: "Ronald Reagan Washington National Airport", City: "Arlington", State: "VA"},
	{Code: AirportIAD, Name: "Washington Dulles", FullName: "Washington Dulles International Airport", City: "Dulles", State: "VA"},
	{Code: AirportBWI, Name: "Baltimore Washington", FullName: "Baltimore/Washington International Thurgood Marshall Airport", City: "Baltimore", State: "MD"},
	{Code: AirportCHO, Name: "Charlottesville", FullName: "Charlottesville Albemarle Airport", City: "Charlottesville", State: "VA"},
}

func AirportByCode(code AirportCode) (Airport, bool) {
	for _, a := range Airports {
		if strings.EqualFold(string(a.Code), string(code)) {
			return a, true
		}
	}
	return Airport{}, false
}

// ZoneID identifies a geographic catchment area used to select a flat
// airport-transfer rate. Zones are derived from pickup addresses by the
// zone resolver; the engine only consumes the identifier.
type ZoneID string

const (
	ZoneCentralVirginia ZoneID = "central-virginia"
	ZonePrinceGeorge    ZoneID = "prince-george"
	ZoneNorfolk         ZoneID = "norfolk"
	ZoneCharlottesville ZoneID = "charlottesville"
)

type ServiceZone struct {
	ID          ZoneID   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cities      []string `json:"cities,omitempty"`
}

var ServiceZones = []ServiceZone{
	{ID: ZoneCentralVirginia, Name: "Central Virginia", Description: "Richmond metro area and surrounding counties", Cities: []string{"Richmond", "Henrico", "Chesterfield", "Hanover", "Goochland"}},
	{ID: ZonePrinceGeorge, Name: "Prince George", Description: "Prince George County and surrounding area", Cities: []string{"Prince George", "Hopewell", "Petersburg"}},
	{ID: ZoneNorfolk, Name: "Norfolk", Description: "Norfolk and Hampton Roads area", Cities: []string{"Norfolk", "Virginia Beach", "Chesapeake", "Hampton", "Newport News"}},
	{ID: ZoneCharlottesville, Name: "Charlottesville", Description: "Charlottesville and Albemarle County area", Cities: []string{"Charlottesville", "Albemarle"}},
}

func ZoneByID(id ZoneID) (ServiceZone, bool) {
	for _, z := range ServiceZones {
		if z.ID == id {
			return z, true
		}
	}
	return ServiceZone{}, false
}

// ZoneAirportRate is a flat transfer rate for one (zone, airport) pair.
// The rate includes gratuity, fuel, estimated tolls and airport parking.
type ZoneAirportRate struct {
	Zone           ZoneID
	Airport        AirportCode
	Rate           int64
	EstimatedHours float64
	EstimatedMiles int
}

// Not every vehicle serves every route; absence means no quote, not zero.
func defaultZoneAirportRates() map[fleet.VehicleID][]ZoneAirportRate {
	return map[fleet.VehicleID][]ZoneAirportRate{
		fleet.Sedan: {
			{Zone: ZoneCentralVirginia, Airport: AirportRIC, Rate: 105, EstimatedHours: 1, EstimatedMiles: 15},
			{Zone: ZoneCentralVirginia, Airport: AirportDCA, Rate: 450, EstimatedHours: 4, EstimatedMiles: 110},
			{Zone: ZoneCentralVirginia, Airport: AirportIAD, Rate: 460, EstimatedHours: 4.5, EstimatedMiles: 120},
			{Zone: ZoneCentralVirginia, Airport: AirportBWI, Rate: 657, EstimatedHours: 7, EstimatedMiles: 180},
			{Zone: ZoneCentralVirginia, Airport: AirportCHO, Rate: 333, EstimatedHours: 2.5, EstimatedMiles: 70},
			{Zone: ZonePrinceGeorge, Airport: AirportRIC, Rate: 105, EstimatedHours: 2, EstimatedMiles: 30},
			{Zone: ZonePrinceGeorge, Airport: AirportDCA, Rate: 450, EstimatedHours: 5, EstimatedMiles: 130},
			{Zone: ZonePrinceGeorge, Airport: AirportIAD, Rate: 460, EstimatedHours: 6.5, EstimatedMiles: 140},
			{Zone: ZonePrinceGeorge, Airport: AirportBWI, Rate: 657, EstimatedHours: 8, EstimatedMiles: 200},
			{Zone: ZoneNorfolk, Airport: AirportRIC, Rate: 105, EstimatedHours: 4, EstimatedMiles: 90},
			{Zone: ZoneNorfolk, Airport: AirportCHO, Rate: 333, EstimatedHours: 6.5, EstimatedMiles: 160},
		},
		fleet.Transit: {
			{Zone: ZoneCentralVirginia, Airport: AirportRIC, Rate: 175, EstimatedHours: 1, EstimatedMiles: 15},
			{Zone: ZoneCentralVirginia, Airport: AirportDCA, Rate: 700, EstimatedHours: 4, EstimatedMiles: 110},
			{Zone: ZoneCentralVirginia, Airport: AirportIAD, Rate: 710, EstimatedHours: 4.5, EstimatedMiles: 120},
			{Zone: ZoneCentralVirginia, Airport: AirportBWI, Rate: 854, EstimatedHours: 7, EstimatedMiles: 180},
			{Zone: ZoneCentralVirginia, Airport: AirportCHO, Rate: 525, EstimatedHours: 2.5, EstimatedMiles: 70},
			{Zone: ZonePrinceGeorge, Airport: AirportRIC, Rate: 175, EstimatedHours: 2, EstimatedMiles: 30},
			{Zone: ZonePrinceGeorge, Airport: AirportDCA, Rate: 700, EstimatedHours: 5, EstimatedMiles: 130},
			{Zone: ZonePrinceGeorge, Airport: AirportIAD, Rate: 710, EstimatedHours: 6.5, EstimatedMiles: 140},
			{Zone: ZonePrinceGeorge, Airport: AirportBWI, Rate: 854, EstimatedHours: 8, EstimatedMiles: 200},
			{Zone: ZoneNorfolk, Airport: AirportRIC, Rate: 175, EstimatedHours: 4, EstimatedMiles: 90},
		},
		fleet.ExecutiveMini: {
			{Zone: ZoneCentralVirginia, Airport: AirportRIC, Rate: 185, EstimatedHours: 1, EstimatedMiles: 15},
			{Zone: ZoneCentralVirginia, Airport: AirportDCA, Rate: 720, EstimatedHours: 4, EstimatedMiles: 110},
			{Zone: ZoneCentralVirginia, Airport: AirportIAD, Rate: 730, EstimatedHours: 4.5, EstimatedMiles: 120},
			{Zone: ZoneCentralVirginia, Airport: AirportBWI, Rate: 874, EstimatedHours: 7, EstimatedMiles: 180},
			{Zone: ZoneCentralVirginia, Airport: AirportCHO, Rate: 545, EstimatedHours: 2.5, EstimatedMiles: 70},
			{Zone: ZonePrinceGeorge, Airport: AirportRIC, Rate: 185, EstimatedHours: 2, EstimatedMiles: 30},
			{Zone: ZonePrinceGeorge, Airport: AirportDCA, Rate: 720, EstimatedHours: 5, EstimatedMiles: 130},
			{Zone: ZonePrinceGeorge, Airport: AirportIAD, Rate: 730, EstimatedHours: 6.5, EstimatedMiles: 140},
			{Zone: ZonePrinceGeorge, Airport: AirportBWI, Rate: 874, EstimatedHours: 8, EstimatedMiles: 200},
		},
		fleet.MiniBusSofa: {
			{Zone: ZoneCentralVirginia, Airport: AirportRIC, Rate: 185, EstimatedHours: 1, EstimatedMiles: 15},
			{Zone: ZoneCentralVirginia, Airport: AirportDCA, Rate: 720, EstimatedHours: 4, EstimatedMiles: 110},
			{Zone: ZoneCentralVirginia, Airport: AirportIAD, Rate: 730, EstimatedHours: 4.5, EstimatedMiles: 120},
			{Zone: ZoneCentralVirginia, Airport: AirportBWI, Rate: 874, EstimatedHours: 7, EstimatedMiles: 180},
			{Zone: ZoneCentralVirginia, Airport: AirportCHO, Rate: 545, EstimatedHours: 2.5, EstimatedMiles: 70},
			{Zone: ZonePrinceGeorge, Airport: AirportRIC, Rate: 185, EstimatedHours: 2, EstimatedMiles: 30},
			{Zone: ZonePrinceGeorge, Airport: AirportDCA, Rate: 720, EstimatedHours: 5, EstimatedMiles: 130},
			{Zone: ZonePrinceGeorge, Airport: AirportIAD, Rate: 730, EstimatedHours: 6.5, EstimatedMiles: 140},
			{Zone: ZonePrinceGeorge, Airport: AirportBWI, Rate: 874, EstimatedHours: 8, EstimatedMiles: 200},
		},
		fleet.StretchLimo: {
			{Zone: ZoneCentralVirginia, Airport: AirportRIC, Rate: 220, EstimatedHours: 1, EstimatedMiles: 15},
			{Zone: ZoneCentralVirginia, Airport: AirportDCA, Rate: 820, EstimatedHours: 4, EstimatedMiles: 110},
			{Zone: ZoneCentralVirginia, Airport: AirportIAD, Rate: 830, EstimatedHours: 4.5, EstimatedMiles: 120},
			{Zone: ZoneCentralVirginia, Airport: AirportBWI, Rate: 1020, EstimatedHours: 7, EstimatedMiles: 180},
			{Zone: ZoneCentralVirginia, Airport: AirportCHO, Rate: 625, EstimatedHours: 2.5, EstimatedMiles: 70},
			{Zone: ZonePrinceGeorge, Airport: AirportRIC, Rate: 220, EstimatedHours: 2, EstimatedMiles: 30},
			{Zone: ZonePrinceGeorge, Airport: AirportDCA, Rate: 820, EstimatedHours: 5, EstimatedMiles: 130},
			{Zone: ZonePrinceGeorge, Airport: AirportIAD, Rate: 830, EstimatedHours: 6.5, EstimatedMiles: 140},
			{Zone: ZonePrinceGeorge, Airport: AirportBWI, Rate: 1020, EstimatedHours: 8, EstimatedMiles: 200},
		},
		fleet.SprinterLimo: {
			{Zone: ZoneCentralVirginia, Airport: AirportRIC, Rate: 194, EstimatedHours: 1, EstimatedMiles: 15},
			{Zone: ZoneCentralVirginia, Airport: AirportDCA, Rate: 780, EstimatedHours: 4, EstimatedMiles: 110},
			{Zone: ZoneCentralVirginia, Airport: AirportIAD, Rate: 790, EstimatedHours: 4.5, EstimatedMiles: 120},
			{Zone: ZoneCentralVirginia, Airport: AirportBWI, Rate: 910, EstimatedHours: 7, EstimatedMiles: 180},
			{Zone: ZoneCentralVirginia, Airport: AirportCHO, Rate: 575, EstimatedHours: 2.5, EstimatedMiles: 70},
			{Zone: ZonePrinceGeorge, Airport: AirportRIC, Rate: 194, EstimatedHours: 2, EstimatedMiles: 30},
			{Zone: ZonePrinceGeorge, Airport: AirportDCA, Rate: 780, EstimatedHours: 5, EstimatedMiles: 130},
			{Zone: ZonePrinceGeorge, Airport: AirportIAD, Rate: 790, EstimatedHours: 6.5, EstimatedMiles: 140},
			{Zone: ZonePrinceGeorge, Airport: AirportBWI, Rate: 910, EstimatedHours: 8, EstimatedMiles: 200},
			{Zone: ZoneNorfolk, Airport: AirportRIC, Rate: 194, EstimatedHours: 4, EstimatedMiles: 90},
		},
		fleet.LimoBus: {
			{Zone: ZoneCentralVirginia, Airport: AirportRIC, Rate: 225, EstimatedHours: 1, EstimatedMiles: 15},
			{Zone: ZoneCentralVirginia, Airport: AirportDCA, Rate: 1020, EstimatedHours: 4, EstimatedMiles: 110},
			{Zone: ZoneCentralVirginia, Airport: AirportIAD, Rate: 1045, EstimatedHours: 4.5, EstimatedMiles: 120},
			{Zone: ZoneCentralVirginia, Airport: AirportBWI, Rate: 1265, EstimatedHours: 7, EstimatedMiles: 180},
			{Zone: ZoneCentralVirginia, Airport: AirportCHO, Rate: 624, EstimatedHours: 2.5, EstimatedMiles: 70},
			{Zone: ZonePrinceGeorge, Airport: AirportRIC, Rate: 225, EstimatedHours: 2, EstimatedMiles: 30},
			{Zone: ZonePrinceGeorge, Airport: AirportDCA, Rate: 1020, EstimatedHours: 5, EstimatedMiles: 130},
			{Zone: ZonePrinceGeorge, Airport: AirportIAD, Rate: 1045, EstimatedHours: 6.5, EstimatedMiles: 140},
			{Zone: ZonePrinceGeorge, Airport: AirportBWI, Rate: 1265, EstimatedHours: 8, EstimatedMiles: 200},
			{Zone: ZoneNorfolk, Airport: AirportRIC, Rate: 225, EstimatedHours: 4, EstimatedMiles: 90},
		},
	}
}

// DirectAirportRate is the alternate airport-rate source, keyed by an
// informal lowercase city token rather than a zone. The zone table is
// canonical for quoting; this tree is retained for reconciliation against
// the business data and is exposed read-only.
type DirectAirportRate struct {
	Total    int64
	Base     int64
	Gratuity int64
	Fuel     int64
	Tolls    int64
	Parking  int64
}

func defaultDirectAirportRates() map[fleet.VehicleID]map[string]DirectAirportRate {
	return map[fleet.VehicleID]map[string]DirectAirportRate{
		fleet.Sedan: {
			"richmond":        {Total: 105, Base: 70, Gratuity: 15, Fuel: 10, Tolls: 5, Parking: 5},
			"charlottesville": {Total: 333, Base: 250, Gratuity: 40, Fuel: 25, Tolls: 10, Parking: 8},
			"williamsburg":    {Total: 280, Base: 210, Gratuity: 35, Fuel: 20, Tolls: 10, Parking: 5},
			"national":        {Total: 450, Base: 340, Gratuity: 50, Fuel: 30, Tolls: 20, Parking: 10},
			"dulles":          {Total: 460, Base: 350, Gratuity: 50, Fuel: 30, Tolls: 20, Parking: 10},
			"bwi":             {Total: 657, Base: 500, Gratuity: 70, Fuel: 40, Tolls: 35, Parking: 12},
		},
		fleet.Transit: {
			"richmond":        {Total: 175, Base: 125, Gratuity: 20, Fuel: 15, Tolls: 5, Parking: 10},
			"charlottesville": {Total: 525, Base: 400, Gratuity: 60, Fuel: 35, Tolls: 20, Parking: 10},
			"williamsburg":    {Total: 420, Base: 320, Gratuity: 50, Fuel: 25, Tolls: 15, Parking: 10},
			"national":        {Total: 700, Base: 530, Gratuity: 75, Fuel: 45, Tolls: 35, Parking: 15},
			"dulles":          {Total: 710, Base: 540, Gratuity: 75, Fuel: 45, Tolls: 35, Parking: 15},
			"bwi":             {Total: 854, Base: 650, Gratuity: 90, Fuel: 55, Tolls: 44, Parking: 15},
		},
		fleet.ExecutiveMini: {
			"richmond":        {Total: 185, Base: 135, Gratuity: 22, Fuel: 15, Tolls: 5, Parking: 8},
			"charlottesville": {Total: 545, Base: 420, Gratuity: 65, Fuel: 35, Tolls: 15, Parking: 10},
			"williamsburg":    {Total: 440, Base: 340, Gratuity: 55, Fuel: 25, Tolls: 10, Parking: 10},
			"national":        {Total: 720, Base: 550, Gratuity: 80, Fuel: 45, Tolls: 30, Parking: 15},
			"dulles":          {Total: 730, Base: 560, Gratuity: 80, Fuel: 45, Tolls: 30, Parking: 15},
			"bwi":             {Total: 874, Base: 670, Gratuity: 95, Fuel: 55, Tolls: 39, Parking: 15},
		},
		fleet.MiniBusSofa: {
			"richmond":        {Total: 185, Base: 135, Gratuity: 22, Fuel: 15, Tolls: 5, Parking: 8},
			"charlottesville": {Total: 545, Base: 420, Gratuity: 65, Fuel: 35, Tolls: 15, Parking: 10},
			"williamsburg":    {Total: 440, Base: 340, Gratuity: 55, Fuel: 25, Tolls: 10, Parking: 10},
			"national":        {Total: 720, Base: 550, Gratuity: 80, Fuel: 45, Tolls: 30, Parking: 15},
			"dulles":          {Total: 730, Base: 560, Gratuity: 80, Fuel: 45, Tolls: 30, Parking: 15},
			"bwi":             {Total: 874, Base: 670, Gratuity: 95, Fuel: 55, Tolls: 39, Parking: 15},
		},
		fleet.StretchLimo: {
			"richmond":        {Total: 220, Base: 165, Gratuity: 28, Fuel: 15, Tolls: 5, Parking: 7},
			"charlottesville": {Total: 625, Base: 480, Gratuity: 75, Fuel: 40, Tolls: 20, Parking: 10},
			"williamsburg":    {Total: 520, Base: 400, Gratuity: 65, Fuel: 30, Tolls: 15, Parking: 10},
			"national":        {Total: 820, Base: 630, Gratuity: 95, Fuel: 50, Tolls: 30, Parking: 15},
			"dulles":          {Total: 830, Base: 640, Gratuity: 95, Fuel: 50, Tolls: 30, Parking: 15},
			"bwi":             {Total: 1020, Base: 780, Gratuity: 110, Fuel: 65, Tolls: 50, Parking: 15},
		},
		fleet.SprinterLimo: {
			"richmond":        {Total: 194, Base: 140, Gratuity: 25, Fuel: 16, Tolls: 5, Parking: 8},
			"charlottesville": {Total: 575, Base: 440, Gratuity: 70, Fuel: 35, Tolls: 20, Parking: 10},
			"williamsburg":    {Total: 480, Base: 370, Gratuity: 60, Fuel: 25, Tolls: 15, Parking: 10},
			"national":        {Total: 780, Base: 600, Gratuity: 90, Fuel: 45, Tolls: 30, Parking: 15},
			"dulles":          {Total: 790, Base: 610, Gratuity: 90, Fuel: 45, Tolls: 20, Parking: 15},
			"bwi":             {Total: 910, Base: 700, Gratuity: 100, Fuel: 55, Tolls: 40, Parking: 15},
		},
		fleet.LimoBus: {
			"richmond":        {Total: 225, Base: 165, Gratuity: 30, Fuel: 18, Tolls: 5, Parking: 7},
			"charlottesville": {Total: 624, Base: 475, Gratuity: 75, Fuel: 40, Tolls: 24, Parking: 10},
			"williamsburg":    {Total: 525, Base: 400, Gratuity: 65, Fuel: 35, Tolls: 15, Parking: 10},
			"national":        {Total: 1020, Base: 780, Gratuity: 120, Fuel: 60, Tolls: 45, Parking: 15},
			"dulles":          {Total: 1045, Base: 800, Gratuity: 120, Fuel: 60, Tolls: 50, Parking: 15},
			"bwi":             {Total: 1265, Base: 970, Gratuity: 140, Fuel: 75, Tolls: 65, Parking: 15},
		},
	}
}
