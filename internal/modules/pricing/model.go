// README: Quote request, price breakdown and channel/service definitions.
package pricing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"limoquote/internal/modules/fleet"
)

// Channel is the distribution context of a quote. It determines the rate
// source, discount eligibility and premium rules.
type Channel string

const (
	ChannelRetail              Channel = "retail"
	ChannelPartner             Channel = "partner"
	ChannelContractedCorporate Channel = "contracted_corporate"
	ChannelGenericCorporate    Channel = "generic_corporate"
)

func ValidChannel(c Channel) bool {
	switch c {
	case ChannelRetail, ChannelPartner, ChannelContractedCorporate, ChannelGenericCorporate:
		return true
	}
	return false
}

type ServiceType string

const (
	ServiceHourly       ServiceType = "hourly"
	ServicePointToPoint ServiceType = "point_to_point"
	ServiceAirport      ServiceType = "airport"
)

func ValidServiceType(s ServiceType) bool {
	switch s {
	case ServiceHourly, ServicePointToPoint, ServiceAirport:
		return true
	}
	return false
}

// RouteServiceType is the trip direction of a contracted route.
type RouteServiceType string

const (
	RouteGround    RouteServiceType = "ground"
	RouteArrival   RouteServiceType = "arrival"
	RouteDeparture RouteServiceType = "departure"
)

type AdjustmentKind string

const (
	KindPercentage AdjustmentKind = "percentage"
	KindFlat       AdjustmentKind = "flat"
)

var (
	ErrUnknownVehicle     = errors.New("unknown vehicle")
	ErrNoRouteAvailable   = errors.New("no route available")
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidChannel     = errors.New("invalid channel")
)

// QuoteRequest carries everything the engine needs for a single quote.
// Fields beyond the first four are service-type specific.
type QuoteRequest struct {
	VehicleID   fleet.VehicleID
	Channel     Channel
	ServiceType ServiceType
	ServiceDate time.Time

	// Hourly service.
	Hours float64

	// Point-to-point service.
	EstimatedHours float64

	// Airport service.
	ZoneID      ZoneID
	AirportCode AirportCode

	// Contracted-corporate route selectors.
	RouteOrigin      string
	RouteDestination string
	RouteService     RouteServiceType

	// Optional modifiers.
	PickupTime   string // "HH:MM" or RFC3339
	VehicleCount int
	BookingDate  time.Time // zero value means now
}

// Discount is produced by the discount engine, never stored. Rate is the
// percentage applied against the running price at its position in the chain.
type Discount struct {
	Name       string          `json:"name"`
	Kind       AdjustmentKind  `json:"kind"`
	Rate       decimal.Decimal `json:"rate"`
	Conditions string          `json:"conditions,omitempty"`
}

type Surcharge struct {
	Name       string          `json:"name"`
	Kind       AdjustmentKind  `json:"kind"`
	Value      decimal.Decimal `json:"value"`
	Amount     decimal.Decimal `json:"amount"`
	Conditions string          `json:"conditions,omitempty"`
}

// Stage records one step of the price pipeline, making the compounding
// order an auditable artifact instead of a mutable accumulator.
type Stage struct {
	Name   string          `json:"name"`
	Before decimal.Decimal `json:"before"`
	After  decimal.Decimal `json:"after"`
}

// Commission is an informational annotation for the partner channel.
// It is reported to the distribution partner, never deducted from the total.
type Commission struct {
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

type PriceBreakdown struct {
	QuoteID      string          `json:"quote_id"`
	ServiceType  ServiceType     `json:"service_type"`
	Channel      Channel         `json:"channel"`
	VehicleID    fleet.VehicleID `json:"vehicle_id"`
	Hours        float64         `json:"hours,omitempty"`
	VehicleCount int             `json:"vehicle_count"`
	Currency     string          `json:"currency"`

	BasePrice        decimal.Decimal `json:"base_price"`
	BaseRate         decimal.Decimal `json:"base_rate,omitempty"`
	DriverGratuity   decimal.Decimal `json:"driver_gratuity,omitempty"`
	FuelSurcharge    decimal.Decimal `json:"fuel_surcharge,omitempty"`
	MileageCharge    decimal.Decimal `json:"mileage_charge,omitempty"`
	CorporatePremium decimal.Decimal `json:"corporate_premium,omitempty"`

	// ContractedRoute marks a contracted-route match, which bypasses
	// discount and surcharge composition entirely.
	ContractedRoute bool `json:"contracted_route,omitempty"`

	Discounts  []Discount  `json:"discounts"`
	Surcharges []Surcharge `json:"surcharges"`
	Stages     []Stage     `json:"stages"`

	PriceBeforeDiscounts decimal.Decimal `json:"price_before_discounts"`
	PriceAfterDiscounts  decimal.Decimal `json:"price_after_discounts"`
	PriceAfterSurcharges decimal.Decimal `json:"price_after_surcharges"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	Total                decimal.Decimal `json:"total"`

	Commission *Commission `json:"commission,omitempty"`
}

// CompareRequest is a QuoteRequest without a service type: the comparison
// engine prices the same trip under each service model.
type CompareRequest struct {
	VehicleID      fleet.VehicleID
	Channel        Channel
	ServiceDate    time.Time
	EstimatedHours float64
	ZoneID         ZoneID
	AirportCode    AirportCode
	PickupTime     string
	BookingDate    time.Time
}

type Comparison struct {
	Hourly       *PriceBreakdown  `json:"hourly"`
	PointToPoint *PriceBreakdown  `json:"point_to_point"`
	Airport      *PriceBreakdown  `json:"airport,omitempty"`
	Recommended  ServiceType      `json:"recommended"`
	Savings      *decimal.Decimal `json:"savings,omitempty"`
}
