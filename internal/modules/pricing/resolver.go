// README: Rate resolver: base price lookup with contracted-route short-circuit.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// pointToPointOverageRate prices time beyond the first hour at 70% of the
// standard hourly total.
var pointToPointOverageRate = decimal.NewFromFloat(0.7)

type resolvedRate struct {
	base  decimal.Decimal
	hours float64

	baseRate         decimal.Decimal
	driverGratuity   decimal.Decimal
	fuelSurcharge    decimal.Decimal
	mileageCharge    decimal.Decimal
	corporatePremium decimal.Decimal

	// routeMatch marks a contracted-route hit: the base is the final
	// per-vehicle price and bypasses all further composition.
	routeMatch bool
}

func (c *Catalog) resolveHourly(req QuoteRequest) (resolvedRate, error) {
	hr, ok := c.hourlyRate(req.VehicleID)
	if !ok {
		return resolvedRate{}, ErrUnknownVehicle
	}
	hours := math.Max(req.Hours, hr.MinimumHours)
	dh := decimal.NewFromFloat(hours)

	if req.Channel == ChannelContractedCorporate {
		if route, ok := c.matchRoute(req); ok {
			base := decimal.NewFromInt(route.Rate)
			billedHours := route.EstimatedHours
			if route.RateKind == RouteRateHourly {
				base = base.Mul(dh)
				billedHours = hours
			}
			return resolvedRate{base: base, hours: billedHours, routeMatch: true}, nil
		}
		// No route: fall back to the flat hourly premium table.
		pr, ok := c.premiumHourlyRate(req.VehicleID)
		if !ok {
			return resolvedRate{}, ErrUnknownVehicle
		}
		return resolvedRate{
			base:             decimal.NewFromInt(pr.HourlyPremium).Mul(dh),
			hours:            hours,
			baseRate:         decimal.NewFromInt(pr.BaseRate).Mul(dh),
			driverGratuity:   decimal.NewFromInt(pr.DriverGratuity).Mul(dh),
			fuelSurcharge:    decimal.NewFromInt(pr.FuelSurcharge).Mul(dh),
			mileageCharge:    decimal.NewFromInt(pr.MileageCharge).Mul(dh),
			corporatePremium: decimal.NewFromInt(pr.CorporatePremium).Mul(dh),
		}, nil
	}

	return resolvedRate{
		base:           decimal.NewFromInt(hr.TotalStandard).Mul(dh),
		hours:          hours,
		baseRate:       decimal.NewFromInt(hr.BaseRate).Mul(dh),
		driverGratuity: decimal.NewFromInt(hr.DriverGratuity).Mul(dh),
		fuelSurcharge:  decimal.NewFromInt(hr.FuelSurcharge).Mul(dh),
		mileageCharge:  decimal.NewFromInt(hr.MileageCharge).Mul(dh),
	}, nil
}

func (c *Catalog) resolvePointToPoint(req QuoteRequest) (resolvedRate, error) {
	pr, ok := c.pointToPointRate(req.VehicleID)
	if !ok {
		return resolvedRate{}, ErrUnknownVehicle
	}
	hours := math.Max(req.EstimatedHours, pr.MinimumHours)
	minimum := decimal.NewFromInt(pr.TotalStandard)

	// The minimum flat charge covers the first hour. Time beyond it is
	// rounded up to the next half-hour increment.
	total := minimum
	extraCharge := decimal.Zero
	if hours > pr.MinimumHours {
		increments := math.Ceil((hours - pr.MinimumHours) / pr.BillingIncrement)
		billed := decimal.NewFromFloat(increments * pr.BillingIncrement)
		extraCharge = billed.Mul(minimum.Mul(pointToPointOverageRate))
		total = total.Add(extraCharge)
	}

	return resolvedRate{
		base:           total,
		hours:          hours,
		baseRate:       decimal.NewFromInt(pr.BaseRate).Add(extraCharge),
		driverGratuity: decimal.NewFromInt(pr.FlatGratuity),
		fuelSurcharge:  decimal.NewFromInt(pr.FuelSurcharge),
		mileageCharge:  decimal.NewFromInt(pr.MileageCharge),
	}, nil
}

func (c *Catalog) resolveAirport(req QuoteRequest) (resolvedRate, error) {
	if req.Channel == ChannelContractedCorporate {
		if route, ok := c.matchRoute(req); ok {
			return resolvedRate{
				base:       decimal.NewFromInt(route.Rate),
				hours:      route.EstimatedHours,
				routeMatch: true,
			}, nil
		}
	}
	if req.ZoneID == "" || req.AirportCode == "" {
		return resolvedRate{}, ErrNoRouteAvailable
	}
	if _, ok := c.ZoneAirport[req.VehicleID]; !ok {
		return resolvedRate{}, ErrUnknownVehicle
	}
	zr, ok := c.zoneAirportRate(req.VehicleID, req.ZoneID, req.AirportCode)
	if !ok {
		return resolvedRate{}, ErrNoRouteAvailable
	}
	return resolvedRate{
		base:  decimal.NewFromInt(zr.Rate),
		hours: zr.EstimatedHours,
	}, nil
}

func (c *Catalog) matchRoute(req QuoteRequest) (ContractedRoute, bool) {
	if req.RouteOrigin == "" || req.RouteDestination == "" || req.RouteService == "" {
		return ContractedRoute{}, false
	}
	return c.contractedRoute(req.VehicleID, req.RouteOrigin, req.RouteDestination, req.RouteService)
}
