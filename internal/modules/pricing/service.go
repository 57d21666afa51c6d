// README: Quote composer and service-type comparison engine.
package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"limoquote/internal/modules/fleet"
)

var (
	pointToPointPremiumRate = decimal.NewFromFloat(0.15)
	airportPremiumRate      = decimal.NewFromFloat(0.12)

	standardCommissionRate = decimal.NewFromFloat(0.12)
	airportCommissionRate  = decimal.NewFromFloat(0.15)
)

// plan is the channel and service-type pricing strategy, selected once per
// request so the composer's control flow stays linear.
type plan struct {
	premiumRate    decimal.Decimal // multiplicative contracted premium on the base
	discounts      bool
	commissionRate decimal.Decimal // zero means no partner annotation
}

func planFor(ch Channel, st ServiceType) (plan, error) {
	if !ValidChannel(ch) {
		return plan{}, ErrInvalidChannel
	}
	if !ValidServiceType(st) {
		return plan{}, ErrInvalidServiceType
	}
	p := plan{discounts: ch != ChannelContractedCorporate}
	if ch == ChannelContractedCorporate {
		switch st {
		case ServicePointToPoint:
			p.premiumRate = pointToPointPremiumRate
		case ServiceAirport:
			p.premiumRate = airportPremiumRate
		}
	}
	if ch == ChannelPartner {
		if st == ServiceAirport {
			p.commissionRate = airportCommissionRate
		} else {
			p.commissionRate = standardCommissionRate
		}
	}
	return p, nil
}

type Service struct {
	catalog  *Catalog
	currency string
	now      func() time.Time
}

func NewService(catalog *Catalog, currency string) *Service {
	return &Service{catalog: catalog, currency: currency, now: time.Now}
}

// Calculate prices a single quote. The pipeline is: resolve base, apply the
// contracted premium, run the discount chain, add surcharges computed off the
// pre-discount price, clamp at zero, then multiply by vehicle count.
func (s *Service) Calculate(ctx context.Context, req QuoteRequest) (*PriceBreakdown, error) {
	if !fleet.Known(req.VehicleID) {
		return nil, ErrUnknownVehicle
	}
	pl, err := planFor(req.Channel, req.ServiceType)
	if err != nil {
		return nil, err
	}

	var rr resolvedRate
	switch req.ServiceType {
	case ServiceHourly:
		rr, err = s.catalog.resolveHourly(req)
	case ServicePointToPoint:
		rr, err = s.catalog.resolvePointToPoint(req)
	case ServiceAirport:
		rr, err = s.catalog.resolveAirport(req)
	}
	if err != nil {
		return nil, err
	}

	count := req.VehicleCount
	if count < 1 {
		count = 1
	}

	b := &PriceBreakdown{
		QuoteID:          uuid.NewString(),
		ServiceType:      req.ServiceType,
		Channel:          req.Channel,
		VehicleID:        req.VehicleID,
		Hours:            rr.hours,
		VehicleCount:     count,
		Currency:         s.currency,
		BasePrice:        rr.base,
		BaseRate:         rr.baseRate,
		DriverGratuity:   rr.driverGratuity,
		FuelSurcharge:    rr.fuelSurcharge,
		MileageCharge:    rr.mileageCharge,
		CorporatePremium: rr.corporatePremium,
		Discounts:        []Discount{},
		Surcharges:       []Surcharge{},
		Stages:           []Stage{{Name: "base", Before: decimal.Zero, After: rr.base}},
	}

	if rr.routeMatch {
		// Contracted route prices are final: no premium, no discounts,
		// no surcharges. Only the vehicle count still applies.
		b.ContractedRoute = true
		b.PriceBeforeDiscounts = rr.base
		b.PriceAfterDiscounts = rr.base
		b.PriceAfterSurcharges = rr.base
		b.Subtotal = rr.base
		s.finalize(b, pl)
		return b, nil
	}

	price := rr.base
	if pl.premiumRate.IsPositive() {
		premium := rr.base.Mul(pl.premiumRate)
		b.CorporatePremium = premium
		next := price.Add(premium)
		b.Stages = append(b.Stages, Stage{Name: "contracted_premium", Before: price, After: next})
		price = next
	}
	b.PriceBeforeDiscounts = price

	if pl.discounts {
		booking := req.BookingDate
		if booking.IsZero() {
			booking = s.now()
		}
		var hours float64
		if req.ServiceType == ServiceHourly {
			hours = rr.hours
		}
		dres := ApplyDiscounts(DiscountInput{
			Price:        price,
			Channel:      req.Channel,
			ServiceDate:  req.ServiceDate,
			BookingDate:  booking,
			Hours:        hours,
			VehicleCount: count,
		})
		b.Discounts = dres.Discounts
		b.Stages = append(b.Stages, dres.Stages...)
		price = dres.FinalPrice
	}
	b.PriceAfterDiscounts = price

	// Surcharges are computed off the pre-discount price so a discounted
	// quote still carries the full holiday or after-hours charge.
	sres := ApplySurcharges(SurchargeInput{
		BasePrice:   b.PriceBeforeDiscounts,
		Channel:     req.Channel,
		ServiceDate: req.ServiceDate,
		PickupTime:  req.PickupTime,
	})
	b.Surcharges = sres.Surcharges
	for _, sc := range sres.Surcharges {
		next := price.Add(sc.Amount)
		b.Stages = append(b.Stages, Stage{Name: sc.Name, Before: price, After: next})
		price = next
	}
	if price.IsNegative() {
		price = decimal.Zero
	}
	b.PriceAfterSurcharges = price
	b.Subtotal = price

	s.finalize(b, pl)
	return b, nil
}

func (s *Service) finalize(b *PriceBreakdown, pl plan) {
	total := b.Subtotal
	if b.VehicleCount > 1 {
		next := total.Mul(decimal.NewFromInt(int64(b.VehicleCount)))
		b.Stages = append(b.Stages, Stage{Name: "vehicle_count", Before: total, After: next})
		total = next
	}
	// Cent rounding happens once, here at the edge; the stage ledger keeps
	// full precision.
	b.Total = total.Round(2)
	if pl.commissionRate.IsPositive() {
		b.Commission = &Commission{
			Rate:   pl.commissionRate,
			Amount: total.Mul(pl.commissionRate).Round(2),
		}
	}
}

// Compare prices the same trip under every applicable service model and
// recommends the cheapest. Airport pricing is included only when both a zone
// and an airport are given, and is silently dropped when no route exists.
func (s *Service) Compare(ctx context.Context, req CompareRequest) (*Comparison, error) {
	base := QuoteRequest{
		VehicleID:   req.VehicleID,
		Channel:     req.Channel,
		ServiceDate: req.ServiceDate,
		PickupTime:  req.PickupTime,
		BookingDate: req.BookingDate,
	}

	hourlyReq := base
	hourlyReq.ServiceType = ServiceHourly
	hourlyReq.Hours = req.EstimatedHours
	hourly, err := s.Calculate(ctx, hourlyReq)
	if err != nil {
		return nil, err
	}

	p2pReq := base
	p2pReq.ServiceType = ServicePointToPoint
	p2pReq.EstimatedHours = req.EstimatedHours
	p2p, err := s.Calculate(ctx, p2pReq)
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{Hourly: hourly, PointToPoint: p2p}
	candidates := []*PriceBreakdown{hourly, p2p}

	if req.ZoneID != "" && req.AirportCode != "" {
		airportReq := base
		airportReq.ServiceType = ServiceAirport
		airportReq.ZoneID = req.ZoneID
		airportReq.AirportCode = req.AirportCode
		switch airport, err := s.Calculate(ctx, airportReq); {
		case err == nil:
			cmp.Airport = airport
			candidates = append(candidates, airport)
		case err != ErrNoRouteAvailable:
			return nil, err
		}
	}

	best, worst := candidates[0], candidates[0]
	for _, c := range candidates[1:] {
		if c.Total.LessThan(best.Total) {
			best = c
		}
		if c.Total.GreaterThan(worst.Total) {
			worst = c
		}
	}
	cmp.Recommended = best.ServiceType
	if savings := worst.Total.Sub(best.Total); savings.IsPositive() {
		cmp.Savings = &savings
	}
	return cmp, nil
}
