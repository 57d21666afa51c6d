// README: Discount engine: ordered, compounding percentage discounts.
package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var (
	WeekdayDiscountRate      = decimal.NewFromFloat(0.10)
	LongTripDiscountRate     = decimal.NewFromFloat(0.10)
	ShortNoticeDiscountRate  = decimal.NewFromFloat(0.15)
	MultiVehicleDiscountRate = decimal.NewFromFloat(0.10)
	CorporateDiscountRate    = decimal.NewFromFloat(0.15)
)

const longTripMinHours = 6

type DiscountInput struct {
	Price        decimal.Decimal
	Channel      Channel
	ServiceDate  time.Time
	BookingDate  time.Time
	Hours        float64
	VehicleCount int
}

type DiscountResult struct {
	Discounts  []Discount
	Stages     []Stage
	FinalPrice decimal.Decimal
}

// ApplyDiscounts evaluates the discount chain in its fixed order: weekday,
// long trip, short notice, multi-vehicle, corporate volume. Each rule
// compounds against the price left by the previous rule, not the original
// base. Contracted-corporate accounts are exempt from the whole chain; they
// get a premium rate instead of catalog discounts.
func ApplyDiscounts(in DiscountInput) DiscountResult {
	res := DiscountResult{Discounts: []Discount{}, FinalPrice: in.Price}
	if in.Channel == ChannelContractedCorporate {
		return res
	}

	price := in.Price
	apply := func(d Discount) {
		before := price
		price = price.Sub(price.Mul(d.Rate))
		res.Discounts = append(res.Discounts, d)
		res.Stages = append(res.Stages, Stage{Name: d.Name, Before: before, After: price})
	}

	if isWeekday(in.ServiceDate) {
		apply(Discount{
			Name:       "Monday-Thursday Discount",
			Kind:       KindPercentage,
			Rate:       WeekdayDiscountRate,
			Conditions: "Service scheduled Monday through Thursday",
		})
	}
	if in.Hours >= longTripMinHours {
		apply(Discount{
			Name:       "6+ Hour Trip Discount",
			Kind:       KindPercentage,
			Rate:       LongTripDiscountRate,
			Conditions: "Booking duration of 6 hours or more",
		})
	}
	if isShortNotice(in.ServiceDate, in.BookingDate) {
		apply(Discount{
			Name:       "Late Inquiry Discount",
			Kind:       KindPercentage,
			Rate:       ShortNoticeDiscountRate,
			Conditions: "Same-day or next-day booking",
		})
	}
	if in.VehicleCount >= 2 {
		apply(Discount{
			Name:       "Multi-Vehicle Discount",
			Kind:       KindPercentage,
			Rate:       MultiVehicleDiscountRate,
			Conditions: fmt.Sprintf("%d vehicles booked", in.VehicleCount),
		})
	}
	if in.Channel == ChannelGenericCorporate {
		apply(Discount{
			Name:       "Corporate Volume Discount",
			Kind:       KindPercentage,
			Rate:       CorporateDiscountRate,
			Conditions: "Corporate account holder",
		})
	}

	res.FinalPrice = price
	return res
}

// isWeekday reports Monday through Thursday.
func isWeekday(t time.Time) bool {
	d := t.Weekday()
	return d >= time.Monday && d <= time.Thursday
}

// isShortNotice reports whether the service date is the same or the next
// calendar day relative to the booking date: ceil(diff / 1 day) <= 1.
func isShortNotice(serviceDate, bookingDate time.Time) bool {
	days := math.Ceil(serviceDate.Sub(bookingDate).Hours() / 24)
	return days <= 1
}
