// README: Surcharge engine: after-hours and holiday additions.
package pricing

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	AfterHoursFee        = decimal.NewFromInt(20)
	HolidaySurchargeRate = decimal.NewFromFloat(0.25)
)

type SurchargeInput struct {
	// BasePrice is the original, pre-discount price. Both surcharges are
	// computed from it, independent of any discount compounding.
	BasePrice   decimal.Decimal
	Channel     Channel
	ServiceDate time.Time
	PickupTime  string
}

type SurchargeResult struct {
	Surcharges []Surcharge
	Total      decimal.Decimal
}

// ApplySurcharges computes the flat after-hours fee and the percentage
// holiday surcharge. They are additive to whatever the discount stage
// produced; they do not compound with each other or with discounts.
// After-hours is waived for contracted-corporate (folded into its premium);
// holiday applies to every channel.
func ApplySurcharges(in SurchargeInput) SurchargeResult {
	res := SurchargeResult{Surcharges: []Surcharge{}, Total: decimal.Zero}

	if hour, ok := ParsePickupHour(in.PickupTime); ok && in.Channel != ChannelContractedCorporate && isAfterHours(hour) {
		s := Surcharge{
			Name:       "After-Hours Pickup Fee",
			Kind:       KindFlat,
			Value:      AfterHoursFee,
			Amount:     AfterHoursFee,
			Conditions: "Pickup time between 11pm and 6am",
		}
		res.Surcharges = append(res.Surcharges, s)
		res.Total = res.Total.Add(s.Amount)
	}

	if IsHoliday(in.ServiceDate) {
		s := Surcharge{
			Name:       "Holiday Service Surcharge",
			Kind:       KindPercentage,
			Value:      HolidaySurchargeRate,
			Amount:     in.BasePrice.Mul(HolidaySurchargeRate),
			Conditions: "Service on major holiday",
		}
		res.Surcharges = append(res.Surcharges, s)
		res.Total = res.Total.Add(s.Amount)
	}

	return res
}

func isAfterHours(hour int) bool {
	return hour >= 23 || hour < 6
}

// ParsePickupHour extracts the local clock hour from either a "HH:MM"
// time-of-day string or a full RFC 3339 timestamp.
func ParsePickupHour(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Hour(), true
	}
	head, _, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

// IsHoliday reports whether the date falls on New Year's Day, Independence
// Day, Christmas Day, Memorial Day, Labor Day or Thanksgiving.
func IsHoliday(t time.Time) bool {
	m, d, wd := t.Month(), t.Day(), t.Weekday()

	switch {
	case m == time.January && d == 1:
		return true
	case m == time.July && d == 4:
		return true
	case m == time.December && d == 25:
		return true
	}
	// Memorial Day: last Monday of May.
	if m == time.May && wd == time.Monday && t.AddDate(0, 0, 7).Month() != time.May {
		return true
	}
	// Labor Day: first Monday of September.
	if m == time.September && wd == time.Monday && d <= 7 {
		return true
	}
	// Thanksgiving: fourth Thursday of November.
	if m == time.November && wd == time.Thursday && (d+6)/7 == 4 {
		return true
	}
	return false
}

// HolidaysForYear lists the observed holiday dates in calendar order.
func HolidaysForYear(year int) []time.Time {
	dates := []time.Time{
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.July, 4, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC),
		lastWeekdayOf(year, time.May, time.Monday),
		firstWeekdayOf(year, time.September, time.Monday),
		nthWeekdayOf(year, time.November, time.Thursday, 4),
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func firstWeekdayOf(year int, month time.Month, wd time.Weekday) time.Time {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for t.Weekday() != wd {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

func lastWeekdayOf(year int, month time.Month, wd time.Weekday) time.Time {
	t := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	for t.Weekday() != wd {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

func nthWeekdayOf(year int, month time.Month, wd time.Weekday, n int) time.Time {
	t := firstWeekdayOf(year, month, wd)
	return t.AddDate(0, 0, 7*(n-1))
}
