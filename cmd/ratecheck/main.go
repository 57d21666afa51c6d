// README: CLI for spot-checking quotes against the built-in rate catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"limoquote/internal/modules/fleet"
	"limoquote/internal/modules/pricing"
)

func main() {
	var (
		vehicle     = flag.String("vehicle", "sedan", "vehicle id (or 'all')")
		channel     = flag.String("channel", "retail", "pricing channel")
		serviceType = flag.String("service", "hourly", "hourly, point_to_point or airport")
		date        = flag.String("date", time.Now().Format("2006-01-02"), "service date YYYY-MM-DD")
		hours       = flag.Float64("hours", 3, "hours (hourly) or estimated hours (point to point)")
		zone        = flag.String("zone", "", "pickup zone id for airport service")
		airport     = flag.String("airport", "", "airport code for airport service")
		pickup      = flag.String("pickup", "", "pickup time HH:MM")
		count       = flag.Int("count", 1, "vehicle count")
		compare     = flag.Bool("compare", false, "compare service types instead of a single quote")
		holidays    = flag.Bool("holidays", false, "print the holiday calendar for the service year and exit")
	)
	flag.Parse()

	serviceDate, err := time.Parse("2006-01-02", *date)
	if err != nil {
		log.Fatalf("bad -date: %v", err)
	}

	if *holidays {
		for _, d := range pricing.HolidaysForYear(serviceDate.Year()) {
			fmt.Println(d.Format("2006-01-02 Monday"))
		}
		return
	}

	svc := pricing.NewService(pricing.DefaultCatalog(), "USD")
	ctx := context.Background()

	ids := []fleet.VehicleID{fleet.VehicleID(*vehicle)}
	if *vehicle == "all" {
		ids = ids[:0]
		for _, v := range fleet.Vehicles {
			ids = append(ids, v.ID)
		}
	}

	for _, id := range ids {
		if *compare {
			cmp, err := svc.Compare(ctx, pricing.CompareRequest{
				VehicleID:      id,
				Channel:        pricing.Channel(*channel),
				ServiceDate:    serviceDate,
				EstimatedHours: *hours,
				ZoneID:         pricing.ZoneID(*zone),
				AirportCode:    pricing.AirportCode(*airport),
				PickupTime:     *pickup,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", id, err)
				continue
			}
			fmt.Printf("%s: hourly %s, point to point %s", id, cmp.Hourly.Total, cmp.PointToPoint.Total)
			if cmp.Airport != nil {
				fmt.Printf(", airport %s", cmp.Airport.Total)
			}
			fmt.Printf(" -> %s", cmp.Recommended)
			if cmp.Savings != nil {
				fmt.Printf(" (saves %s)", cmp.Savings)
			}
			fmt.Println()
			continue
		}

		b, err := svc.Calculate(ctx, pricing.QuoteRequest{
			VehicleID:      id,
			Channel:        pricing.Channel(*channel),
			ServiceType:    pricing.ServiceType(*serviceType),
			ServiceDate:    serviceDate,
			Hours:          *hours,
			EstimatedHours: *hours,
			ZoneID:         pricing.ZoneID(*zone),
			AirportCode:    pricing.AirportCode(*airport),
			PickupTime:     *pickup,
			VehicleCount:   *count,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", id, err)
			continue
		}
		fmt.Print(pricing.FormatBreakdown(b))
		fmt.Println()
	}
}
