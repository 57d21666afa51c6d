package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"limoquote/internal/modules/fleet"
)

func testService() *Service {
	return NewService(DefaultCatalog(), "USD")
}

func TestService_Calculate(t *testing.T) {
	// Saturday 2026-03-07 (no weekday discount), Tuesday 2026-03-10,
	// July 4 2026 falls on a Saturday. Booked a month ahead.
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	july4 := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)
	advance := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       QuoteRequest
		wantTotal string
	}{
		{
			name: "retail hourly sedan 4h",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServiceHourly,
				ServiceDate: saturday, BookingDate: advance, Hours: 4,
			},
			wantTotal: "400", // 100/h * 4
		},
		{
			name: "hourly below minimum billed at 3h",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServiceHourly,
				ServiceDate: saturday, BookingDate: advance, Hours: 2,
			},
			wantTotal: "300",
		},
		{
			name: "weekday and long trip compound",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServiceHourly,
				ServiceDate: tuesday, BookingDate: advance, Hours: 6,
			},
			wantTotal: "486", // 600 -> 540 -> 486
		},
		{
			name: "generic corporate volume discount",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelGenericCorporate, ServiceType: ServiceHourly,
				ServiceDate: saturday, BookingDate: advance, Hours: 3,
			},
			wantTotal: "255", // 300 - 15%
		},
		{
			name: "point to point minimum charge",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServicePointToPoint,
				ServiceDate: saturday, BookingDate: advance, EstimatedHours: 1,
			},
			wantTotal: "155",
		},
		{
			name: "point to point quarter hour rounds to one increment",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServicePointToPoint,
				ServiceDate: saturday, BookingDate: advance, EstimatedHours: 1.25,
			},
			// 155 + 0.5h * (155 * 0.7) = 155 + 54.25
			wantTotal: "209.25",
		},
		{
			name: "retail airport zone rate",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServiceAirport,
				ServiceDate: saturday, BookingDate: advance,
				ZoneID: ZoneCentralVirginia, AirportCode: AirportRIC,
			},
			wantTotal: "105",
		},
		{
			name: "contracted hourly premium table, weekday discount skipped",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelContractedCorporate, ServiceType: ServiceHourly,
				ServiceDate: tuesday, BookingDate: advance, Hours: 4,
			},
			wantTotal: "440", // 110/h * 4, no discounts
		},
		{
			name: "contracted point to point 15 percent premium",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelContractedCorporate, ServiceType: ServicePointToPoint,
				ServiceDate: saturday, BookingDate: advance, EstimatedHours: 1,
			},
			wantTotal: "178.25", // 155 * 1.15
		},
		{
			name: "contracted airport 12 percent premium",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelContractedCorporate, ServiceType: ServiceAirport,
				ServiceDate: saturday, BookingDate: advance,
				ZoneID: ZoneCentralVirginia, AirportCode: AirportRIC,
			},
			wantTotal: "117.6", // 105 * 1.12
		},
		{
			name: "contracted route flat rate wins over premium table",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelContractedCorporate, ServiceType: ServiceHourly,
				ServiceDate: tuesday, BookingDate: advance, Hours: 4,
				RouteOrigin: "Central Virginia", RouteDestination: "Central Virginia", RouteService: RouteGround,
			},
			wantTotal: "95", // first matching route, flat
		},
		{
			name: "contracted airport route bypasses zone table and premium",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelContractedCorporate, ServiceType: ServiceAirport,
				ServiceDate: saturday, BookingDate: advance,
				ZoneID: ZoneCentralVirginia, AirportCode: AirportRIC,
				RouteOrigin: "Central Virginia", RouteDestination: "Richmond International Airport", RouteService: RouteDeparture,
			},
			wantTotal: "110",
		},
		{
			name: "after-hours pickup fee",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServiceHourly,
				ServiceDate: saturday, BookingDate: advance, Hours: 3, PickupTime: "23:30",
			},
			wantTotal: "320", // 300 + 20
		},
		{
			name: "contracted corporate waives after-hours fee",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelContractedCorporate, ServiceType: ServiceHourly,
				ServiceDate: saturday, BookingDate: advance, Hours: 3, PickupTime: "23:30",
			},
			wantTotal: "330", // 110/h * 3, no fee
		},
		{
			name: "holiday surcharge",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServiceHourly,
				ServiceDate: july4, BookingDate: advance, Hours: 3,
			},
			wantTotal: "375", // 300 + 25% of 300
		},
		{
			name: "holiday surcharge computed off pre-discount price",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelGenericCorporate, ServiceType: ServiceHourly,
				ServiceDate: july4, BookingDate: advance, Hours: 3,
			},
			// 300 - 15% = 255, surcharge is 25% of 300 = 75, not of 255.
			wantTotal: "330",
		},
		{
			name: "vehicle count multiplies after everything else",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServiceAirport,
				ServiceDate: saturday, BookingDate: advance,
				ZoneID: ZoneCentralVirginia, AirportCode: AirportRIC, VehicleCount: 2,
			},
			// 105 - 10% multi-vehicle = 94.5, then * 2.
			wantTotal: "189",
		},
		{
			name: "limo bus hourly",
			req: QuoteRequest{
				VehicleID: fleet.LimoBus, Channel: ChannelRetail, ServiceType: ServiceHourly,
				ServiceDate: saturday, BookingDate: advance, Hours: 5,
			},
			wantTotal: "1040", // 208/h * 5
		},
	}

	s := testService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Calculate(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			want := decimal.RequireFromString(tt.wantTotal)
			if !got.Total.Equal(want) {
				t.Errorf("Calculate() total = %s, want %s", got.Total, want)
			}
		})
	}
}

func TestService_Calculate_Breakdown(t *testing.T) {
	s := testService()
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	advance := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

	t.Run("hours reflect the billed minimum", func(t *testing.T) {
		b, err := s.Calculate(context.Background(), QuoteRequest{
			VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServiceHourly,
			ServiceDate: saturday, BookingDate: advance, Hours: 1,
		})
		if err != nil {
			t.Fatal(err)
		}
		if b.Hours != 3 {
			t.Errorf("Hours = %g, want 3", b.Hours)
		}
		if b.VehicleCount != 1 {
			t.Errorf("VehicleCount = %d, want 1", b.VehicleCount)
		}
	})

	t.Run("contracted premium recorded on the breakdown", func(t *testing.T) {
		b, err := s.Calculate(context.Background(), QuoteRequest{
			VehicleID: fleet.Sedan, Channel: ChannelContractedCorporate, ServiceType: ServicePointToPoint,
			ServiceDate: saturday, BookingDate: advance, EstimatedHours: 1,
		})
		if err != nil {
			t.Fatal(err)
		}
		if want := decimal.RequireFromString("23.25"); !b.CorporatePremium.Equal(want) {
			t.Errorf("CorporatePremium = %s, want %s", b.CorporatePremium, want)
		}
		if len(b.Discounts) != 0 {
			t.Errorf("Discounts = %d, want 0", len(b.Discounts))
		}
	})

	t.Run("contracted route short-circuits composition", func(t *testing.T) {
		b, err := s.Calculate(context.Background(), QuoteRequest{
			VehicleID: fleet.Sedan, Channel: ChannelContractedCorporate, ServiceType: ServiceHourly,
			ServiceDate: time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), // holiday
			BookingDate: advance, Hours: 4, PickupTime: "23:30",
			RouteOrigin: "Central Virginia", RouteDestination: "Central Virginia", RouteService: RouteGround,
		})
		if err != nil {
			t.Fatal(err)
		}
		if !b.ContractedRoute {
			t.Error("ContractedRoute = false, want true")
		}
		if len(b.Discounts) != 0 || len(b.Surcharges) != 0 {
			t.Errorf("adjustments = %d discounts, %d surcharges, want none",
				len(b.Discounts), len(b.Surcharges))
		}
		if want := decimal.NewFromInt(95); !b.Total.Equal(want) {
			t.Errorf("Total = %s, want %s", b.Total, want)
		}
	})

	t.Run("stage ledger chains from base to subtotal", func(t *testing.T) {
		b, err := s.Calculate(context.Background(), QuoteRequest{
			VehicleID: fleet.Sedan, Channel: ChannelGenericCorporate, ServiceType: ServiceHourly,
			ServiceDate: time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
			BookingDate: advance, Hours: 3, PickupTime: "23:30",
		})
		if err != nil {
			t.Fatal(err)
		}
		// base, corporate volume discount, after-hours, holiday.
		if len(b.Stages) != 4 {
			t.Fatalf("stages = %d, want 4", len(b.Stages))
		}
		for i := 1; i < len(b.Stages); i++ {
			if !b.Stages[i].Before.Equal(b.Stages[i-1].After) {
				t.Errorf("stage %q before = %s, want %s",
					b.Stages[i].Name, b.Stages[i].Before, b.Stages[i-1].After)
			}
		}
		if !b.Stages[len(b.Stages)-1].After.Equal(b.Subtotal) {
			t.Errorf("last stage after = %s, want subtotal %s",
				b.Stages[len(b.Stages)-1].After, b.Subtotal)
		}
	})

	t.Run("quote ids are unique", func(t *testing.T) {
		req := QuoteRequest{
			VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServiceHourly,
			ServiceDate: saturday, BookingDate: advance, Hours: 3,
		}
		a, err := s.Calculate(context.Background(), req)
		if err != nil {
			t.Fatal(err)
		}
		b, err := s.Calculate(context.Background(), req)
		if err != nil {
			t.Fatal(err)
		}
		if a.QuoteID == "" || a.QuoteID == b.QuoteID {
			t.Errorf("QuoteID not unique: %q vs %q", a.QuoteID, b.QuoteID)
		}
	})
}

func TestService_Calculate_PartnerCommission(t *testing.T) {
	s := testService()
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	advance := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

	t.Run("hourly commission 12 percent, informational", func(t *testing.T) {
		b, err := s.Calculate(context.Background(), QuoteRequest{
			VehicleID: fleet.Sedan, Channel: ChannelPartner, ServiceType: ServiceHourly,
			ServiceDate: saturday, BookingDate: advance, Hours: 3,
		})
		if err != nil {
			t.Fatal(err)
		}
		if want := decimal.NewFromInt(300); !b.Total.Equal(want) {
			t.Errorf("Total = %s, want %s (commission must not reduce it)", b.Total, want)
		}
		if b.Commission == nil {
			t.Fatal("Commission = nil, want annotation")
		}
		if want := decimal.NewFromInt(36); !b.Commission.Amount.Equal(want) {
			t.Errorf("Commission.Amount = %s, want %s", b.Commission.Amount, want)
		}
	})

	t.Run("airport commission 15 percent", func(t *testing.T) {
		b, err := s.Calculate(context.Background(), QuoteRequest{
			VehicleID: fleet.Sedan, Channel: ChannelPartner, ServiceType: ServiceAirport,
			ServiceDate: saturday, BookingDate: advance,
			ZoneID: ZoneCentralVirginia, AirportCode: AirportRIC,
		})
		if err != nil {
			t.Fatal(err)
		}
		if want := decimal.RequireFromString("15.75"); !b.Commission.Amount.Equal(want) {
			t.Errorf("Commission.Amount = %s, want %s", b.Commission.Amount, want)
		}
	})

	t.Run("retail has no commission", func(t *testing.T) {
		b, err := s.Calculate(context.Background(), QuoteRequest{
			VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServiceHourly,
			ServiceDate: saturday, BookingDate: advance, Hours: 3,
		})
		if err != nil {
			t.Fatal(err)
		}
		if b.Commission != nil {
			t.Errorf("Commission = %+v, want nil", b.Commission)
		}
	})
}

func TestService_Calculate_Errors(t *testing.T) {
	s := testService()
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     QuoteRequest
		wantErr error
	}{
		{
			name: "unknown vehicle",
			req: QuoteRequest{
				VehicleID: "hovercraft", Channel: ChannelRetail, ServiceType: ServiceHourly,
				ServiceDate: saturday, Hours: 3,
			},
			wantErr: ErrUnknownVehicle,
		},
		{
			name: "invalid channel",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: "carrier-pigeon", ServiceType: ServiceHourly,
				ServiceDate: saturday, Hours: 3,
			},
			wantErr: ErrInvalidChannel,
		},
		{
			name: "invalid service type",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: "teleport",
				ServiceDate: saturday,
			},
			wantErr: ErrInvalidServiceType,
		},
		{
			name: "airport without zone",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServiceAirport,
				ServiceDate: saturday, AirportCode: AirportRIC,
			},
			wantErr: ErrNoRouteAvailable,
		},
		{
			name: "zone pair the vehicle does not serve",
			req: QuoteRequest{
				VehicleID: fleet.Sedan, Channel: ChannelRetail, ServiceType: ServiceAirport,
				ServiceDate: saturday, ZoneID: ZoneNorfolk, AirportCode: AirportDCA,
			},
			wantErr: ErrNoRouteAvailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Calculate(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Calculate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_Compare(t *testing.T) {
	s := testService()
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	advance := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

	t.Run("point to point wins a short trip", func(t *testing.T) {
		got, err := s.Compare(context.Background(), CompareRequest{
			VehicleID: fleet.Sedan, Channel: ChannelRetail,
			ServiceDate: saturday, BookingDate: advance, EstimatedHours: 2,
		})
		if err != nil {
			t.Fatal(err)
		}
		// Hourly: 2h billed at the 3h minimum = 300.
		// Point to point: 155 + 2 increments * 0.5h * 108.5 = 263.50.
		if got.Recommended != ServicePointToPoint {
			t.Errorf("Recommended = %s, want %s", got.Recommended, ServicePointToPoint)
		}
		if got.Airport != nil {
			t.Errorf("Airport = %+v, want nil without zone selectors", got.Airport)
		}
		if got.Savings == nil {
			t.Fatal("Savings = nil, want value")
		}
		if want := decimal.RequireFromString("36.5"); !got.Savings.Equal(want) {
			t.Errorf("Savings = %s, want %s", got.Savings, want)
		}
	})

	t.Run("airport included and recommended when cheapest", func(t *testing.T) {
		got, err := s.Compare(context.Background(), CompareRequest{
			VehicleID: fleet.Sedan, Channel: ChannelRetail,
			ServiceDate: saturday, BookingDate: advance, EstimatedHours: 2,
			ZoneID: ZoneCentralVirginia, AirportCode: AirportRIC,
		})
		if err != nil {
			t.Fatal(err)
		}
		if got.Airport == nil {
			t.Fatal("Airport = nil, want breakdown")
		}
		if got.Recommended != ServiceAirport {
			t.Errorf("Recommended = %s, want %s", got.Recommended, ServiceAirport)
		}
		// Worst is hourly at 300, best is the 105 zone rate.
		if want := decimal.NewFromInt(195); !got.Savings.Equal(want) {
			t.Errorf("Savings = %s, want %s", got.Savings, want)
		}
	})

	t.Run("unserved airport pair quietly dropped", func(t *testing.T) {
		got, err := s.Compare(context.Background(), CompareRequest{
			VehicleID: fleet.Sedan, Channel: ChannelRetail,
			ServiceDate: saturday, BookingDate: advance, EstimatedHours: 2,
			ZoneID: ZoneNorfolk, AirportCode: AirportDCA,
		})
		if err != nil {
			t.Fatal(err)
		}
		if got.Airport != nil {
			t.Errorf("Airport = %+v, want nil for unserved pair", got.Airport)
		}
		if got.Recommended != ServicePointToPoint {
			t.Errorf("Recommended = %s, want %s", got.Recommended, ServicePointToPoint)
		}
	})

	t.Run("unknown vehicle surfaces the error", func(t *testing.T) {
		_, err := s.Compare(context.Background(), CompareRequest{
			VehicleID: "hovercraft", Channel: ChannelRetail,
			ServiceDate: saturday, BookingDate: advance, EstimatedHours: 2,
		})
		if !errors.Is(err, ErrUnknownVehicle) {
			t.Errorf("Compare() error = %v, want %v", err, ErrUnknownVehicle)
		}
	})
}
