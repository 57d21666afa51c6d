package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestApplyDiscounts(t *testing.T) {
	// Saturday 2026-03-07 and Tuesday 2026-03-10, booked well in advance.
	saturday := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	advance := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	dayBefore := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)

	hundred := decimal.NewFromInt(100)

	tests := []struct {
		name      string
		in        DiscountInput
		wantCount int
		wantFinal string
	}{
		{
			name:      "no qualifying rules",
			in:        DiscountInput{Price: hundred, Channel: ChannelRetail, ServiceDate: saturday, BookingDate: advance, Hours: 3, VehicleCount: 1},
			wantCount: 0,
			wantFinal: "100",
		},
		{
			name:      "weekday only",
			in:        DiscountInput{Price: hundred, Channel: ChannelRetail, ServiceDate: tuesday, BookingDate: advance, Hours: 3, VehicleCount: 1},
			wantCount: 1,
			wantFinal: "90", // 100 - 10%
		},
		{
			name:      "weekday then long trip compound",
			in:        DiscountInput{Price: hundred, Channel: ChannelRetail, ServiceDate: tuesday, BookingDate: advance, Hours: 6, VehicleCount: 1},
			wantCount: 2,
			wantFinal: "81", // 100 -> 90 -> 81, not 80
		},
		{
			name:      "weekday, long trip, short notice",
			in:        DiscountInput{Price: hundred, Channel: ChannelRetail, ServiceDate: tuesday, BookingDate: dayBefore, Hours: 6, VehicleCount: 1},
			wantCount: 3,
			wantFinal: "68.85", // 81 - 15%
		},
		{
			name:      "weekday plus multi-vehicle",
			in:        DiscountInput{Price: hundred, Channel: ChannelRetail, ServiceDate: tuesday, BookingDate: advance, Hours: 3, VehicleCount: 2},
			wantCount: 2,
			wantFinal: "81", // 90 - 10%
		},
		{
			name:      "corporate volume on weekend",
			in:        DiscountInput{Price: hundred, Channel: ChannelGenericCorporate, ServiceDate: saturday, BookingDate: advance, Hours: 3, VehicleCount: 1},
			wantCount: 1,
			wantFinal: "85",
		},
		{
			name:      "all five rules",
			in:        DiscountInput{Price: hundred, Channel: ChannelGenericCorporate, ServiceDate: tuesday, BookingDate: dayBefore, Hours: 6, VehicleCount: 2},
			wantCount: 5,
			// 100 * 0.9 * 0.9 * 0.85 * 0.9 * 0.85 = 52.67025
			wantFinal: "52.67025",
		},
		{
			name:      "contracted corporate exempt from everything",
			in:        DiscountInput{Price: hundred, Channel: ChannelContractedCorporate, ServiceDate: tuesday, BookingDate: dayBefore, Hours: 6, VehicleCount: 2},
			wantCount: 0,
			wantFinal: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDiscounts(tt.in)
			if len(got.Discounts) != tt.wantCount {
				t.Errorf("ApplyDiscounts() discounts = %d, want %d", len(got.Discounts), tt.wantCount)
			}
			if len(got.Stages) != tt.wantCount {
				t.Errorf("ApplyDiscounts() stages = %d, want %d", len(got.Stages), tt.wantCount)
			}
			want := decimal.RequireFromString(tt.wantFinal)
			if !got.FinalPrice.Equal(want) {
				t.Errorf("ApplyDiscounts() final = %s, want %s", got.FinalPrice, want)
			}
		})
	}
}

func TestApplyDiscounts_StageChaining(t *testing.T) {
	got := ApplyDiscounts(DiscountInput{
		Price:        decimal.NewFromInt(600),
		Channel:      ChannelRetail,
		ServiceDate:  time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), // Tuesday
		BookingDate:  time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC),
		Hours:        6,
		VehicleCount: 1,
	})
	if len(got.Stages) != 2 {
		t.Fatalf("stages = %d, want 2", len(got.Stages))
	}
	for i, st := range got.Stages[1:] {
		if !st.Before.Equal(got.Stages[i].After) {
			t.Errorf("stage %d before = %s, want previous after %s", i+1, st.Before, got.Stages[i].After)
		}
	}
	if !got.Stages[len(got.Stages)-1].After.Equal(got.FinalPrice) {
		t.Errorf("last stage after = %s, want final %s", got.Stages[len(got.Stages)-1].After, got.FinalPrice)
	}
}

func TestIsShortNotice(t *testing.T) {
	booking := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		service time.Time
		want    bool
	}{
		{"same day", time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC), true},
		{"next day exact 24h", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), true},
		{"two days out", time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), false},
		{"service before booking", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isShortNotice(tt.service, booking); got != tt.want {
				t.Errorf("isShortNotice(%v) = %v, want %v", tt.service, got, tt.want)
			}
		})
	}
}
