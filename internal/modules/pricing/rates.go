// README: Hourly, point-to-point and contracted premium rate tables.
package pricing

import "limoquote/internal/modules/fleet"

// HourlyRate is the per-hour charter rate for one vehicle. The decomposition
// is informational; only TotalStandard feeds arithmetic.
type HourlyRate struct {
	BaseRate       int64
	DriverGratuity int64
	FuelSurcharge  int64
	MileageCharge  int64
	TotalStandard  int64
	MinimumHours   float64
}

// PointToPointRate covers the first hour as a flat charge. Additional time
// is billed in BillingIncrement-hour steps at 70% of the hourly total.
type PointToPointRate struct {
	BaseRate         int64
	FlatGratuity     int64
	FuelSurcharge    int64
	MileageCharge    int64
	TotalStandard    int64
	MinimumHours     float64
	BillingIncrement float64
}

// PremiumHourlyRate is the contracted-corporate flat hourly surcharge table:
// a fixed per-vehicle premium over the standard hourly rate, with after-hours
// service folded in.
type PremiumHourlyRate struct {
	HourlyPremium    int64
	PremiumAmount    int64
	BaseRate         int64
	DriverGratuity   int64
	FuelSurcharge    int64
	MileageCharge    int64
	CorporatePremium int64
}

func defaultHourlyRates() map[fleet.VehicleID]HourlyRate {
	return map[fleet.VehicleID]HourlyRate{
		fleet.Sedan:         {BaseRate: 60, DriverGratuity: 12, FuelSurcharge: 10, MileageCharge: 18, TotalStandard: 100, MinimumHours: 3},
		fleet.Transit:       {BaseRate: 90, DriverGratuity: 19, FuelSurcharge: 10, MileageCharge: 18, TotalStandard: 137, MinimumHours: 3},
		fleet.ExecutiveMini: {BaseRate: 95, DriverGratuity: 19, FuelSurcharge: 10, MileageCharge: 18, TotalStandard: 142, MinimumHours: 3},
		fleet.MiniBusSofa:   {BaseRate: 95, DriverGratuity: 19, FuelSurcharge: 10, MileageCharge: 18, TotalStandard: 142, MinimumHours: 3},
		fleet.StretchLimo:   {BaseRate: 113, DriverGratuity: 19, FuelSurcharge: 10, MileageCharge: 18, TotalStandard: 160, MinimumHours: 3},
		fleet.SprinterLimo:  {BaseRate: 113, DriverGratuity: 19, FuelSurcharge: 10, MileageCharge: 18, TotalStandard: 160, MinimumHours: 3},
		fleet.LimoBus:       {BaseRate: 152, DriverGratuity: 28, FuelSurcharge: 10, MileageCharge: 18, TotalStandard: 208, MinimumHours: 3},
	}
}

func defaultPointToPointRates() map[fleet.VehicleID]PointToPointRate {
	return map[fleet.VehicleID]PointToPointRate{
		fleet.Sedan:         {BaseRate: 95, FlatGratuity: 40, FuelSurcharge: 10, MileageCharge: 10, TotalStandard: 155, MinimumHours: 1, BillingIncrement: 0.5},
		fleet.Transit:       {BaseRate: 165, FlatGratuity: 40, FuelSurcharge: 10, MileageCharge: 10, TotalStandard: 225, MinimumHours: 1, BillingIncrement: 0.5},
		fleet.ExecutiveMini: {BaseRate: 170, FlatGratuity: 50, FuelSurcharge: 10, MileageCharge: 10, TotalStandard: 240, MinimumHours: 1, BillingIncrement: 0.5},
		fleet.MiniBusSofa:   {BaseRate: 170, FlatGratuity: 50, FuelSurcharge: 10, MileageCharge: 10, TotalStandard: 240, MinimumHours: 1, BillingIncrement: 0.5},
		fleet.StretchLimo:   {BaseRate: 230, FlatGratuity: 50, FuelSurcharge: 10, MileageCharge: 10, TotalStandard: 300, MinimumHours: 1, BillingIncrement: 0.5},
		fleet.SprinterLimo:  {BaseRate: 260, FlatGratuity: 50, FuelSurcharge: 10, MileageCharge: 10, TotalStandard: 330, MinimumHours: 1, BillingIncrement: 0.5},
		fleet.LimoBus:       {BaseRate: 300, FlatGratuity: 50, FuelSurcharge: 10, MileageCharge: 10, TotalStandard: 370, MinimumHours: 1, BillingIncrement: 0.5},
	}
}

func defaultPremiumHourlyRates() map[fleet.VehicleID]PremiumHourlyRate {
	return map[fleet.VehicleID]PremiumHourlyRate{
		fleet.Sedan:         {HourlyPremium: 110, PremiumAmount: 10, BaseRate: 60, DriverGratuity: 12, FuelSurcharge: 10, MileageCharge: 18, CorporatePremium: 10},
		fleet.Transit:       {HourlyPremium: 147, PremiumAmount: 10, BaseRate: 90, DriverGratuity: 19, FuelSurcharge: 10, MileageCharge: 18, CorporatePremium: 10},
		fleet.ExecutiveMini: {HourlyPremium: 152, PremiumAmount: 10, BaseRate: 95, DriverGratuity: 19, FuelSurcharge: 10, MileageCharge: 18, CorporatePremium: 10},
		fleet.MiniBusSofa:   {HourlyPremium: 152, PremiumAmount: 10, BaseRate: 95, DriverGratuity: 19, FuelSurcharge: 10, MileageCharge: 18, CorporatePremium: 10},
		fleet.StretchLimo:   {HourlyPremium: 170, PremiumAmount: 10, BaseRate: 113, DriverGratuity: 19, FuelSurcharge: 10, MileageCharge: 18, CorporatePremium: 10},
		fleet.SprinterLimo:  {HourlyPremium: 170, PremiumAmount: 10, BaseRate: 113, DriverGratuity: 19, FuelSurcharge: 10, MileageCharge: 18, CorporatePremium: 10},
		fleet.LimoBus:       {HourlyPremium: 218, PremiumAmount: 10, BaseRate: 152, DriverGratuity: 28, FuelSurcharge: 10, MileageCharge: 18, CorporatePremium: 10},
	}
}
