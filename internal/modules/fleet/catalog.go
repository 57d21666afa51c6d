// README: Fleet catalog with lookup helpers.
package fleet

// Vehicles is the full fleet, immutable reference data.
var Vehicles = []Vehicle{
	{ID: Sedan, Name: "Executive Sedan", UnitNo: "04/05", Capacity: 3, Description: "Lincoln MKT/Aviator - Comfortable sedan for small groups"},
	{ID: Transit, Name: "Transit Van", UnitNo: "", Capacity: 15, Description: "Ford Transit - Up to 15 passengers"},
	{ID: ExecutiveMini, Name: "Executive Mini Bus", UnitNo: "09", Capacity: 12, Description: "Premium mini bus with executive seating"},
	{ID: MiniBusSofa, Name: "Mini Bus with Sofa Seating", UnitNo: "01", Capacity: 10, Description: "Mini bus featuring comfortable sofa-style seating"},
	{ID: StretchLimo, Name: "Stretch Limousine", UnitNo: "03", Capacity: 8, Description: "Lincoln Continental - Classic stretch limousine"},
	{ID: SprinterLimo, Name: "Sprinter Limousine", UnitNo: "02", Capacity: 10, Description: "Mercedes Sprinter - Luxury limousine van"},
	{ID: LimoBus, Name: "Executive Limo Bus", UnitNo: "10", Capacity: 18, Description: "Full-size luxury limo bus for large groups"},
}

func ByID(id VehicleID) (Vehicle, bool) {
	for _, v := range Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}

func Known(id VehicleID) bool {
	_, ok := ByID(id)
	return ok
}

// WithCapacity returns vehicles that seat at least min passengers.
func WithCapacity(min int) []Vehicle {
	var out []Vehicle
	for _, v := range Vehicles {
		if v.Capacity >= min {
			out = append(out, v)
		}
	}
	return out
}
