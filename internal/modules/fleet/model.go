// README: Vehicle reference data definitions.
package fleet

type VehicleID string

const (
	Sedan         VehicleID = "sedan"
	Transit       VehicleID = "transit"
	ExecutiveMini VehicleID = "executive-mini-bus"
	MiniBusSofa   VehicleID = "mini-bus-sofa"
	StretchLimo   VehicleID = "stretch-limo"
	SprinterLimo  VehicleID = "sprinter-limo"
	LimoBus       VehicleID = "limo-bus"
)

type Vehicle struct {
	ID          VehicleID `json:"id"`
	Name        string    `json:"name"`
	UnitNo      string    `json:"unit_no,omitempty"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description,omitempty"`
}
