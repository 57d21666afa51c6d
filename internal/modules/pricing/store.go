// README: Rate override store backed by PostgreSQL.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"limoquote/internal/modules/fleet"
)

// Store loads operator-maintained rate overrides. Rows replace the built-in
// table entry for their key; vehicles without rows keep the defaults.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadCatalog merges database overrides onto the built-in catalog and
// validates the result. Called once at boot; the engine never queries
// per request.
func (s *Store) LoadCatalog(ctx context.Context) (*Catalog, error) {
	c := DefaultCatalog()

	if err := s.loadHourly(ctx, c); err != nil {
		return nil, fmt.Errorf("load hourly rates: %w", err)
	}
	if err := s.loadPointToPoint(ctx, c); err != nil {
		return nil, fmt.Errorf("load point-to-point rates: %w", err)
	}
	if err := s.loadZoneAirport(ctx, c); err != nil {
		return nil, fmt.Errorf("load zone airport rates: %w", err)
	}
	if err := s.loadContractedRoutes(ctx, c); err != nil {
		return nil, fmt.Errorf("load contracted routes: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog after overrides: %w", err)
	}
	return c, nil
}

// isUndefinedTable reports the Postgres undefined_table error. A missing
// override table means "no overrides", not a boot failure.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}

func (s *Store) loadHourly(ctx context.Context, c *Catalog) error {
	rows, err := s.db.Query(ctx, `
        SELECT vehicle_id, base_rate, driver_gratuity, fuel_surcharge,
               mileage_charge, total_standard, minimum_hours
        FROM hourly_rates`)
	if isUndefinedTable(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var v string
		var r HourlyRate
		if err := rows.Scan(&v, &r.BaseRate, &r.DriverGratuity, &r.FuelSurcharge,
			&r.MileageCharge, &r.TotalStandard, &r.MinimumHours); err != nil {
			return err
		}
		c.Hourly[fleet.VehicleID(v)] = r
	}
	return rows.Err()
}

func (s *Store) loadPointToPoint(ctx context.Context, c *Catalog) error {
	rows, err := s.db.Query(ctx, `
        SELECT vehicle_id, base_rate, flat_gratuity, fuel_surcharge,
               mileage_charge, total_standard, minimum_hours, billing_increment
        FROM point_to_point_rates`)
	if isUndefinedTable(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var v string
		var r PointToPointRate
		if err := rows.Scan(&v, &r.BaseRate, &r.FlatGratuity, &r.FuelSurcharge,
			&r.MileageCharge, &r.TotalStandard, &r.MinimumHours, &r.BillingIncrement); err != nil {
			return err
		}
		c.PointToPoint[fleet.VehicleID(v)] = r
	}
	return rows.Err()
}

func (s *Store) loadZoneAirport(ctx context.Context, c *Catalog) error {
	rows, err := s.db.Query(ctx, `
        SELECT vehicle_id, zone_id, airport_code, rate, estimated_hours, estimated_miles
        FROM zone_airport_rates
        ORDER BY vehicle_id`)
	if isUndefinedTable(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer rows.Close()

	// Any row for a vehicle replaces that vehicle's whole table: partial
	// per-pair overrides would leave unlisted pairs silently stale.
	seen := map[fleet.VehicleID]bool{}
	for rows.Next() {
		var v, zone, airport string
		var r ZoneAirportRate
		if err := rows.Scan(&v, &zone, &airport, &r.Rate, &r.EstimatedHours, &r.EstimatedMiles); err != nil {
			return err
		}
		id := fleet.VehicleID(v)
		r.Zone = ZoneID(zone)
		r.Airport = AirportCode(airport)
		if !seen[id] {
			c.ZoneAirport[id] = nil
			seen[id] = true
		}
		c.ZoneAirport[id] = append(c.ZoneAirport[id], r)
	}
	return rows.Err()
}

func (s *Store) loadContractedRoutes(ctx context.Context, c *Catalog) error {
	rows, err := s.db.Query(ctx, `
        SELECT vehicle_id, origin, destination, service, rate, rate_kind, estimated_hours
        FROM contracted_routes
        ORDER BY vehicle_id, position`)
	if isUndefinedTable(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer rows.Close()

	seen := map[fleet.VehicleID]bool{}
	for rows.Next() {
		var v, service, kind string
		var r ContractedRoute
		if err := rows.Scan(&v, &r.Origin, &r.Destination, &service, &r.Rate, &kind, &r.EstimatedHours); err != nil {
			return err
		}
		id := fleet.VehicleID(v)
		r.Service = RouteServiceType(service)
		r.RateKind = RouteRateKind(kind)
		if !seen[id] {
			c.ContractedRoutes[id] = nil
			seen[id] = true
		}
		c.ContractedRoutes[id] = append(c.ContractedRoutes[id], r)
	}
	return rows.Err()
}
