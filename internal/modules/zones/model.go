// README: Zone resolution result types.
package zones

import (
	"errors"

	"limoquote/internal/modules/pricing"
)

var ErrUnresolved = errors.New("address not in any service zone")

// Resolution maps a free-text pickup address to a rate zone. Source records
// which stage answered: a cache hit, a direct city-name match, or a geocode.
type Resolution struct {
	ZoneID   pricing.ZoneID `json:"zone_id"`
	ZoneName string         `json:"zone_name"`
	City     string         `json:"city,omitempty"`
	Source   string         `json:"source"`
}

const (
	SourceCache   = "cache"
	SourceText    = "text"
	SourceGeocode = "geocode"
)
