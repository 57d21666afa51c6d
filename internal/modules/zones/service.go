// README: Address-to-zone resolver: text match first, then Google geocoding.
package zones

import (
	"context"
	"log"
	"strings"

	"googlemaps.github.io/maps"

	"limoquote/internal/modules/pricing"
)

// Geocoder is the slice of the Google Maps client the resolver needs.
// *maps.Client satisfies it.
type Geocoder interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

type Service struct {
	geocoder Geocoder
	cache    *Cache
}

// NewService builds a resolver. Both dependencies are optional: without a
// geocoder only direct city-name matches resolve, without a cache every
// request is answered fresh.
func NewService(geocoder Geocoder, cache *Cache) *Service {
	return &Service{geocoder: geocoder, cache: cache}
}

// Resolve maps a pickup address to its service zone. Cached answers are
// served first; unknown addresses fall through to a substring match on zone
// city names, then to geocoding. Addresses outside every zone return
// ErrUnresolved.
func (s *Service) Resolve(ctx context.Context, address string) (*Resolution, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrUnresolved
	}

	if s.cache != nil {
		if res, ok := s.cache.Get(ctx, address); ok {
			res.Source = SourceCache
			return res, nil
		}
	}

	res := matchCity(address)
	if res == nil && s.geocoder != nil {
		var err error
		res, err = s.geocode(ctx, address)
		if err != nil {
			// Geocoding failures degrade to unresolved rather than 500s;
			// the caller can still quote hourly or point-to-point.
			log.Printf("[zones] geocode %q: %v", address, err)
		}
	}
	if res == nil {
		return nil, ErrUnresolved
	}

	if s.cache != nil {
		s.cache.Set(ctx, address, res)
	}
	return res, nil
}

func (s *Service) geocode(ctx context.Context, address string) (*Resolution, error) {
	results, err := s.geocoder.Geocode(ctx, &maps.GeocodingRequest{
		Address: address,
		Region:  "us",
	})
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		for _, comp := range r.AddressComponents {
			if !isLocality(comp.Types) {
				continue
			}
			if res := matchCity(comp.LongName); res != nil {
				res.City = comp.LongName
				res.Source = SourceGeocode
				return res, nil
			}
		}
	}
	return nil, nil
}

func isLocality(types []string) bool {
	for _, t := range types {
		switch t {
		case "locality", "administrative_area_level_2", "sublocality":
			return true
		}
	}
	return false
}

// matchCity finds a zone whose city list contains the text, case-insensitive.
func matchCity(text string) *Resolution {
	lower := strings.ToLower(text)
	for _, z := range pricing.ServiceZones {
		for _, city := range z.Cities {
			if strings.Contains(lower, strings.ToLower(city)) {
				return &Resolution{
					ZoneID:   z.ID,
					ZoneName: z.Name,
					City:     city,
					Source:   SourceText,
				}
			}
		}
	}
	return nil
}
