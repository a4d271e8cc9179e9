package request

import "github.com/kailas-cloud/walmart-mcp/internal/domain"

// Store search parameter bounds.
const (
	StoreDefaultRadius = 25
	StoreMinRadius     = 1
	StoreDefaultLimit  = 10
	StoreMaxLimit      = 20
)

// Store is a validated store search request.
type Store struct {
	location string
	radius   float64
	limit    int
}

// NewStore validates and normalizes raw store search arguments.
// Defaults: radius=25, limit=10. A non-positive radius clamps to 1.
func NewStore(args map[string]any) (Store, error) {
	location, present, err := stringArg(args, "location")
	if err != nil {
		return Store{}, err
	}
	if !present || location == "" {
		return Store{}, domain.NewValidationError("location", domain.ReasonRequired)
	}

	radius, present, err := floatArg(args, "radius")
	if err != nil {
		return Store{}, err
	}
	if !present {
		radius = StoreDefaultRadius
	}
	if radius <= 0 {
		radius = StoreMinRadius
	}

	limit, err := limitArg(args, StoreDefaultLimit, StoreMaxLimit)
	if err != nil {
		return Store{}, err
	}

	return Store{location: location, radius: radius, limit: limit}, nil
}

// Location returns the search location (zip code, city, or coordinates).
func (s *Store) Location() string { return s.location }

// Radius returns the search radius in miles.
func (s *Store) Radius() float64 { return s.radius }

// Limit returns the maximum stores to return.
func (s *Store) Limit() int { return s.limit }
