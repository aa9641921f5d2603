package maps

import "context"

// Location is the reduced geocoding record returned to agents.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
	PlaceID string  `json:"place_id,omitempty"`
}

// Place is the reduced place record returned by search tools. It is a strict
// subset of the upstream Places response: fields the calling agent does not
// need are dropped here, not downstream.
type Place struct {
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Rating           float64  `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"user_ratings_total,omitempty"`
	PriceLevel       int      `json:"price_level,omitempty"`
	Location         Location `json:"location"`
	Types            []string `json:"types,omitempty"`
	OpenNow          *bool    `json:"open_now,omitempty"`
	WeekdayText      []string `json:"weekday_text,omitempty"`
	BusinessStatus   string   `json:"business_status,omitempty"`
	PhotoCount       int      `json:"photos,omitempty"`
}

// RouteStep is a single navigation instruction.
type RouteStep struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
	TravelMode  string `json:"travel_mode,omitempty"`
}

// Route is the reduced directions summary for the best route's first leg.
type Route struct {
	Origin         Location    `json:"origin"`
	Destination    Location    `json:"destination"`
	Distance       string      `json:"distance"`
	DistanceMeters int         `json:"distance_meters"`
	Duration       string      `json:"duration"`
	Steps          []RouteStep `json:"steps"`
	Polyline       string      `json:"polyline,omitempty"`
}

// PlacesQuery shapes a Places text search request.
type PlacesQuery struct {
	Query    string
	Type     string
	Radius   int
	MinPrice *int
	MaxPrice *int
	OpenNow  bool
	Language string
}

// NearbyQuery shapes a Places nearby search around a coordinate.
type NearbyQuery struct {
	Lat            float64
	Lng            float64
	Type           string
	Keyword        string
	Radius         int
	MinPrice       *int
	MaxPrice       *int
	RankByDistance bool
	Language       string
}

// DirectionsQuery shapes a directions request between two named endpoints.
type DirectionsQuery struct {
	Origin      string
	Destination string
	Mode        string
	Language    string
}

// API is the upstream surface the tools depend on. Tools take this interface
// rather than the concrete client so tests can substitute a mock.
type API interface {
	SearchPlaces(ctx context.Context, q PlacesQuery) ([]Place, error)
	SearchNearby(ctx context.Context, q NearbyQuery) ([]Place, error)
	Directions(ctx context.Context, q DirectionsQuery) (*Route, error)
	Geocode(ctx context.Context, address string) (*Location, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*Location, error)
}
