package maps

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/time/rate"
	gmaps "googlemaps.github.io/maps"

	"waypoint/internal/metrics"
	"waypoint/pkg/errors"
	"waypoint/pkg/logger"
)

// Client wraps the Google Maps web service client. It adds a client-side QPS
// limiter, structured logging and upstream-call metrics; it does not retry,
// cache or return partial results. Upstream failures surface as
// errors.UpstreamError with the original message intact.
type Client struct {
	gm      *gmaps.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

// ClientOptions configures a Client.
type ClientOptions struct {
	APIKey string
	// QPS caps outgoing request rate; 0 disables the limiter
	QPS float64
	Log *logger.Logger
}

// NewClient creates a Maps client from an API key.
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.APIKey == "" {
		return nil, errors.Wrap(errors.ErrUnavailable, "google maps api key is required")
	}

	gm, err := gmaps.NewClient(gmaps.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "create google maps client")
	}

	log := opts.Log
	if log == nil {
		log = logger.Get()
	}

	var limiter *rate.Limiter
	if opts.QPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.QPS), 1)
	}

	return &Client{gm: gm, limiter: limiter, log: log.With("component", "maps_client")}, nil
}

// SearchPlaces runs a Places text search and reduces the response.
func (c *Client) SearchPlaces(ctx context.Context, q PlacesQuery) ([]Place, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	req := &gmaps.TextSearchRequest{
		Query:    q.Query,
		Language: q.Language,
		OpenNow:  q.OpenNow,
	}
	if q.Type != "" {
		req.Type = gmaps.PlaceType(q.Type)
	}
	if q.Radius > 0 {
		req.Radius = uint(q.Radius)
	}
	if q.MinPrice != nil {
		req.MinPrice = priceLevel(*q.MinPrice)
	}
	if q.MaxPrice != nil {
		req.MaxPrice = priceLevel(*q.MaxPrice)
	}

	start := time.Now()
	resp, err := c.gm.TextSearch(ctx, req)
	metrics.ObserveMapsAPICall("places_text_search", time.Since(start), err)
	if err != nil {
		c.log.Errorw("places text search failed", "query", q.Query, "error", err)
		return nil, errors.NewUpstreamError("places text search", err)
	}

	places := make([]Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, placeFromSearchResult(r))
	}
	c.log.Debugw("places text search", "query", q.Query, "results", len(places))
	return places, nil
}

// SearchNearby runs a Places nearby search around a coordinate.
func (c *Client) SearchNearby(ctx context.Context, q NearbyQuery) ([]Place, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	req := &gmaps.NearbySearchRequest{
		Location: &gmaps.LatLng{Lat: q.Lat, Lng: q.Lng},
		Keyword:  q.Keyword,
		Language: q.Language,
	}
	if q.Type != "" {
		req.Type = gmaps.PlaceType(q.Type)
	}
	// The Places API rejects radius together with rank-by-distance.
	if q.RankByDistance {
		req.RankBy = gmaps.RankByDistance
	} else if q.Radius > 0 {
		req.Radius = uint(q.Radius)
	}
	if q.MinPrice != nil {
		req.MinPrice = priceLevel(*q.MinPrice)
	}
	if q.MaxPrice != nil {
		req.MaxPrice = priceLevel(*q.MaxPrice)
	}

	start := time.Now()
	resp, err := c.gm.NearbySearch(ctx, req)
	metrics.ObserveMapsAPICall("places_nearby_search", time.Since(start), err)
	if err != nil {
		c.log.Errorw("places nearby search failed", "lat", q.Lat, "lng", q.Lng, "error", err)
		return nil, errors.NewUpstreamError("places nearby search", err)
	}

	places := make([]Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, placeFromSearchResult(r))
	}
	c.log.Debugw("places nearby search", "lat", q.Lat, "lng", q.Lng, "results", len(places))
	return places, nil
}

// Directions resolves the best route between two endpoints and reduces it to
// the first leg's summary.
func (c *Client) Directions(ctx context.Context, q DirectionsQuery) (*Route, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	req := &gmaps.DirectionsRequest{
		Origin:      q.Origin,
		Destination: q.Destination,
		Language:    q.Language,
	}
	if q.Mode != "" {
		req.Mode = gmaps.Mode(q.Mode)
	}

	start := time.Now()
	routes, _, err := c.gm.Directions(ctx, req)
	metrics.ObserveMapsAPICall("directions", time.Since(start), err)
	if err != nil {
		c.log.Errorw("directions failed", "origin", q.Origin, "destination", q.Destination, "error", err)
		return nil, errors.NewUpstreamError("directions", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, errors.Wrapf(errors.ErrNotFound, "no route from %q to %q", q.Origin, q.Destination)
	}

	route := routeFromUpstream(routes[0])
	c.log.Debugw("directions resolved", "origin", q.Origin, "destination", q.Destination, "distance", route.Distance)
	return route, nil
}

// Geocode resolves a textual address to a location.
func (c *Client) Geocode(ctx context.Context, address string) (*Location, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	results, err := c.gm.Geocode(ctx, &gmaps.GeocodingRequest{Address: address})
	metrics.ObserveMapsAPICall("geocode", time.Since(start), err)
	if err != nil {
		c.log.Errorw("geocode failed", "address", address, "error", err)
		return nil, errors.NewUpstreamError("geocode", err)
	}
	if len(results) == 0 {
		return nil, errors.Wrapf(errors.ErrNotFound, "no geocoding result for %q", address)
	}

	loc := locationFromGeocodingResult(results[0])
	return &loc, nil
}

// ReverseGeocode resolves a coordinate pair to the nearest address. The
// round trip through Geocode is not symmetric: the returned formatted
// address may differ from the string originally geocoded.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (*Location, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	results, err := c.gm.ReverseGeocode(ctx, &gmaps.GeocodingRequest{
		LatLng: &gmaps.LatLng{Lat: lat, Lng: lng},
	})
	metrics.ObserveMapsAPICall("reverse_geocode", time.Since(start), err)
	if err != nil {
		c.log.Errorw("reverse geocode failed", "lat", lat, "lng", lng, "error", err)
		return nil, errors.NewUpstreamError("reverse geocode", err)
	}
	if len(results) == 0 {
		return nil, errors.Wrapf(errors.ErrNotFound, "no address at %f,%f", lat, lng)
	}

	loc := locationFromGeocodingResult(results[0])
	return &loc, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func priceLevel(level int) gmaps.PriceLevel {
	return gmaps.PriceLevel(strconv.Itoa(level))
}

var _ API = (*Client)(nil)
