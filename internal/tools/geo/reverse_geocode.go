package geo

import (
	"context"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"waypoint/internal/tools/shared"
	"waypoint/pkg/errors"
)

// ReverseGeocodeArgs are the arguments for the reverse_geocode tool.
type ReverseGeocodeArgs struct {
	// Latitude, between -90 and 90
	Lat *float64 `json:"lat"`
	// Longitude, between -180 and 180
	Lng *float64 `json:"lng"`
}

// NewReverseGeocodeTool returns a tool that resolves a coordinate pair to
// the nearest formatted address. Reverse-geocoding the coordinates of a
// previously geocoded address is not guaranteed to reproduce the original
// string.
func NewReverseGeocodeTool(deps shared.Deps) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "reverse_geocode",
		Description: "Resolve latitude/longitude coordinates to the nearest address",
	}, func(ctx tool.Context, args ReverseGeocodeArgs) (LocationOutput, error) {
		return reverseGeocode(ctx, deps, args)
	})
}

func reverseGeocode(ctx context.Context, deps shared.Deps, args ReverseGeocodeArgs) (LocationOutput, error) {
	log := deps.Logger().With("tool", "reverse_geocode")

	if !deps.HasMaps() {
		log.Error("called without maps client")
		return LocationOutput{}, errors.Wrap(errors.ErrUnavailable, "maps client not configured")
	}

	lat, err := shared.RequireLatitude("lat", args.Lat)
	if err != nil {
		log.Warnw("rejected arguments", "error", err)
		return LocationOutput{}, err
	}
	lng, err := shared.RequireLongitude("lng", args.Lng)
	if err != nil {
		log.Warnw("rejected arguments", "error", err)
		return LocationOutput{}, err
	}

	loc, err := deps.Maps.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		log.Errorw("upstream reverse geocode failed", "lat", lat, "lng", lng, "error", err)
		return LocationOutput{}, err
	}

	log.Infow("coordinates resolved", "lat", lat, "lng", lng, "address", loc.Address)
	return LocationOutput{
		Address: loc.Address,
		Lat:     loc.Lat,
		Lng:     loc.Lng,
		PlaceID: loc.PlaceID,
	}, nil
}
