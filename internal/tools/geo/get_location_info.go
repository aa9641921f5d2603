package geo

import (
	"context"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"waypoint/internal/tools/shared"
	"waypoint/pkg/errors"
)

// GetLocationInfoArgs are the arguments for the get_location_info tool.
type GetLocationInfoArgs struct {
	// Address, such as "Tokyo Tower, Tokyo, Japan"
	Address string `json:"address"`
}

// LocationOutput is the reduced geocoding record.
type LocationOutput struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	PlaceID string  `json:"place_id,omitempty"`
}

// NewGetLocationInfoTool returns a tool that geocodes an address.
func NewGetLocationInfoTool(deps shared.Deps) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "get_location_info",
		Description: "Resolve an address to coordinates and a canonical formatted address",
	}, func(ctx tool.Context, args GetLocationInfoArgs) (LocationOutput, error) {
		return getLocationInfo(ctx, deps, args)
	})
}

func getLocationInfo(ctx context.Context, deps shared.Deps, args GetLocationInfoArgs) (LocationOutput, error) {
	log := deps.Logger().With("tool", "get_location_info")

	if !deps.HasMaps() {
		log.Error("called without maps client")
		return LocationOutput{}, errors.Wrap(errors.ErrUnavailable, "maps client not configured")
	}

	if err := shared.RequireString("address", args.Address); err != nil {
		log.Warnw("rejected arguments", "error", err)
		return LocationOutput{}, err
	}

	loc, err := deps.Maps.Geocode(ctx, args.Address)
	if err != nil {
		log.Errorw("upstream geocode failed", "address", args.Address, "error", err)
		return LocationOutput{}, err
	}

	log.Infow("address resolved", "address", args.Address, "lat", loc.Lat, "lng", loc.Lng)
	return LocationOutput{
		Address: loc.Address,
		Lat:     loc.Lat,
		Lng:     loc.Lng,
		PlaceID: loc.PlaceID,
	}, nil
}
