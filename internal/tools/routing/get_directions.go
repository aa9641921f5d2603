package routing

import (
	"context"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"waypoint/internal/maps"
	"waypoint/internal/tools/shared"
	"waypoint/pkg/errors"
)

// Travel modes accepted by get_directions.
const (
	ModeTransit   = "transit"
	ModeDriving   = "driving"
	ModeWalking   = "walking"
	ModeBicycling = "bicycling"
)

// GetDirectionsArgs are the arguments for the get_directions tool.
type GetDirectionsArgs struct {
	// Starting point, such as "Tokyo Station"
	Origin string `json:"origin"`
	// Destination, such as "Tokyo Tower"
	Destination string `json:"destination"`
	// Travel mode: "transit" (default), "driving", "walking" or "bicycling"
	Mode string `json:"mode,omitempty"`
}

// GetDirectionsOutput is the reduced route summary.
type GetDirectionsOutput struct {
	Origin         maps.Location    `json:"origin"`
	Destination    maps.Location    `json:"destination"`
	Distance       string           `json:"distance"`
	DistanceMeters int              `json:"distance_meters"`
	Duration       string           `json:"duration"`
	Steps          []maps.RouteStep `json:"steps"`
	Polyline       string           `json:"polyline,omitempty"`
	Mode           string           `json:"mode"`
}

// NewGetDirectionsTool returns a tool that plans a route between two named
// endpoints.
func NewGetDirectionsTool(deps shared.Deps) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "get_directions",
		Description: "Get route planning from an origin to a destination with distance, duration and step-by-step instructions",
	}, func(ctx tool.Context, args GetDirectionsArgs) (GetDirectionsOutput, error) {
		return getDirections(ctx, deps, args)
	})
}

func getDirections(ctx context.Context, deps shared.Deps, args GetDirectionsArgs) (GetDirectionsOutput, error) {
	log := deps.Logger().With("tool", "get_directions")

	if !deps.HasMaps() {
		log.Error("called without maps client")
		return GetDirectionsOutput{}, errors.Wrap(errors.ErrUnavailable, "maps client not configured")
	}

	if err := shared.RequireString("origin", args.Origin); err != nil {
		log.Warnw("rejected arguments", "error", err)
		return GetDirectionsOutput{}, err
	}
	if err := shared.RequireString("destination", args.Destination); err != nil {
		log.Warnw("rejected arguments", "error", err)
		return GetDirectionsOutput{}, err
	}
	if err := shared.ValidateEnum("mode", args.Mode, ModeTransit, ModeDriving, ModeWalking, ModeBicycling); err != nil {
		log.Warnw("rejected arguments", "error", err)
		return GetDirectionsOutput{}, err
	}

	mode := args.Mode
	if mode == "" {
		mode = ModeTransit
	}

	route, err := deps.Maps.Directions(ctx, maps.DirectionsQuery{
		Origin:      args.Origin,
		Destination: args.Destination,
		Mode:        mode,
		Language:    deps.Language,
	})
	if err != nil {
		log.Errorw("upstream directions failed", "origin", args.Origin, "destination", args.Destination, "error", err)
		return GetDirectionsOutput{}, err
	}

	log.Infow("route resolved", "origin", args.Origin, "destination", args.Destination, "mode", mode, "distance", route.Distance)
	return GetDirectionsOutput{
		Origin:         route.Origin,
		Destination:    route.Destination,
		Distance:       route.Distance,
		DistanceMeters: route.DistanceMeters,
		Duration:       route.Duration,
		Steps:          route.Steps,
		Polyline:       route.Polyline,
		Mode:           mode,
	}, nil
}
