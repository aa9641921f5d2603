package places

import (
	"context"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"waypoint/internal/maps"
	"waypoint/internal/tools/shared"
	"waypoint/pkg/errors"
)

// Ranking modes accepted by search_nearby.
const (
	RankByProminence = "prominence"
	RankByDistance   = "distance"
)

// SearchNearbyArgs are the arguments for the search_nearby tool.
type SearchNearbyArgs struct {
	// Latitude of the search center
	Lat *float64 `json:"lat"`
	// Longitude of the search center
	Lng *float64 `json:"lng"`
	// Place type, such as "restaurant", "cafe", "museum"
	PlaceType string `json:"place_type"`
	// Free-text keyword to match against place content
	Keyword string `json:"keyword,omitempty"`
	// Search radius in meters, up to 50000; not allowed with rank_by "distance"
	Radius int `json:"radius,omitempty"`
	// Price level range "min-max" with levels 0-4
	PriceLevel string `json:"price_level,omitempty"`
	// Minimum rating between 0 and 5
	RatingMin float64 `json:"rating_min,omitempty"`
	// Result ordering: "prominence" (default) or "distance"
	RankBy string `json:"rank_by,omitempty"`
}

// NewSearchNearbyTool returns a tool that lists places of a type around a
// coordinate via the Places nearby search.
func NewSearchNearbyTool(deps shared.Deps) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "search_nearby",
		Description: "Find places of a given type around a coordinate, ranked by prominence or distance",
	}, func(ctx tool.Context, args SearchNearbyArgs) (shared.SearchOutput, error) {
		return searchNearby(ctx, deps, args)
	})
}

func searchNearby(ctx context.Context, deps shared.Deps, args SearchNearbyArgs) (shared.SearchOutput, error) {
	log := deps.Logger().With("tool", "search_nearby")

	if !deps.HasMaps() {
		log.Error("called without maps client")
		return shared.SearchOutput{}, errors.Wrap(errors.ErrUnavailable, "maps client not configured")
	}

	lat, err := shared.RequireLatitude("lat", args.Lat)
	if err != nil {
		log.Warnw("rejected arguments", "error", err)
		return shared.SearchOutput{}, err
	}
	lng, err := shared.RequireLongitude("lng", args.Lng)
	if err != nil {
		log.Warnw("rejected arguments", "error", err)
		return shared.SearchOutput{}, err
	}
	if err := shared.RequireString("place_type", args.PlaceType); err != nil {
		log.Warnw("rejected arguments", "error", err)
		return shared.SearchOutput{}, err
	}
	if err := shared.ValidateEnum("rank_by", args.RankBy, RankByProminence, RankByDistance); err != nil {
		log.Warnw("rejected arguments", "error", err)
		return shared.SearchOutput{}, err
	}
	minPrice, maxPrice, err := shared.ParsePriceRange(args.PriceLevel)
	if err != nil {
		log.Warnw("rejected arguments", "error", err)
		return shared.SearchOutput{}, err
	}
	if err := shared.ValidateRatingMin(args.RatingMin); err != nil {
		log.Warnw("rejected arguments", "error", err)
		return shared.SearchOutput{}, err
	}

	rankByDistance := args.RankBy == RankByDistance
	var radius int
	if rankByDistance {
		// The upstream API rejects radius together with rank-by-distance.
		if args.Radius != 0 {
			err := errors.NewValidationError("radius", "cannot be combined with rank_by 'distance'", args.Radius)
			log.Warnw("rejected arguments", "error", err)
			return shared.SearchOutput{}, err
		}
	} else {
		radius, err = shared.NormalizeRadius(args.Radius)
		if err != nil {
			log.Warnw("rejected arguments", "error", err)
			return shared.SearchOutput{}, err
		}
	}

	results, err := deps.Maps.SearchNearby(ctx, maps.NearbyQuery{
		Lat:            lat,
		Lng:            lng,
		Type:           args.PlaceType,
		Keyword:        args.Keyword,
		Radius:         radius,
		MinPrice:       minPrice,
		MaxPrice:       maxPrice,
		RankByDistance: rankByDistance,
		Language:       deps.Language,
	})
	if err != nil {
		log.Errorw("upstream search failed", "place_type", args.PlaceType, "error", err)
		return shared.SearchOutput{}, err
	}

	results = shared.FilterByRating(results, args.RatingMin)
	results = shared.Truncate(results, deps.Cap())

	log.Infow("search complete", "place_type", args.PlaceType, "results", len(results))
	return shared.SearchOutput{
		Kind:    args.PlaceType,
		Query:   args.Keyword,
		Count:   len(results),
		Results: results,
	}, nil
}
