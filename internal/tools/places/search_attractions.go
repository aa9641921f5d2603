package places

import (
	"context"
	"fmt"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"waypoint/internal/maps"
	"waypoint/internal/tools/shared"
	"waypoint/pkg/errors"
)

// SearchAttractionsArgs are the arguments for the search_attractions tool.
type SearchAttractionsArgs struct {
	// Area name, such as "Tokyo", "Asakusa", "London"
	Area string `json:"area"`
	// Attraction type, such as "museum", "temple", "park"
	AttractionType string `json:"attraction_type,omitempty"`
	// Price level range "min-max" with levels 0-4, such as "0-2"
	PriceLevel string `json:"price_level,omitempty"`
	// Minimum rating between 0 and 5
	RatingMin float64 `json:"rating_min,omitempty"`
	// Search radius in meters, up to 50000
	Radius int `json:"radius,omitempty"`
}

// NewSearchAttractionsTool returns a tool that searches tourist attractions
// in an area via the Places text search.
func NewSearchAttractionsTool(deps shared.Deps) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "search_attractions",
		Description: "Search for tourist attractions in a specified area, optionally filtered by attraction type, price level, minimum rating and radius",
	}, func(ctx tool.Context, args SearchAttractionsArgs) (shared.SearchOutput, error) {
		return searchAttractions(ctx, deps, args)
	})
}

func searchAttractions(ctx context.Context, deps shared.Deps, args SearchAttractionsArgs) (shared.SearchOutput, error) {
	log := deps.Logger().With("tool", "search_attractions")

	if !deps.HasMaps() {
		log.Error("called without maps client")
		return shared.SearchOutput{}, errors.Wrap(errors.ErrUnavailable, "maps client not configured")
	}

	if err := shared.RequireString("area", args.Area); err != nil {
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
	radius, err := shared.NormalizeRadius(args.Radius)
	if err != nil {
		log.Warnw("rejected arguments", "error", err)
		return shared.SearchOutput{}, err
	}

	query := fmt.Sprintf("tourist attractions in %s", args.Area)
	if args.AttractionType != "" {
		query = fmt.Sprintf("%s %s", query, args.AttractionType)
	}

	results, err := deps.Maps.SearchPlaces(ctx, maps.PlacesQuery{
		Query:    query,
		Type:     "tourist_attraction",
		Radius:   radius,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Language: deps.Language,
	})
	if err != nil {
		log.Errorw("upstream search failed", "query", query, "error", err)
		return shared.SearchOutput{}, err
	}

	results = shared.FilterByRating(results, args.RatingMin)
	results = shared.Truncate(results, deps.Cap())

	log.Infow("search complete", "query", query, "results", len(results))
	return shared.SearchOutput{
		Kind:    "attraction",
		Query:   query,
		Count:   len(results),
		Results: results,
	}, nil
}
