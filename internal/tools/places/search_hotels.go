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

// SearchHotelsArgs are the arguments for the search_hotels tool.
type SearchHotelsArgs struct {
	// Area name, such as "Shinjuku", "Tokyo", "New York"
	Area string `json:"area"`
	// Hotel type, such as "luxury", "budget", "business", "resort"
	HotelType string `json:"hotel_type,omitempty"`
	// Price level range "min-max" with levels 0-4, such as "2-3"
	PriceLevel string `json:"price_level,omitempty"`
	// Minimum rating between 0 and 5
	RatingMin float64 `json:"rating_min,omitempty"`
	// Search radius in meters, up to 50000
	Radius int `json:"radius,omitempty"`
}

// NewSearchHotelsTool returns a tool that searches lodging in an area via
// the Places text search.
func NewSearchHotelsTool(deps shared.Deps) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "search_hotels",
		Description: "Search for hotels in a specified area, optionally filtered by hotel type, price level, minimum rating and radius",
	}, func(ctx tool.Context, args SearchHotelsArgs) (shared.SearchOutput, error) {
		return searchHotels(ctx, deps, args)
	})
}

func searchHotels(ctx context.Context, deps shared.Deps, args SearchHotelsArgs) (shared.SearchOutput, error) {
	log := deps.Logger().With("tool", "search_hotels")

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

	query := fmt.Sprintf("hotels in %s", args.Area)
	if args.HotelType != "" {
		query = fmt.Sprintf("%s %s", query, args.HotelType)
	}

	results, err := deps.Maps.SearchPlaces(ctx, maps.PlacesQuery{
		Query:    query,
		Type:     "lodging",
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
		Kind:    "hotel",
		Query:   query,
		Count:   len(results),
		Results: results,
	}, nil
}
