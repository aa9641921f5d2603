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

// SearchRestaurantsArgs are the arguments for the search_restaurants tool.
type SearchRestaurantsArgs struct {
	// Area name, such as "Shibuya", "Tokyo", "New York"
	Area string `json:"area"`
	// Cuisine type, such as "sushi", "ramen", "tempura"
	Cuisine string `json:"cuisine,omitempty"`
	// Price level range "min-max" with levels 0-4, such as "0-2"
	PriceLevel string `json:"price_level,omitempty"`
	// Minimum rating between 0 and 5, such as 4.0
	RatingMin float64 `json:"rating_min,omitempty"`
	// Search radius in meters, up to 50000
	Radius int `json:"radius,omitempty"`
	// Only return places currently open
	OpenNow bool `json:"open_now,omitempty"`
}

// NewSearchRestaurantsTool returns a tool that searches restaurants in an
// area via the Places text search.
func NewSearchRestaurantsTool(deps shared.Deps) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "search_restaurants",
		Description: "Search for restaurants in a specified area, optionally filtered by cuisine, price level, minimum rating and radius",
	}, func(ctx tool.Context, args SearchRestaurantsArgs) (shared.SearchOutput, error) {
		return searchRestaurants(ctx, deps, args)
	})
}

func searchRestaurants(ctx context.Context, deps shared.Deps, args SearchRestaurantsArgs) (shared.SearchOutput, error) {
	log := deps.Logger().With("tool", "search_restaurants")

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

	query := fmt.Sprintf("restaurant in %s", args.Area)
	if args.Cuisine != "" {
		query = fmt.Sprintf("%s restaurant in %s", args.Cuisine, args.Area)
	}

	results, err := deps.Maps.SearchPlaces(ctx, maps.PlacesQuery{
		Query:    query,
		Type:     "restaurant",
		Radius:   radius,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		OpenNow:  args.OpenNow,
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
		Kind:    "restaurant",
		Query:   query,
		Count:   len(results),
		Results: results,
	}, nil
}
