package tools

// Tool categories.
const (
	CategoryPlaces  = "places"
	CategoryRouting = "routing"
	CategoryGeo     = "geo"
)

// Definition describes a tool's metadata for registration and documentation.
type Definition struct {
	Name        string
	Description string
	Category    string
}

var toolDefinitions = []Definition{
	{Name: "search_restaurants", Description: "Search for restaurants in an area with cuisine, price and rating filters", Category: CategoryPlaces},
	{Name: "search_attractions", Description: "Search for tourist attractions in an area", Category: CategoryPlaces},
	{Name: "search_hotels", Description: "Search for hotels in an area", Category: CategoryPlaces},
	{Name: "search_nearby", Description: "Find places of a type around a coordinate", Category: CategoryPlaces},

	{Name: "get_directions", Description: "Plan a route between two named endpoints", Category: CategoryRouting},

	{Name: "get_location_info", Description: "Resolve an address to coordinates", Category: CategoryGeo},
	{Name: "reverse_geocode", Description: "Resolve coordinates to the nearest address", Category: CategoryGeo},
}

// Definitions exposes a copy of all tool definitions.
func Definitions() []Definition {
	defs := make([]Definition, len(toolDefinitions))
	copy(defs, toolDefinitions)
	return defs
}
