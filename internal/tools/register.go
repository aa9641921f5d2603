package tools

import (
	"google.golang.org/adk/tool"

	"waypoint/internal/tools/geo"
	"waypoint/internal/tools/places"
	"waypoint/internal/tools/routing"
	"waypoint/internal/tools/shared"
	"waypoint/pkg/errors"
)

// constructors maps catalog names to tool factories.
var constructors = map[string]func(shared.Deps) (tool.Tool, error){
	"search_restaurants": places.NewSearchRestaurantsTool,
	"search_attractions": places.NewSearchAttractionsTool,
	"search_hotels":      places.NewSearchHotelsTool,
	"search_nearby":      places.NewSearchNearbyTool,
	"get_directions":     routing.NewGetDirectionsTool,
	"get_location_info":  geo.NewGetLocationInfoTool,
	"reverse_geocode":    geo.NewReverseGeocodeTool,
}

// RegisterAll builds every cataloged tool with the provided dependencies and
// registers it.
func RegisterAll(registry *Registry, deps shared.Deps) error {
	for _, def := range toolDefinitions {
		build, ok := constructors[def.Name]
		if !ok {
			return errors.Newf("tool %s has no constructor", def.Name)
		}
		t, err := build(deps)
		if err != nil {
			return errors.Wrapf(err, "build tool %s", def.Name)
		}
		registry.Register(def, t)
	}
	return nil
}
