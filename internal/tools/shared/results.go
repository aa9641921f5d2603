package shared

import (
	"waypoint/internal/maps"
)

// SearchOutput is the reduced record list all place search tools return.
// Entries keep the relative order the upstream API produced.
type SearchOutput struct {
	Kind    string       `json:"kind"`
	Query   string       `json:"query"`
	Count   int          `json:"count"`
	Results []maps.Place `json:"results"`
}

// FilterByRating keeps places rated at or above min. The Places API has no
// such filter, so it is applied client-side before truncation; unrated
// places are dropped when a threshold is set.
func FilterByRating(places []maps.Place, min float64) []maps.Place {
	if min <= 0 {
		return places
	}
	filtered := places[:0:0]
	for _, p := range places {
		if p.Rating >= min {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Truncate caps the result list, preserving order.
func Truncate(places []maps.Place, max int) []maps.Place {
	if max <= 0 || len(places) <= max {
		return places
	}
	return places[:max]
}
