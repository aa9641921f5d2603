package maps

import (
	gmaps "googlemaps.github.io/maps"
)

// maxTypes bounds how many place type tags survive the reduction.
const maxTypes = 3

func placeFromSearchResult(r gmaps.PlacesSearchResult) Place {
	address := r.FormattedAddress
	if address == "" {
		// Nearby search responses carry Vicinity instead.
		address = r.Vicinity
	}

	p := Place{
		Name:             r.Name,
		Address:          address,
		Rating:           float64(r.Rating),
		UserRatingsTotal: r.UserRatingsTotal,
		PriceLevel:       r.PriceLevel,
		BusinessStatus:   r.BusinessStatus,
		PhotoCount:       len(r.Photos),
		Location: Location{
			Lat:     r.Geometry.Location.Lat,
			Lng:     r.Geometry.Location.Lng,
			Address: address,
			PlaceID: r.PlaceID,
		},
	}

	if len(r.Types) > maxTypes {
		p.Types = append(p.Types, r.Types[:maxTypes]...)
	} else {
		p.Types = append(p.Types, r.Types...)
	}

	if r.OpeningHours != nil {
		p.OpenNow = r.OpeningHours.OpenNow
		p.WeekdayText = r.OpeningHours.WeekdayText
	}

	return p
}

func locationFromGeocodingResult(r gmaps.GeocodingResult) Location {
	return Location{
		Lat:     r.Geometry.Location.Lat,
		Lng:     r.Geometry.Location.Lng,
		Address: r.FormattedAddress,
		PlaceID: r.PlaceID,
	}
}

func routeFromUpstream(r gmaps.Route) *Route {
	leg := r.Legs[0]

	steps := make([]RouteStep, 0, len(leg.Steps))
	for _, s := range leg.Steps {
		steps = append(steps, RouteStep{
			Instruction: s.HTMLInstructions,
			Distance:    s.Distance.HumanReadable,
			Duration:    s.Duration.String(),
			TravelMode:  string(s.TravelMode),
		})
	}

	return &Route{
		Origin: Location{
			Lat:     leg.StartLocation.Lat,
			Lng:     leg.StartLocation.Lng,
			Address: leg.StartAddress,
		},
		Destination: Location{
			Lat:     leg.EndLocation.Lat,
			Lng:     leg.EndLocation.Lng,
			Address: leg.EndAddress,
		},
		Distance:       leg.Distance.HumanReadable,
		DistanceMeters: leg.Distance.Meters,
		Duration:       leg.Duration.String(),
		Steps:          steps,
		Polyline:       r.OverviewPolyline.Points,
	}
}
