package places

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"waypoint/internal/maps"
	"waypoint/internal/tools/shared"
	"waypoint/pkg/logger"
)

// mockMapsAPI records calls so tests can assert that validation failures
// never reach the upstream client.
type mockMapsAPI struct {
	places []maps.Place
	err    error

	textSearchCalls   int
	nearbySearchCalls int

	lastPlacesQuery maps.PlacesQuery
	lastNearbyQuery maps.NearbyQuery
}

func (m *mockMapsAPI) SearchPlaces(_ context.Context, q maps.PlacesQuery) ([]maps.Place, error) {
	m.textSearchCalls++
	m.lastPlacesQuery = q
	return m.places, m.err
}

func (m *mockMapsAPI) SearchNearby(_ context.Context, q maps.NearbyQuery) ([]maps.Place, error) {
	m.nearbySearchCalls++
	m.lastNearbyQuery = q
	return m.places, m.err
}

func (m *mockMapsAPI) Directions(context.Context, maps.DirectionsQuery) (*maps.Route, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *mockMapsAPI) Geocode(context.Context, string) (*maps.Location, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *mockMapsAPI) ReverseGeocode(context.Context, float64, float64) (*maps.Location, error) {
	return nil, fmt.Errorf("not implemented")
}

func testDeps(api maps.API) shared.Deps {
	return shared.Deps{
		Maps:     api,
		Log:      testLogger(),
		Language: "en",
	}
}

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// ratedPlaces builds n places named "place-1".."place-n" with descending
// ratings starting at 5.0.
func ratedPlaces(n int) []maps.Place {
	places := make([]maps.Place, 0, n)
	for i := 0; i < n; i++ {
		places = append(places, maps.Place{
			Name:    fmt.Sprintf("place-%d", i+1),
			Address: fmt.Sprintf("%d Test Street", i+1),
			Rating:  5.0 - float64(i)*0.5,
		})
	}
	return places
}
