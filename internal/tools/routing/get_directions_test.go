package routing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"waypoint/internal/maps"
	"waypoint/internal/tools/shared"
	"waypoint/pkg/errors"
	"waypoint/pkg/logger"
)

type mockMapsAPI struct {
	route *maps.Route
	err   error

	directionsCalls int
	lastQuery       maps.DirectionsQuery
}

func (m *mockMapsAPI) Directions(_ context.Context, q maps.DirectionsQuery) (*maps.Route, error) {
	m.directionsCalls++
	m.lastQuery = q
	return m.route, m.err
}

func (m *mockMapsAPI) SearchPlaces(context.Context, maps.PlacesQuery) ([]maps.Place, error) {
	return nil, errors.New("not implemented")
}

func (m *mockMapsAPI) SearchNearby(context.Context, maps.NearbyQuery) ([]maps.Place, error) {
	return nil, errors.New("not implemented")
}

func (m *mockMapsAPI) Geocode(context.Context, string) (*maps.Location, error) {
	return nil, errors.New("not implemented")
}

func (m *mockMapsAPI) ReverseGeocode(context.Context, float64, float64) (*maps.Location, error) {
	return nil, errors.New("not implemented")
}

func testDeps(api maps.API) shared.Deps {
	return shared.Deps{
		Maps:     api,
		Log:      &logger.Logger{SugaredLogger: zap.NewNop().Sugar()},
		Language: "en",
	}
}

func testRoute() *maps.Route {
	return &maps.Route{
		Origin:         maps.Location{Lat: 35.681, Lng: 139.767, Address: "Tokyo Station"},
		Destination:    maps.Location{Lat: 35.658, Lng: 139.745, Address: "Tokyo Tower"},
		Distance:       "4.2 km",
		DistanceMeters: 4200,
		Duration:       "18m0s",
		Steps: []maps.RouteStep{
			{Instruction: "Walk to Marunouchi Line", Distance: "300 m", Duration: "4m0s", TravelMode: "WALKING"},
			{Instruction: "Take Marunouchi Line to Kasumigaseki", Distance: "2.5 km", Duration: "6m0s", TravelMode: "TRANSIT"},
		},
		Polyline: "abc123",
	}
}

func TestGetDirections_Validation(t *testing.T) {
	cases := []struct {
		name  string
		args  GetDirectionsArgs
		field string
	}{
		{"missing origin", GetDirectionsArgs{Destination: "Tokyo Tower"}, "origin"},
		{"missing destination", GetDirectionsArgs{Origin: "Tokyo Station"}, "destination"},
		{"unknown mode", GetDirectionsArgs{Origin: "Tokyo Station", Destination: "Tokyo Tower", Mode: "teleport"}, "mode"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &mockMapsAPI{route: testRoute()}

			_, err := getDirections(context.Background(), testDeps(api), tc.args)

			require.Error(t, err)
			var verr *errors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
			assert.Zero(t, api.directionsCalls)
		})
	}
}

func TestGetDirections_DefaultsToTransit(t *testing.T) {
	api := &mockMapsAPI{route: testRoute()}

	out, err := getDirections(context.Background(), testDeps(api), GetDirectionsArgs{
		Origin:      "Tokyo Station",
		Destination: "Tokyo Tower",
	})
	require.NoError(t, err)

	assert.Equal(t, ModeTransit, api.lastQuery.Mode)
	assert.Equal(t, ModeTransit, out.Mode)
}

func TestGetDirections_RouteSummary(t *testing.T) {
	api := &mockMapsAPI{route: testRoute()}

	out, err := getDirections(context.Background(), testDeps(api), GetDirectionsArgs{
		Origin:      "Tokyo Station",
		Destination: "Tokyo Tower",
		Mode:        ModeWalking,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, api.directionsCalls)
	assert.Equal(t, "Tokyo Station", api.lastQuery.Origin)
	assert.Equal(t, "Tokyo Tower", api.lastQuery.Destination)
	assert.Equal(t, ModeWalking, api.lastQuery.Mode)

	assert.Equal(t, "4.2 km", out.Distance)
	assert.Equal(t, 4200, out.DistanceMeters)
	assert.Equal(t, "18m0s", out.Duration)
	require.Len(t, out.Steps, 2)
	assert.Equal(t, "Walk to Marunouchi Line", out.Steps[0].Instruction)
	assert.Equal(t, "abc123", out.Polyline)
	assert.Equal(t, ModeWalking, out.Mode)
}

func TestGetDirections_NoRoute(t *testing.T) {
	api := &mockMapsAPI{err: errors.Wrapf(errors.ErrNotFound, "no route from %q to %q", "A", "B")}

	_, err := getDirections(context.Background(), testDeps(api), GetDirectionsArgs{
		Origin:      "A",
		Destination: "B",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestGetDirections_UpstreamError(t *testing.T) {
	api := &mockMapsAPI{err: errors.NewUpstreamError("directions", errors.New("maps: ZERO_RESULTS"))}

	_, err := getDirections(context.Background(), testDeps(api), GetDirectionsArgs{
		Origin:      "Tokyo Station",
		Destination: "Tokyo Tower",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUpstream))
	assert.Contains(t, err.Error(), "ZERO_RESULTS")
}

func TestGetDirections_NoMapsClient(t *testing.T) {
	_, err := getDirections(context.Background(), testDeps(nil), GetDirectionsArgs{
		Origin:      "Tokyo Station",
		Destination: "Tokyo Tower",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnavailable))
}
