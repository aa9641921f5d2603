package places

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waypoint/pkg/errors"
)

func TestSearchAttractions(t *testing.T) {
	t.Run("missing area stops before upstream", func(t *testing.T) {
		api := &mockMapsAPI{places: ratedPlaces(2)}

		_, err := searchAttractions(context.Background(), testDeps(api), SearchAttractionsArgs{})

		require.Error(t, err)
		var verr *errors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "area", verr.Field)
		assert.Zero(t, api.textSearchCalls)
	})

	t.Run("query includes attraction type", func(t *testing.T) {
		api := &mockMapsAPI{places: ratedPlaces(2)}

		out, err := searchAttractions(context.Background(), testDeps(api), SearchAttractionsArgs{
			Area:           "Asakusa",
			AttractionType: "temple",
		})
		require.NoError(t, err)

		assert.Equal(t, "tourist attractions in Asakusa temple", api.lastPlacesQuery.Query)
		assert.Equal(t, "tourist_attraction", api.lastPlacesQuery.Type)
		assert.Equal(t, "attraction", out.Kind)
		assert.Equal(t, 2, out.Count)
	})

	t.Run("cap applies", func(t *testing.T) {
		api := &mockMapsAPI{places: ratedPlaces(7)}

		out, err := searchAttractions(context.Background(), testDeps(api), SearchAttractionsArgs{Area: "London"})
		require.NoError(t, err)

		assert.Len(t, out.Results, 5)
		assert.Equal(t, "place-1", out.Results[0].Name)
	})

	t.Run("upstream failure surfaces verbatim", func(t *testing.T) {
		api := &mockMapsAPI{err: errors.NewUpstreamError("places.textsearch", errors.New("maps: REQUEST_DENIED"))}

		_, err := searchAttractions(context.Background(), testDeps(api), SearchAttractionsArgs{Area: "London"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrUpstream))
		assert.Contains(t, err.Error(), "REQUEST_DENIED")
	})
}
