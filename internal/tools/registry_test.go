package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waypoint/internal/tools/shared"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, RegisterAll(registry, shared.Deps{}))

	t.Run("Get", func(t *testing.T) {
		tl, ok := registry.Get("search_restaurants")
		require.True(t, ok, "search_restaurants should be in registry")
		assert.Equal(t, "search_restaurants", tl.Name())
		assert.NotEmpty(t, tl.Description())
		assert.False(t, tl.IsLongRunning())

		_, ok = registry.Get("unknown_tool")
		assert.False(t, ok, "unknown tool should not be found")
	})

	t.Run("GetMetadata", func(t *testing.T) {
		meta, ok := registry.GetMetadata("get_directions")
		require.True(t, ok)
		assert.Equal(t, "get_directions", meta.Name)
		assert.Equal(t, CategoryRouting, meta.Category)

		_, ok = registry.GetMetadata("unknown_tool")
		assert.False(t, ok)
	})

	t.Run("List", func(t *testing.T) {
		names := registry.List()
		assert.Equal(t, []string{
			"get_directions",
			"get_location_info",
			"reverse_geocode",
			"search_attractions",
			"search_hotels",
			"search_nearby",
			"search_restaurants",
		}, names)
	})

	t.Run("ListByCategory", func(t *testing.T) {
		assert.Equal(t, []string{
			"search_attractions",
			"search_hotels",
			"search_nearby",
			"search_restaurants",
		}, registry.ListByCategory(CategoryPlaces))

		assert.Equal(t, []string{"get_directions"}, registry.ListByCategory(CategoryRouting))
		assert.Equal(t, []string{"get_location_info", "reverse_geocode"}, registry.ListByCategory(CategoryGeo))
		assert.Empty(t, registry.ListByCategory("weather"))
	})

	t.Run("Tools", func(t *testing.T) {
		list := registry.Tools()
		require.Len(t, list, len(Definitions()))
		// Ordered by name for deterministic agent assembly.
		assert.Equal(t, "get_directions", list[0].Name())
		assert.Equal(t, "search_restaurants", list[len(list)-1].Name())
	})
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	registry := NewRegistry()
	mock := &mockToolImpl{name: "probe"}

	registry.Register(Definition{Name: "probe", Category: CategoryGeo}, mock)

	got, ok := registry.Get("probe")
	require.True(t, ok)
	assert.Equal(t, mock, got)

	replacement := &mockToolImpl{name: "probe"}
	registry.Register(Definition{Name: "probe", Category: CategoryPlaces}, replacement)

	got, ok = registry.Get("probe")
	require.True(t, ok)
	assert.Equal(t, replacement, got)

	meta, ok := registry.GetMetadata("probe")
	require.True(t, ok)
	assert.Equal(t, CategoryPlaces, meta.Category)
}

// mockToolImpl is a minimal implementation of tool.Tool for testing
type mockToolImpl struct {
	name string
}

func (m *mockToolImpl) Name() string        { return m.name }
func (m *mockToolImpl) Description() string { return "Test tool" }
func (m *mockToolImpl) IsLongRunning() bool { return false }
