package weather

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/cache"
)

type remoteResult struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1,omitempty"`
}

func newTestGeocoder(t *testing.T, api Requester, store cache.Store) *Geocoder {
	t.Helper()
	g, err := NewGeocoder(api, store, "http://geo.test", nil, nil)
	require.NoError(t, err)
	return g
}

func TestSearchLocationShortQuery(t *testing.T) {
	api := newFakeRequester()
	g := newTestGeocoder(t, api, cache.NewMemoryStore())

	for _, q := range []string{"", " ", "T", " á "} {
		res, err := g.SearchLocation(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, res, q)
	}
	assert.Equal(t, 0, api.count("geocoding"))
}

func TestSearchLocationMergesLocalAndRemote(t *testing.T) {
	api := newFakeRequester()
	api.on("geocoding", func(params url.Values) (any, error) {
		assert.Equal(t, "10", params.Get("count"))
		assert.Equal(t, "es", params.Get("language"))
		return map[string]any{"results": []remoteResult{
			{ID: 1, Name: "Tulum", Latitude: 20.2115, Longitude: -87.4654, Country: "México", Admin1: "Quintana Roo"},
			{ID: 2, Name: "Tulum Ruins", Latitude: 40.0, Longitude: 3.0, Country: "España"},
			{ID: 3, Name: "Tulum Beach", Latitude: 20.15, Longitude: -87.45, Country: "México", Admin1: "Quintana Roo"},
		}}, nil
	})
	g := newTestGeocoder(t, api, cache.NewMemoryStore())

	res, err := g.SearchLocation(context.Background(), "TÚLUM")
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, int64(900006), res[0].ID, "local entry wins the near-duplicate")
	assert.Equal(t, int64(3), res[1].ID)
	assert.Equal(t, "España", res[2].Country, "non-Mexican results sort last")
}

func TestSearchLocationQueryContainingLocalName(t *testing.T) {
	g := newTestGeocoder(t, newFakeRequester(), nil)

	res, err := g.SearchLocation(context.Background(), "playa zipolite oaxaca")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Zipolite", res[0].Name)
}

func TestSearchLocationRemoteFailureDegrades(t *testing.T) {
	api := newFakeRequester()
	api.on("geocoding", func(url.Values) (any, error) { return nil, fmt.Errorf("boom") })
	g := newTestGeocoder(t, api, cache.NewMemoryStore())

	res, err := g.SearchLocation(context.Background(), "holbox")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Holbox", res[0].Name)

	res, err = g.SearchLocation(context.Background(), "zzzz-nowhere")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestSearchLocationCapsAndCaches(t *testing.T) {
	api := newFakeRequester()
	api.on("geocoding", func(url.Values) (any, error) {
		results := make([]remoteResult, 10)
		for i := range results {
			results[i] = remoteResult{ID: int64(i + 1), Name: fmt.Sprintf("San José %d", i), Latitude: float64(i), Longitude: float64(i), Country: "Costa Rica"}
		}
		results[9].Country = "Mexico"
		return map[string]any{"results": results}, nil
	})
	store := cache.NewMemoryStore()
	g := newTestGeocoder(t, api, store)

	res, err := g.SearchLocation(context.Background(), "San José")
	require.NoError(t, err)
	require.Len(t, res, 6)
	assert.Equal(t, int64(10), res[0].ID)

	var stored []domain.GeoLocation
	found, err := store.Get(context.Background(), "geo_v4:san jose", &stored)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, stored, 6)

	_, err = g.SearchLocation(context.Background(), "san jose")
	require.NoError(t, err)
	assert.Equal(t, 1, api.count("geocoding"), "second lookup is served from the LRU")

	res[0].Name = "mutated"
	again, _ := g.SearchLocation(context.Background(), "San José")
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestSearchLocationSharedCacheHit(t *testing.T) {
	store := cache.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "geo_v4:merida", []domain.GeoLocation{{ID: 7, Name: "Mérida", Country: "México"}}, 0))

	api := newFakeRequester()
	g := newTestGeocoder(t, api, store)

	res, err := g.SearchLocation(context.Background(), "Mérida")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(7), res[0].ID)
	assert.Equal(t, 0, api.count("geocoding"))
}

func TestSearchLocationConcurrentLookups(t *testing.T) {
	api := newFakeRequester()
	api.on("geocoding", func(url.Values) (any, error) {
		return map[string]any{"results": []remoteResult{{ID: 1, Name: "Valladolid", Latitude: 20.69, Longitude: -88.2, Country: "México"}}}, nil
	})
	g := newTestGeocoder(t, api, cache.NewMemoryStore())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := g.SearchLocation(context.Background(), "Valladolid")
			assert.NoError(t, err)
			assert.Len(t, res, 1)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, api.count("geocoding"), 16)
	assert.GreaterOrEqual(t, api.count("geocoding"), 1)
}

func TestDedupeLocations(t *testing.T) {
	in := []domain.GeoLocation{
		{Name: "A", Latitude: 10, Longitude: 10, Country: "X"},
		{Name: "B", Latitude: 10.005, Longitude: 10.009, Country: "X"},
		{Name: "A", Latitude: 50, Longitude: 50, Country: "X"},
		{Name: "A", Latitude: 60, Longitude: 60, Country: "Y"},
	}
	out := dedupeLocations(in)
	require.Len(t, out, 2)
	assert.Equal(t, "Y", out[1].Country)
}
