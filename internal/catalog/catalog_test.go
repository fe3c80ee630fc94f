package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

func embedded(t *testing.T) *Catalog {
	t.Helper()
	c, err := Embedded()
	require.NoError(t, err)
	return c
}

func TestEmbeddedCatalog(t *testing.T) {
	c := embedded(t)
	require.Equal(t, 2, c.Len())

	zimanga, err := c.BySlug("sudafrica-zimanga-lux")
	require.NoError(t, err)
	assert.Equal(t, "1", zimanga.ID)
	assert.Equal(t, 5850, zimanga.Price)
	assert.Equal(t, domain.LevelLuxury, zimanga.Level)
	assert.Equal(t, 4, zimanga.MinGroupSize)
	assert.Len(t, zimanga.Itinerary, 2)
	assert.Equal(t, 9, zimanga.Itinerary[1].Day)
	assert.True(t, zimanga.Amenities.FlightsDomestic)
	assert.False(t, zimanga.Amenities.Tips)
	assert.Equal(t, "KwaZulu-Natal, South Africa", zimanga.Destination.Resolve(domain.LanguageEN))

	japan, err := c.BySlug("japon-eterno")
	require.NoError(t, err)
	assert.Equal(t, "Cultura", japan.Type)
	assert.Empty(t, japan.Itinerary)
}

func TestBySlugNotFound(t *testing.T) {
	_, err := embedded(t).BySlug("atlantis")
	assert.Equal(t, 404, errors.StatusOf(err))
}

func TestAllReturnsCopy(t *testing.T) {
	c := embedded(t)
	all := c.All()
	all[0].Slug = "changed"

	_, err := c.BySlug("sudafrica-zimanga-lux")
	assert.NoError(t, err)
	assert.Equal(t, "sudafrica-zimanga-lux", c.All()[0].Slug)
}

func TestSearch(t *testing.T) {
	c := embedded(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"sudafrica-zimanga-lux", "japon-eterno"}},
		{"zimanga", []string{"sudafrica-zimanga-lux"}},
		{"JAPÓN", []string{"japon-eterno"}},
		{"south africa", []string{"sudafrica-zimanga-lux"}},
		{"qqxzw", nil},
	}
	for _, tt := range tests {
		var got []string
		for _, p := range c.Search(tt.query) {
			got = append(got, p.Slug)
		}
		assert.Equal(t, tt.want, got, tt.query)
	}
}

func TestPromptSummary(t *testing.T) {
	summary, err := embedded(t).PromptSummary(domain.LanguageEN)
	require.NoError(t, err)

	var entries []map[string]string
	require.NoError(t, json.Unmarshal([]byte(summary), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, map[string]string{
		"id":          "1",
		"title":       "ZIMANGA: Elite Photography",
		"destination": "KwaZulu-Natal, South Africa",
		"price":       "5850 USD",
		"type":        "Safari",
	}, entries[0])
}

func TestLoadRejectsDuplicates(t *testing.T) {
	_, err := Load([]byte("- {id: '1', slug: a}\n- {id: '1', slug: b}\n"))
	assert.ErrorContains(t, err, "duplicate package id")

	_, err = Load([]byte("- {id: '1', slug: a}\n- {id: '2', slug: a}\n"))
	assert.ErrorContains(t, err, "duplicate package slug")

	_, err = Load([]byte("- {id: '1'}\n"))
	assert.ErrorContains(t, err, "required")
}
