package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/cache"
)

func TestDedupeCitations(t *testing.T) {
	assert.Nil(t, DedupeCitations(nil))

	got := DedupeCitations([]domain.Citation{
		{Title: "", URI: "https://a.example"},
		{Title: "Source", URI: "https://a.example"},
		{Title: "A", URI: "https://a.example"},
		{Title: "B", URI: ""},
		{Title: "A", URI: "https://a.example"},
	})
	assert.Equal(t, []domain.Citation{
		{Title: "Source", URI: "https://a.example"},
		{Title: "A", URI: "https://a.example"},
	}, got)
}

func TestNeedsTitle(t *testing.T) {
	assert.True(t, needsTitle(""))
	assert.True(t, needsTitle("Source"))
	assert.True(t, needsTitle("lonelyplanet.com"))
	assert.False(t, needsTitle("Japan Visa Guide"))
	assert.False(t, needsTitle("Wikipedia"))
}

func TestTitleResolver(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		switch r.URL.Path {
		case "/og":
			fmt.Fprint(w, `<html><head><meta property="og:title" content="Safari en Zimanga"><title>ignored</title></head></html>`)
		case "/plain":
			fmt.Fprint(w, "<html><head><title>\n  Kioto   en otoño \n</title></head></html>")
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	store := cache.NewMemoryStore()
	r := NewTitleResolver(srv.Client(), store, zap.NewNop())

	in := []domain.Citation{
		{Title: "Source", URI: srv.URL + "/og"},
		{Title: "example.com", URI: srv.URL + "/plain"},
		{Title: "Source", URI: srv.URL + "/missing"},
		{Title: "Keep Me", URI: srv.URL + "/og"},
	}
	got := r.Resolve(context.Background(), in)

	assert.Equal(t, "Safari en Zimanga", got[0].Title)
	assert.Equal(t, "Kioto en otoño", got[1].Title)
	assert.Equal(t, "Source", got[2].Title)
	assert.Equal(t, "Keep Me", got[3].Title)
	assert.Equal(t, "Source", in[0].Title, "input is not mutated")
	assert.Equal(t, int32(3), hits.Load())

	again := r.Resolve(context.Background(), in[:2])
	assert.Equal(t, "Safari en Zimanga", again[0].Title)
	assert.Equal(t, int32(3), hits.Load(), "resolved titles come from the cache")
}

func TestTitleResolverFetchLimit(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<title>T</title>")
	}))
	defer srv.Close()

	r := NewTitleResolver(srv.Client(), nil, zap.NewNop())
	r.maxFetch = 2

	in := make([]domain.Citation, 4)
	for i := range in {
		in[i] = domain.Citation{Title: "Source", URI: fmt.Sprintf("%s/%d", srv.URL, i)}
	}
	got := r.Resolve(context.Background(), in)

	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, "T", got[0].Title)
	assert.Equal(t, "T", got[1].Title)
	assert.Equal(t, "Source", got[3].Title)
}

func TestNilTitleResolver(t *testing.T) {
	var r *TitleResolver
	in := []domain.Citation{{Title: "Source", URI: "https://a.example"}}
	assert.Equal(t, in, r.Resolve(context.Background(), in))
}
