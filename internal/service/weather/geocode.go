package weather

import (
	"context"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/constants"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/metrics"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/cache"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/util"
)

// localDestinations are small Mexican beach and countryside towns that the
// public geocoder ranks poorly or misses.
var localDestinations = []domain.GeoLocation{
	{ID: 900001, Name: "Mazunte", Latitude: 15.6639, Longitude: -96.5542, Country: "México", Admin1: "Oaxaca"},
	{ID: 900002, Name: "Zipolite", Latitude: 15.6632, Longitude: -96.5126, Country: "México", Admin1: "Oaxaca"},
	{ID: 900003, Name: "San Agustinillo", Latitude: 15.6675, Longitude: -96.5451, Country: "México", Admin1: "Oaxaca"},
	{ID: 900004, Name: "Puerto Escondido", Latitude: 15.8642, Longitude: -97.0767, Country: "México", Admin1: "Oaxaca"},
	{ID: 900005, Name: "Cocoyoc", Latitude: 18.8742, Longitude: -98.9842, Country: "México", Admin1: "Morelos"},
	{ID: 900006, Name: "Tulum", Latitude: 20.2114, Longitude: -87.4653, Country: "México", Admin1: "Quintana Roo"},
	{ID: 900007, Name: "Sayulita", Latitude: 20.8689, Longitude: -105.4408, Country: "México", Admin1: "Nayarit"},
	{ID: 900008, Name: "Holbox", Latitude: 21.5230, Longitude: -87.3789, Country: "México", Admin1: "Quintana Roo"},
}

type geocodeResponse struct {
	Results []struct {
		ID        int64   `json:"id"`
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

type lruEntry struct {
	locations []domain.GeoLocation
	storedAt  time.Time
}

// Geocoder resolves free-text place names. Lookups go through an
// in-process LRU, then the shared cache, then the remote API; concurrent
// identical lookups share one remote call.
type Geocoder struct {
	api      Requester
	store    cache.Store
	local    *lru.Cache[string, lruEntry]
	group    singleflight.Group
	endpoint string
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

func NewGeocoder(api Requester, store cache.Store, endpoint string, m *metrics.Metrics, logger *zap.Logger) (*Geocoder, error) {
	local, err := lru.New[string, lruEntry](constants.GeocodeConfig.LRUSize)
	if err != nil {
		return nil, err
	}
	if endpoint == "" {
		endpoint = constants.APIConfig.GeocodingURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Geocoder{
		api:      api,
		store:    store,
		local:    local,
		endpoint: endpoint,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// SearchLocation returns at most six candidates, Mexican places first.
// Remote failures degrade to the local list; they never surface as errors.
func (g *Geocoder) SearchLocation(ctx context.Context, query string) ([]domain.GeoLocation, error) {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < constants.GeocodeConfig.MinQueryRunes {
		return []domain.GeoLocation{}, nil
	}
	normalized := util.FoldAccents(query)
	if normalized == "" {
		return []domain.GeoLocation{}, nil
	}
	key := constants.CacheKeys.GeocodePrefix + normalized

	if entry, ok := g.local.Get(key); ok && g.now().Sub(entry.storedAt) < constants.CacheTTL.GeocodeLocal {
		g.metrics.ObserveCache("geocode_lru", true)
		return cloneLocations(entry.locations), nil
	}
	g.metrics.ObserveCache("geocode_lru", false)

	v, err, _ := g.group.Do(key, func() (any, error) {
		return g.lookup(ctx, key, query, normalized)
	})
	if err != nil {
		return nil, err
	}
	return cloneLocations(v.([]domain.GeoLocation)), nil
}

func (g *Geocoder) lookup(ctx context.Context, key, query, normalized string) ([]domain.GeoLocation, error) {
	var cached []domain.GeoLocation
	if g.store != nil {
		found, err := g.store.Get(ctx, key, &cached)
		if err != nil {
			g.logger.Warn("Geocode cache read failed", zap.String("key", key), zap.Error(err))
		}
		g.metrics.ObserveCache("geocode", found && err == nil)
		if found && err == nil && len(cached) > 0 {
			g.remember(key, cached)
			return cached, nil
		}
	}

	results := matchLocal(normalized)
	remote, err := g.fetchRemote(ctx, query)
	if err != nil {
		g.logger.Warn("Remote geocoding failed, using local destinations",
			zap.String("query", query),
			zap.Error(err),
		)
	}
	results = append(results, remote...)
	results = rankLocations(dedupeLocations(results))

	if len(results) > 0 {
		g.remember(key, results)
		if g.store != nil {
			if err := g.store.Set(ctx, key, results, constants.CacheTTL.Geocode); err != nil {
				g.logger.Warn("Geocode cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return results, nil
}

func (g *Geocoder) remember(key string, locations []domain.GeoLocation) {
	g.local.Add(key, lruEntry{locations: locations, storedAt: g.now()})
}

func (g *Geocoder) fetchRemote(ctx context.Context, query string) ([]domain.GeoLocation, error) {
	if g.api == nil {
		return nil, nil
	}
	params := url.Values{}
	params.Set("name", strings.TrimSpace(query))
	params.Set("count", strconv.Itoa(constants.GeocodeConfig.RemoteCount))
	params.Set("language", constants.GeocodeConfig.Language)
	params.Set("format", "json")

	var resp geocodeResponse
	if err := g.api.GetJSON(ctx, "geocoding", g.endpoint, params, &resp); err != nil {
		return nil, err
	}

	locations := make([]domain.GeoLocation, 0, len(resp.Results))
	for _, r := range resp.Results {
		locations = append(locations, domain.GeoLocation{
			ID:        r.ID,
			Name:      r.Name,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Country:   r.Country,
			Admin1:    r.Admin1,
		})
	}
	return locations, nil
}

// matchLocal matches by substring in either direction, so "tulum mexico"
// still finds Tulum.
func matchLocal(normalized string) []domain.GeoLocation {
	var matches []domain.GeoLocation
	for _, loc := range localDestinations {
		name := util.FoldAccents(loc.Name)
		if strings.Contains(name, normalized) || strings.Contains(normalized, name) {
			matches = append(matches, loc)
		}
	}
	return matches
}

// dedupeLocations keeps the first of any pair closer than ~1km on both
// axes or sharing name, region and country.
func dedupeLocations(locations []domain.GeoLocation) []domain.GeoLocation {
	unique := make([]domain.GeoLocation, 0, len(locations))
	for _, cur := range locations {
		duplicate := false
		for _, kept := range unique {
			near := math.Abs(kept.Latitude-cur.Latitude) < constants.GeocodeConfig.DedupeDistance &&
				math.Abs(kept.Longitude-cur.Longitude) < constants.GeocodeConfig.DedupeDistance
			same := kept.Name == cur.Name && kept.Admin1 == cur.Admin1 && kept.Country == cur.Country
			if near || same {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, cur)
		}
	}
	return unique
}

func rankLocations(locations []domain.GeoLocation) []domain.GeoLocation {
	sort.SliceStable(locations, func(i, j int) bool {
		return isMexico(locations[i]) && !isMexico(locations[j])
	})
	if len(locations) > constants.GeocodeConfig.MaxResults {
		locations = locations[:constants.GeocodeConfig.MaxResults]
	}
	return locations
}

func isMexico(loc domain.GeoLocation) bool {
	return strings.Contains(util.FoldAccents(loc.Country), "mex")
}

func cloneLocations(in []domain.GeoLocation) []domain.GeoLocation {
	out := make([]domain.GeoLocation, len(in))
	copy(out, in)
	return out
}
