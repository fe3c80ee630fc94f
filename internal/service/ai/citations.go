package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/constants"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/cache"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/util"
)

const (
	DefaultCitationTitle = "Source"
	maxTitleRunes        = 120
	maxPageBytes         = 512 << 10
)

// DedupeCitations fills empty titles with DefaultCitationTitle and drops
// repeated (title, uri) pairs, keeping first-seen order.
func DedupeCitations(in []domain.Citation) []domain.Citation {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[domain.Citation]struct{}, len(in))
	out := make([]domain.Citation, 0, len(in))
	for _, c := range in {
		if c.URI == "" {
			continue
		}
		if strings.TrimSpace(c.Title) == "" {
			c.Title = DefaultCitationTitle
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// TitleResolver replaces placeholder citation titles with the page title.
// It is best effort: failures keep the original title.
type TitleResolver struct {
	client   *http.Client
	store    cache.Store
	logger   *zap.Logger
	maxFetch int
	timeout  time.Duration
}

func NewTitleResolver(client *http.Client, store cache.Store, logger *zap.Logger) *TitleResolver {
	if client == nil {
		client = &http.Client{Timeout: constants.APIConfig.CitationTimeout}
	}
	return &TitleResolver{
		client:   client,
		store:    store,
		logger:   logger,
		maxFetch: constants.AIInputLimits.CitationFetchMax,
		timeout:  constants.APIConfig.CitationTimeout,
	}
}

// Resolve returns a copy of citations with generic titles looked up. At
// most maxFetch pages are fetched per call.
func (r *TitleResolver) Resolve(ctx context.Context, citations []domain.Citation) []domain.Citation {
	out := append([]domain.Citation(nil), citations...)
	if r == nil || len(out) == 0 {
		return out
	}

	var pending []int
	for i, c := range out {
		if needsTitle(c.Title) && len(pending) < r.maxFetch {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return out
	}

	p := pool.New().WithMaxGoroutines(len(pending))
	for _, idx := range pending {
		p.Go(func() {
			if title := r.lookup(ctx, out[idx].URI); title != "" {
				out[idx].Title = title
			}
		})
	}
	p.Wait()

	return out
}

func (r *TitleResolver) lookup(ctx context.Context, uri string) string {
	key := constants.CacheKeys.CitationPrefix + uri
	if r.store != nil {
		var cached string
		if found, err := r.store.Get(ctx, key, &cached); err == nil && found {
			return cached
		}
	}

	title, err := r.fetchTitle(ctx, uri)
	if err != nil {
		r.logger.Debug("Citation title lookup failed", zap.String("uri", uri), zap.Error(err))
		return ""
	}
	if title == "" {
		return ""
	}

	if r.store != nil {
		if err := r.store.Set(ctx, key, title, constants.CacheTTL.CitationTitle); err != nil {
			r.logger.Warn("Failed to cache citation title", zap.Error(err))
		}
	}
	return title
}

func (r *TitleResolver) fetchTitle(ctx context.Context, uri string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "MetaTravelsBot/1.0")
	req.Header.Set("Accept", "text/html")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "html") {
		return "", fmt.Errorf("unexpected content type %q", ct)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", err
	}

	title, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
	if strings.TrimSpace(title) == "" {
		title = doc.Find("title").First().Text()
	}
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return "", nil
	}
	return util.TruncateString(title, maxTitleRunes), nil
}

// needsTitle matches the placeholder and bare host names ("example.com")
// that grounding chunks often carry instead of a page title.
func needsTitle(title string) bool {
	title = strings.TrimSpace(title)
	if title == "" || title == DefaultCitationTitle {
		return true
	}
	return !strings.ContainsAny(title, " \t") && strings.Contains(title, ".")
}
