// Package catalog serves the curated travel packages shipped with the binary.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/util"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

//go:embed packages.yaml
var embeddedPackages []byte

var (
	embeddedOnce    sync.Once
	embeddedCatalog *Catalog
	embeddedErr     error
)

// Catalog is immutable after Load; accessors return copies.
type Catalog struct {
	packages []domain.TravelPackage
	bySlug   map[string]int
	search   searchIndex
}

// Embedded returns the catalog compiled into the binary.
func Embedded() (*Catalog, error) {
	embeddedOnce.Do(func() {
		embeddedCatalog, embeddedErr = Load(embeddedPackages)
	})
	return embeddedCatalog, embeddedErr
}

func Load(data []byte) (*Catalog, error) {
	var packages []domain.TravelPackage
	if err := yaml.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("failed to parse package catalog: %w", err)
	}

	c := &Catalog{
		packages: packages,
		bySlug:   make(map[string]int, len(packages)),
		search:   make(searchIndex, len(packages)),
	}
	ids := make(map[string]struct{}, len(packages))
	for i, p := range packages {
		if p.ID == "" || p.Slug == "" {
			return nil, fmt.Errorf("package #%d: id and slug are required", i+1)
		}
		if _, dup := ids[p.ID]; dup {
			return nil, fmt.Errorf("duplicate package id %q", p.ID)
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate package slug %q", p.Slug)
		}
		ids[p.ID] = struct{}{}
		c.bySlug[p.Slug] = i
		c.search[i] = searchText(p)
	}
	return c, nil
}

func (c *Catalog) All() []domain.TravelPackage {
	return append([]domain.TravelPackage(nil), c.packages...)
}

func (c *Catalog) Len() int {
	return len(c.packages)
}

func (c *Catalog) BySlug(slug string) (*domain.TravelPackage, error) {
	idx, ok := c.bySlug[strings.TrimSpace(slug)]
	if !ok {
		return nil, errors.NewNotFoundError("package", slug)
	}
	p := c.packages[idx]
	return &p, nil
}

// Search ranks packages by fuzzy match of query against their titles,
// destinations and type in both languages. Accents and case are ignored.
// An empty query returns the whole catalog.
func (c *Catalog) Search(query string) []domain.TravelPackage {
	q := util.FoldAccents(query)
	if q == "" {
		return c.All()
	}

	matches := fuzzy.FindFrom(q, c.search)
	out := make([]domain.TravelPackage, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.packages[m.Index])
	}
	return out
}

type promptEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
	Price       string `json:"price"`
	Type        string `json:"type"`
}

// PromptSummary is the compact JSON portfolio embedded in the concierge
// system prompt.
func (c *Catalog) PromptSummary(lang domain.Language) (string, error) {
	entries := make([]promptEntry, 0, len(c.packages))
	for _, p := range c.packages {
		entries = append(entries, promptEntry{
			ID:          p.ID,
			Title:       p.Title.Resolve(lang),
			Destination: p.Destination.Resolve(lang),
			Price:       fmt.Sprintf("%d %s", p.Price, p.Currency),
			Type:        p.Type,
		})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type searchIndex []string

func (s searchIndex) String(i int) string { return s[i] }
func (s searchIndex) Len() int            { return len(s) }

func searchText(p domain.TravelPackage) string {
	return util.FoldAccents(strings.Join([]string{
		p.Title.ES, p.Title.EN, p.Destination.ES, p.Destination.EN, p.Type,
	}, " "))
}
