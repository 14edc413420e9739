// Package source implements the metadata lookup workflow: resolve a query
// into candidate products, fan out one fetch task per candidate, and collect
// normalized records, with a secondary workflow for cover images.
package source

import (
	"time"

	"github.com/quickwick/rpgvault/internal/catalog"
	"github.com/quickwick/rpgvault/internal/config"
	"github.com/quickwick/rpgvault/internal/metadata"
	"github.com/quickwick/rpgvault/internal/xref"
)

const defaultStagger = 100 * time.Millisecond

// Query is the input to a lookup. A non-empty VendorID takes precedence and
// no search is performed.
type Query struct {
	VendorID string
	Title    string
	Authors  []string
	ISBN     string
}

// Source looks up product metadata for one vendor.
type Source struct {
	client    *catalog.Client
	cache     xref.Store
	options   func() config.Options
	normalize metadata.Normalizer
	stagger   time.Duration
}

// New creates a Source for the given vendor and cross-reference store.
func New(vendor catalog.Vendor, cache xref.Store, opts ...Option) *Source {
	s := &Source{
		client:    catalog.NewClient(vendor),
		cache:     cache,
		options:   config.FromViper,
		normalize: metadata.Clean,
		stagger:   defaultStagger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option is a functional option for configuring a Source.
type Option func(*Source)

// WithClient sets a custom catalog client (tests point it at stub servers).
func WithClient(c *catalog.Client) Option {
	return func(s *Source) {
		if c != nil {
			s.client = c
		}
	}
}

// WithOptions sets the accessor the folding flags are read through at the
// start of every lookup.
func WithOptions(fn func() config.Options) Option {
	return func(s *Source) {
		if fn != nil {
			s.options = fn
		}
	}
}

// WithNormalizer sets the post-processing hook applied to every record
// before it reaches the sink.
func WithNormalizer(n metadata.Normalizer) Option {
	return func(s *Source) {
		if n != nil {
			s.normalize = n
		}
	}
}

// WithStagger sets the delay between fetch task launches.
func WithStagger(d time.Duration) Option {
	return func(s *Source) {
		if d >= 0 {
			s.stagger = d
		}
	}
}

// Vendor returns the vendor profile this source queries.
func (s *Source) Vendor() catalog.Vendor {
	return s.client.Vendor()
}

// BuildDetailURL returns the API detail URL for a product identifier.
func (s *Source) BuildDetailURL(id string) string {
	return s.Vendor().DetailURL(id)
}

// BuildProductURL returns the public storefront page for a product identifier.
func (s *Source) BuildProductURL(id string) string {
	return s.Vendor().ProductPageURL(id)
}

// ResolveURL extracts a product identifier from a detail URL or URL path.
func (s *Source) ResolveURL(url string) (string, bool) {
	return catalog.ExtractProductID(url)
}

// CachedCoverURL resolves a query to a known cover URL using only the
// cross-reference cache: directly by vendor identifier, or via an ISBN that
// maps to one.
func (s *Source) CachedCoverURL(q Query) (string, bool) {
	id := q.VendorID
	if id == "" && q.ISBN != "" {
		id, _ = s.cache.IdentifierForISBN(q.ISBN)
	}
	if id == "" {
		return "", false
	}
	return s.cache.CoverURLForIdentifier(id)
}
