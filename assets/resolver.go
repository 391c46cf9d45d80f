package assets

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"sbc/config"
	"sbc/utils/images"
)

// Resolved is a usable visual for one unit.
type Resolved struct {
	Path        string
	Attribution []string
}

// Resolver owns one generation run's asset resolution: fallback query chain,
// read-through cache and coalescing of identical in-flight requests. It is
// safe for concurrent use by unit workers.
type Resolver struct {
	cfg      *config.AssetsConfig
	provider Provider
	cache    *Cache
	flight   singleflight.Group
	log      *zap.Logger
}

// NewResolver wires the resolver for one run. Caller keeps ownership of the
// cache and closes it after the run.
func NewResolver(cfg *config.AssetsConfig, provider Provider, cache *Cache, log *zap.Logger) *Resolver {
	return &Resolver{cfg: cfg, provider: provider, cache: cache, log: log.Named("assets")}
}

// Resolve finds one visual for the unit trying, in order: the primary query
// as authored, the primary query with the style suffix, the topic with the
// style suffix and finally the domain-wide default query. Every failure is
// logged and swallowed - a nil result degrades the slide to text-only.
func (r *Resolver) Resolve(ctx context.Context, primary, topic string) *Resolved {
	for _, query := range r.candidates(primary, topic) {
		if res := r.resolveOne(ctx, query); res != nil {
			return res
		}
		if ctx.Err() != nil {
			return nil
		}
	}
	return nil
}

func (r *Resolver) candidates(primary, topic string) []string {
	var out []string
	add := func(q string) {
		q = strings.TrimSpace(q)
		if q == "" {
			return
		}
		for _, seen := range out {
			if seen == q {
				return
			}
		}
		out = append(out, q)
	}
	add(primary)
	if primary != "" {
		add(primary + " " + r.cfg.Search.StyleSuffix)
	}
	if topic != "" {
		add(topic + " " + r.cfg.Search.StyleSuffix)
	}
	add(r.cfg.Search.DefaultQuery)
	return out
}

// resolveOne serves one candidate query: cache hit, or a single bounded
// search+fetch shared between identical concurrent requests.
func (r *Resolver) resolveOne(ctx context.Context, query string) *Resolved {
	key := Key(r.provider.Name(), query, r.cfg.Search.Orientation)

	if e, ok := r.cache.Lookup(key); ok {
		r.log.Debug("Cache hit", zap.String("query", query), zap.String("key", key))
		return &Resolved{Path: e.Path, Attribution: e.Meta.Attribution}
	}

	v, err, _ := r.flight.Do(key, func() (any, error) {
		// the losing racer of a previous flight may have populated the cache
		if e, ok := r.cache.Lookup(key); ok {
			return &Resolved{Path: e.Path, Attribution: e.Meta.Attribution}, nil
		}
		return r.fetchAndStore(ctx, key, query)
	})
	if err != nil {
		r.log.Debug("Query yielded no asset", zap.String("query", query), zap.Error(err))
		return nil
	}
	return v.(*Resolved)
}

func (r *Resolver) fetchAndStore(ctx context.Context, key, query string) (*Resolved, error) {
	hit, err := r.provider.Search(ctx, query, r.cfg.Search.Orientation)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if hit == nil {
		return nil, fmt.Errorf("no results")
	}

	data, err := r.provider.Fetch(ctx, hit.BinaryURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	asset, err := images.Prepare(data, r.cfg.MaxWidth, r.cfg.JPEGQuality, r.cfg.Resize)
	if err != nil {
		return nil, fmt.Errorf("prepare: %w", err)
	}

	meta := Meta{
		Provider:    r.provider.Name(),
		Query:       query,
		Orientation: r.cfg.Search.Orientation.String(),
		Ext:         asset.Ext,
		SourceURL:   hit.PageURL,
		Attribution: attribution(hit),
	}
	e, err := r.cache.Store(key, asset.Data, meta)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	r.log.Info("Resolved asset", zap.String("query", query), zap.String("key", key))
	return &Resolved{Path: e.Path, Attribution: e.Meta.Attribution}, nil
}

// attribution builds the durable credit lines for speaker notes: title,
// source, author and license when present.
func attribution(hit *Hit) []string {
	var lines []string
	if hit.Title != "" {
		lines = append(lines, "Imagen: "+hit.Title)
	}
	if hit.PageURL != "" {
		lines = append(lines, "Fuente: "+hit.PageURL)
	}
	if hit.Author != "" {
		lines = append(lines, "Autor: "+hit.Author)
	}
	if hit.LicenseURL != "" {
		lines = append(lines, "Licencia: "+hit.LicenseURL)
	}
	return lines
}
