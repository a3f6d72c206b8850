package resolver

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/wordbook/dictionary/internal/word"
	"github.com/wordbook/dictionary/internal/word/cache"
	"github.com/wordbook/dictionary/internal/word/repository"
	"github.com/wordbook/dictionary/pkg/logger"
	"github.com/wordbook/dictionary/pkg/metrics"
)

const (
	// MinQueryLength is the shortest trimmed query that reaches the store.
	MinQueryLength = 2
	// MaxSearchResults caps every search result.
	MaxSearchResults = 50
)

var log = logger.Component("resolver")

// Resolver applies request-shaping rules on top of a Store. It holds no
// per-request state and is safe for concurrent use.
type Resolver struct {
	store repository.Store
	cache cache.SearchCache
	// staleMarks counts invalidations that failed since the cache was last
	// known to be current. While non-zero, cached results are not served.
	staleMarks atomic.Int64
}

type Option func(*Resolver)

// WithSearchCache enables caching of search results.
func WithSearchCache(c cache.SearchCache) Option {
	return func(r *Resolver) { r.cache = c }
}

func New(store repository.Store, opts ...Option) *Resolver {
	r := &Resolver{store: store}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Search returns entries whose word or definitions contain the trimmed query.
// Queries shorter than MinQueryLength, and queries that are not valid UTF-8,
// return an empty result without a store call.
func (r *Resolver) Search(ctx context.Context, query string) ([]*word.WordEntry, error) {
	q := strings.TrimSpace(query)
	if !utf8.ValidString(q) || utf8.RuneCountInString(q) < MinQueryLength {
		observe("search", nil)
		metrics.SearchResults.Observe(0)
		return []*word.WordEntry{}, nil
	}

	populate := false
	var gen int64
	if r.cache != nil && r.cacheCurrent(ctx) {
		cached, g, hit, err := r.cache.Get(ctx, q)
		switch {
		case err != nil:
			// generation unknown: answer from the store without populating
			metrics.SearchCache.WithLabelValues("error").Inc()
			log.Warnf("search cache lookup for %q failed: %v", q, err)
		case hit:
			metrics.SearchCache.WithLabelValues("hit").Inc()
			observe("search", nil)
			metrics.SearchResults.Observe(float64(len(cached)))
			return cached, nil
		default:
			metrics.SearchCache.WithLabelValues("miss").Inc()
			populate, gen = true, g
		}
	}
	return r.searchStore(ctx, q, populate, gen)
}

func (r *Resolver) searchStore(ctx context.Context, q string, populate bool, gen int64) ([]*word.WordEntry, error) {
	entries, err := r.store.FindMatching(ctx, q, MaxSearchResults)
	observe("search", err)
	if err != nil {
		log.Errorf("search %q: %v", q, err)
		return nil, err
	}
	metrics.SearchResults.Observe(float64(len(entries)))
	if populate {
		if err := r.cache.Set(ctx, gen, q, entries); err != nil {
			log.Warnf("search cache store for %q failed: %v", q, err)
		}
	}
	return entries, nil
}

// GetOne returns the entry for id. word.ErrNotFound and word.ErrInvalidID
// are returned unwrapped so callers can tell them apart from storage failures.
func (r *Resolver) GetOne(ctx context.Context, id string) (*word.WordEntry, error) {
	e, err := r.store.GetByID(ctx, id)
	observe("get", err)
	if err != nil {
		logFailure("get", id, err)
		return nil, err
	}
	return e, nil
}

// ListAll returns every entry ordered by word.
func (r *Resolver) ListAll(ctx context.Context) ([]*word.WordEntry, error) {
	entries, err := r.store.ListAll(ctx)
	observe("list", err)
	if err != nil {
		log.Errorf("list: %v", err)
		return nil, err
	}
	return entries, nil
}

// Add validates and stores a new entry.
func (r *Resolver) Add(ctx context.Context, d word.Draft) (*word.WordEntry, error) {
	if err := d.Validate(); err != nil {
		observe("add", err)
		return nil, err
	}
	e, err := r.store.Create(ctx, d)
	observe("add", err)
	if err != nil {
		logFailure("add", d.Word, err)
		return nil, err
	}
	r.invalidate(ctx)
	return e, nil
}

// Update replaces the editable fields of id with d.
func (r *Resolver) Update(ctx context.Context, id string, d word.Draft) (*word.WordEntry, error) {
	e, err := r.store.Update(ctx, id, d)
	observe("update", err)
	if err != nil {
		logFailure("update", id, err)
		return nil, err
	}
	r.invalidate(ctx)
	return e, nil
}

// Remove deletes id and reports whether a record was removed. A missing id is
// not an error.
func (r *Resolver) Remove(ctx context.Context, id string) (bool, error) {
	removed, err := r.store.Delete(ctx, id)
	observe("delete", err)
	if err != nil {
		log.Errorf("delete %s: %v", id, err)
		return false, err
	}
	if removed {
		r.invalidate(ctx)
	}
	return removed, nil
}

// Ping reports whether the underlying store is reachable.
func (r *Resolver) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// invalidate retires every cached search. On failure the cache is marked
// stale so no search serves a result older than the mutation.
func (r *Resolver) invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Invalidate(ctx); err != nil {
		r.staleMarks.Add(1)
		log.Warnf("search cache invalidation failed, bypassing cache until it succeeds: %v", err)
	}
}

// cacheCurrent reports whether cached results may be used. A stale cache is
// repaired by a successful invalidation; a mutation failing in between keeps
// it stale.
func (r *Resolver) cacheCurrent(ctx context.Context) bool {
	marks := r.staleMarks.Load()
	if marks == 0 {
		return true
	}
	if err := r.cache.Invalidate(ctx); err != nil {
		metrics.SearchCache.WithLabelValues("bypass").Inc()
		log.Debugf("search cache still stale: %v", err)
		return false
	}
	if r.staleMarks.CompareAndSwap(marks, 0) {
		log.Infof("search cache invalidated after earlier failure")
	}
	return r.staleMarks.Load() == 0
}

// Outcome classifies err for metrics and for the HTTP layer.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, word.ErrValidation):
		return "invalid"
	case errors.Is(err, word.ErrNotFound):
		return "not_found"
	case errors.Is(err, word.ErrInvalidID):
		return "invalid_id"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "error"
}

func observe(op string, err error) {
	metrics.WordOperations.WithLabelValues(op, Outcome(err)).Inc()
}

// caller errors are expected traffic; only storage failures are logged as errors
func logFailure(op, subject string, err error) {
	if Outcome(err) == "error" {
		log.Errorf("%s %s: %v", op, subject, err)
		return
	}
	log.Debugf("%s %s: %v", op, subject, err)
}
