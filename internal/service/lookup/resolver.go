// Package lookup resolves foreign-key ids to human-readable display labels.
//
// Resolution order, first success wins: label cache, live repository
// (batched), most recent prior change record mentioning the id, and finally
// the literal "Unknown". The audit fallback is what keeps labels available
// for hard-deleted rows.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	pglookup "github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/adapter/postgres/lookup"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type liveRepo interface {
	GetLabels(ctx context.Context, entity domain.EntityName, ids []string) (map[string]string, error)
}

type recordStore interface {
	ListByEntity(ctx context.Context, entityName domain.EntityName, entityID string, limit int) ([]domain.ChangeRecord, error)
	LatestBefore(ctx context.Context, entityName domain.EntityName, entityID string, before time.Time) (domain.ChangeRecord, error)
}

type labelCache interface {
	Get(ctx context.Context, entity domain.EntityName, id string) (string, bool)
	Set(ctx context.Context, entity domain.EntityName, id, label string)
}

// Resolver is the fallback chain that turns a foreign-key id into a display
// label, even after the referenced row is gone. Safe for concurrent use.
type Resolver struct {
	live      liveRepo
	records   recordStore
	cache     labelCache // nil when caching is disabled
	scanLimit int
	log       *slog.Logger

	mu      sync.Mutex
	loaders map[domain.EntityName]*dataloader.Loader[string, string]
}

// NewResolver creates a Resolver. cache may be nil.
func NewResolver(log *slog.Logger, live liveRepo, records recordStore, cache labelCache, scanLimit int) *Resolver {
	return &Resolver{
		live:      live,
		records:   records,
		cache:     cache,
		scanLimit: scanLimit,
		log:       log.With("service", "lookup"),
		loaders:   make(map[domain.EntityName]*dataloader.Loader[string, string]),
	}
}

// Resolve returns the display label for one id. It never fails: exhausted
// fallbacks degrade to the literal "Unknown" so one unresolvable id cannot
// break a whole audit-trail render.
func (r *Resolver) Resolve(ctx context.Context, entity domain.EntityName, id string) string {
	if id == "" {
		return domain.UnknownLabel
	}

	if r.cache != nil {
		if label, ok := r.cache.Get(ctx, entity, id); ok {
			return label
		}
	}

	label, err := r.loader(entity).Load(ctx, id)()
	if err == nil {
		r.cacheSet(ctx, entity, id, label)
		return label
	}
	if !errors.Is(err, domain.ErrNotFound) {
		r.log.WarnContext(ctx, "live label lookup failed",
			slog.String("entity", entity.String()),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
	}

	if label, ok := r.auditFallback(ctx, entity, id); ok {
		r.cacheSet(ctx, entity, id, label)
		return label
	}

	return domain.UnknownLabel
}

// ResolveAll resolves many ids of one entity type in bounded round trips.
// Every requested id is present in the result, unresolvable ones as "Unknown".
func (r *Resolver) ResolveAll(ctx context.Context, entity domain.EntityName, ids []string) map[string]string {
	labels := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return labels
	}

	loader := r.loader(entity)
	thunks := make(map[string]dataloader.Thunk[string], len(ids))
	for _, id := range ids {
		if id == "" {
			labels[id] = domain.UnknownLabel
			continue
		}
		if r.cache != nil {
			if label, ok := r.cache.Get(ctx, entity, id); ok {
				labels[id] = label
				continue
			}
		}
		thunks[id] = loader.Load(ctx, id)
	}

	for id, thunk := range thunks {
		label, err := thunk()
		if err == nil {
			r.cacheSet(ctx, entity, id, label)
			labels[id] = label
			continue
		}
		if fallback, ok := r.auditFallback(ctx, entity, id); ok {
			r.cacheSet(ctx, entity, id, fallback)
			labels[id] = fallback
			continue
		}
		labels[id] = domain.UnknownLabel
	}

	return labels
}

// ResolveBefore returns the label an id had before the given time: live
// lookup first (lookup-table labels rarely change), then the most recent
// change record older than the cutoff, then "Unknown". Used for the old
// side of modified scalar foreign keys.
func (r *Resolver) ResolveBefore(ctx context.Context, entity domain.EntityName, id string, before time.Time) string {
	if id == "" {
		return domain.UnknownLabel
	}

	if label, err := r.loader(entity).Load(ctx, id)(); err == nil {
		return label
	}

	rec, err := r.records.LatestBefore(ctx, entity, id, before)
	if err == nil {
		if label, ok := extractLabel(rec, entity); ok {
			return label
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		r.log.WarnContext(ctx, "historical label lookup failed",
			slog.String("entity", entity.String()),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
	}

	return domain.UnknownLabel
}

// auditFallback digs the label out of the most recent change record that
// mentioned the id, preferring records that carry new values.
func (r *Resolver) auditFallback(ctx context.Context, entity domain.EntityName, id string) (string, bool) {
	history, err := r.records.ListByEntity(ctx, entity, id, r.scanLimit)
	if err != nil {
		r.log.WarnContext(ctx, "audit label fallback failed",
			slog.String("entity", entity.String()),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return "", false
	}

	for _, rec := range history {
		if rec.NewValues == nil {
			continue
		}
		if label, ok := extractLabel(rec, entity); ok {
			return label, true
		}
	}
	// Deleted records still carry the last known values.
	for _, rec := range history {
		if rec.NewValues != nil {
			continue
		}
		if label, ok := extractLabel(rec, entity); ok {
			return label, true
		}
	}

	return "", false
}

// extractLabel pulls the best display-like value out of a record payload:
// the entity's configured display property, else any property ending in
// "Name" (smallest key wins, for determinism).
func extractLabel(rec domain.ChangeRecord, entity domain.EntityName) (string, bool) {
	values := rec.NewValues
	if values == nil {
		values = rec.OldValues
	}
	if len(values) == 0 {
		return "", false
	}

	if prop, ok := pglookup.DisplayProperty(entity); ok {
		if label, ok := values[prop]; ok && usable(label) {
			return label, true
		}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.HasSuffix(k, "Name") && usable(values[k]) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", false
	}
	sort.Strings(keys)
	return values[keys[0]], true
}

func usable(label string) bool {
	return label != "" && label != domain.UnknownLabel
}

func (r *Resolver) cacheSet(ctx context.Context, entity domain.EntityName, id, label string) {
	if r.cache != nil {
		r.cache.Set(ctx, entity, id, label)
	}
}

// loader returns the per-entity batched loader, creating it on first use.
// Loaders batch concurrent loads into one multi-key repository call; the
// internal memoization is cleared after every batch so long-lived resolvers
// never serve stale labels from the loader itself.
func (r *Resolver) loader(entity domain.EntityName) *dataloader.Loader[string, string] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loaders[entity]; ok {
		return l
	}

	l := dataloader.NewBatchedLoader(
		r.newBatchFn(entity),
		dataloader.WithWait[string, string](wait),
		dataloader.WithBatchCapacity[string, string](maxBatch),
		dataloader.WithClearCacheOnBatch[string, string](),
	)
	r.loaders[entity] = l
	return l
}

func (r *Resolver) newBatchFn(entity domain.EntityName) dataloader.BatchFunc[string, string] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[string] {
		labels, err := r.live.GetLabels(ctx, entity, keys)
		if err != nil {
			results := make([]*dataloader.Result[string], len(keys))
			for i := range keys {
				results[i] = &dataloader.Result[string]{Error: err}
			}
			return results
		}

		results := make([]*dataloader.Result[string], len(keys))
		for i, key := range keys {
			if label, ok := labels[key]; ok {
				results[i] = &dataloader.Result[string]{Data: label}
			} else {
				results[i] = &dataloader.Result[string]{
					Error: fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound),
				}
			}
		}
		return results
	}
}
