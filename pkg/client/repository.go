package client

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Record is one decoded document. Identifier aliasing (`_id` from older
// deployments vs the canonical `id`) is resolved once, at decode time; code
// above this layer only ever sees `id`.
type Record map[string]interface{}

func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

func normalizeID(r Record) Record {
	if _, ok := r["id"].(string); !ok {
		if legacy, ok := r["_id"].(string); ok {
			r["id"] = legacy
		}
	}
	return r
}

// Repository caches one collection (`/policies` or `/nominees`) fetched from
// the service. Refreshing is driven by the injected RefreshPolicy, never by
// hidden global state.
type Repository struct {
	client *Client
	path   string

	mu      sync.RWMutex
	records []Record
	byID    map[string]Record
}

func NewRepository(c *Client, path string) *Repository {
	return &Repository{
		client: c,
		path:   path,
		byID:   map[string]Record{},
	}
}

// FetchAll retrieves the collection and replaces the local cache.
func (r *Repository) FetchAll(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := r.client.Do(ctx, http.MethodGet, r.path, nil, &records); err != nil {
		return nil, err
	}

	byID := make(map[string]Record, len(records))
	for i, rec := range records {
		records[i] = normalizeID(rec)
		if id := records[i].ID(); id != "" {
			byID[id] = records[i]
		}
	}

	r.mu.Lock()
	r.records = records
	r.byID = byID
	r.mu.Unlock()

	return records, nil
}

// GetByID answers from the cache; it never triggers a network call.
func (r *Repository) GetByID(id string) (Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	return rec, ok
}

func (r *Repository) Cached() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Mutate sends a write and refreshes the cache from the server afterwards,
// rather than patching local state optimistically.
func (r *Repository) Mutate(ctx context.Context, method, path string, body interface{}) (Record, error) {
	var out Record
	if err := r.client.Do(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	if _, err := r.FetchAll(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// RefreshPolicy decides when a repository re-fetches. Implementations run
// until the returned stop function is called or the context ends.
type RefreshPolicy interface {
	Start(ctx context.Context, refresh func(context.Context) error) (stop func())
}

// IntervalRefresh re-fetches on a fixed period.
type IntervalRefresh struct {
	Every time.Duration
}

func (p IntervalRefresh) Start(ctx context.Context, refresh func(context.Context) error) func() {
	done := make(chan struct{})
	var once sync.Once
	stop := func() { once.Do(func() { close(done) }) }

	go func() {
		ticker := time.NewTicker(p.Every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-ticker.C:
				_ = refresh(ctx)
			}
		}
	}()

	return stop
}

// ManualRefresh never refreshes on its own; callers invoke FetchAll when they
// want fresh data.
type ManualRefresh struct{}

func (ManualRefresh) Start(ctx context.Context, refresh func(context.Context) error) func() {
	return func() {}
}
