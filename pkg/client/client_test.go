package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryNormalizesLegacyIDs(t *testing.T) {
	// One record from a legacy deployment, one canonical.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/policies", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"_id": "legacy-1", "name": "Term"},
			{"id": "modern-2", "name": "Health"},
		})
	}))
	defer ts.Close()

	c := New(ts.URL)
	c.SetToken("tok-1")
	repo := NewRepository(c, "/policies")

	records, err := repo.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	legacy, ok := repo.GetByID("legacy-1")
	require.True(t, ok)
	assert.Equal(t, "Term", legacy["name"])
	assert.Equal(t, "legacy-1", legacy.ID())

	modern, ok := repo.GetByID("modern-2")
	require.True(t, ok)
	assert.Equal(t, "Health", modern["name"])
}

func TestRepositoryMutateRefreshesCache(t *testing.T) {
	var created atomic.Bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			created.Store(true)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "Policy created successfully",
				"policy":  map[string]interface{}{"id": "p-1", "name": "Term"},
			})
		default:
			records := []map[string]interface{}{}
			if created.Load() {
				records = append(records, map[string]interface{}{"id": "p-1", "name": "Term"})
			}
			_ = json.NewEncoder(w).Encode(records)
		}
	}))
	defer ts.Close()

	repo := NewRepository(New(ts.URL), "/policies")

	records, err := repo.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	out, err := repo.Mutate(context.Background(), http.MethodPost, "/policies", map[string]string{"name": "Term"})
	require.NoError(t, err)
	assert.Equal(t, "Policy created successfully", out["message"])

	_, ok := repo.GetByID("p-1")
	assert.True(t, ok)
	assert.Len(t, repo.Cached(), 1)
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Policy not found"})
	}))
	defer ts.Close()

	err := New(ts.URL).Do(context.Background(), http.MethodGet, "/policies/nope", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Policy not found", apiErr.Message)
}

func TestLoginStoresToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Login successful",
			"token":   "tok-abc",
			"user":    map[string]string{"name": "A", "email": "a@x.com"},
		})
	}))
	defer ts.Close()

	c := New(ts.URL)
	result, err := c.Login(context.Background(), "a@x.com", "pw12345678")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", result.Token)
	assert.Equal(t, "tok-abc", c.Token())
	assert.Equal(t, "a@x.com", result.User.Email)
}

func TestIntervalRefreshPolls(t *testing.T) {
	var calls atomic.Int32
	refresh := func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := IntervalRefresh{Every: 10 * time.Millisecond}.Start(ctx, refresh)
	defer stop()

	assert.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	stop()
	settled := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, calls.Load(), settled+1)
}

func TestManualRefreshNeverPolls(t *testing.T) {
	var calls atomic.Int32
	stop := ManualRefresh{}.Start(context.Background(), func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})
	defer stop()

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, calls.Load())
}
