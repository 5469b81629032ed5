package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/config"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = zerolog.Nop()

func newTestClient(t *testing.T, baseURL string, sessions *session.MemorySessionRepository) *Client {
	t.Helper()
	cfg := config.APIConfig{BaseURL: baseURL, TimeoutSeconds: 5}
	return New(cfg, sessions, &testLogger)
}

func TestBuildHeadersWithoutToken(t *testing.T) {
	sessions := session.NewMemorySessionRepository(time.Hour)
	c := newTestClient(t, "http://unused", sessions)

	headers := c.BuildHeaders(context.Background())
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Empty(t, headers.Get("Authorization"))
	assert.Len(t, headers, 1)
}

func TestBuildHeadersWithToken(t *testing.T) {
	sessions := session.NewMemorySessionRepository(time.Hour)
	require.NoError(t, sessions.SetSession(context.Background(), &models.Session{Token: "abc"}))
	c := newTestClient(t, "http://unused", sessions)

	headers := c.BuildHeaders(context.Background())
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, "Bearer abc", headers.Get("Authorization"))
}

func TestBearerAndRequestIDOnWire(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	sessions := session.NewMemorySessionRepository(time.Hour)
	require.NoError(t, sessions.SetSession(context.Background(), &models.Session{Token: "tok123"}))
	c := newTestClient(t, srv.URL, sessions)

	_, err := c.ListRooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestAPIErrorUsesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Phòng đã được thuê"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, session.NewMemorySessionRepository(time.Hour))

	err := c.ApproveBooking(context.Background(), "b1")
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Phòng đã được thuê", apiErr.Message)
}

func TestAPIErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, session.NewMemorySessionRepository(time.Hour))

	err := c.CancelContract(context.Background(), "c1")
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "http 500", apiErr.Message)
	assert.False(t, IsTransient(err))
}

func TestGetUsesRedisCache(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[{"id":"room202","price":3000000}]`))
	}))
	defer srv.Close()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	c := newTestClient(t, srv.URL, session.NewMemorySessionRepository(time.Hour))
	c.UseRedisCache(rdb, time.Minute)

	ctx := context.Background()
	rooms, err := c.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	rooms, err = c.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "room202", rooms[0].ID)

	assert.Equal(t, int64(1), hits.Load(), "second list should be served from cache")
}

func TestMutationInvalidatesCache(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			hits.Add(1)
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	c := newTestClient(t, srv.URL, session.NewMemorySessionRepository(time.Hour))
	c.UseRedisCache(rdb, time.Minute)

	ctx := context.Background()
	_, err = c.ListContracts(ctx)
	require.NoError(t, err)
	require.NoError(t, c.CancelContract(ctx, "c1"))

	_, err = c.ListContracts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load(), "cancel must drop the cached contract list")
}

func TestCacheIsScopedToSession(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.Header.Get("Authorization") {
		case "Bearer token-a":
			w.Write([]byte(`[{"id":"contract-of-a"}]`))
		case "Bearer token-b":
			w.Write([]byte(`[{"id":"contract-of-b"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	sessions := session.NewMemorySessionRepository(time.Hour)
	c := newTestClient(t, srv.URL, sessions)
	c.UseRedisCache(rdb, time.Minute)
	ctx := context.Background()

	require.NoError(t, sessions.SetSession(ctx, &models.Session{Token: "token-a"}))
	contracts, err := c.ListTenantContracts(ctx)
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, "contract-of-a", contracts[0].ID)

	// Same path, different session: the first user's cache entry must not
	// leak here.
	require.NoError(t, sessions.SetSession(ctx, &models.Session{Token: "token-b"}))
	contracts, err = c.ListTenantContracts(ctx)
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, "contract-of-b", contracts[0].ID)
	assert.Equal(t, int64(2), hits.Load())

	// Back to the first session, still served from its own cache entry.
	require.NoError(t, sessions.SetSession(ctx, &models.Session{Token: "token-a"}))
	contracts, err = c.ListTenantContracts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "contract-of-a", contracts[0].ID)
	assert.Equal(t, int64(2), hits.Load())
}

func TestGetRetriesTransportFailureOnce(t *testing.T) {
	// Point at a closed port: both attempts fail, but the transport error
	// class is preserved.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(t, srv.URL, session.NewMemorySessionRepository(time.Hour))
	c.retry = RetryPolicy{MaxRetries: 1, InitialDelay: time.Millisecond}

	_, err := c.ListRooms(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestRetryPolicyNextDelay(t *testing.T) {
	p := RetryPolicy{MaxRetries: 3, InitialDelay: time.Second, MaxDelay: 3 * time.Second, BackoffFactor: 2}
	assert.Equal(t, time.Second, p.NextDelay(1))
	assert.Equal(t, 2*time.Second, p.NextDelay(2))
	assert.Equal(t, 3*time.Second, p.NextDelay(3)) // clamped
	assert.Equal(t, time.Second, p.NextDelay(0))   // clamped to first attempt
}
