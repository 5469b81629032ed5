// Package api is the typed client for the PhongTro marketplace REST API.
// It owns the outbound HTTP concerns: bearer auth from the session, request
// ids, timeouts, a client-side rate limiter and an optional redis cache for
// GET responses. All business rules stay on the backend.
package api

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/config"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/domain"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   domain.SessionRepository
	limiter    *rate.Limiter
	logger     *zerolog.Logger

	redis    *redis.Client
	cacheTTL time.Duration

	retry RetryPolicy
}

// New constructs a client from config. The session repository supplies the
// bearer token per request; a request never caches it.
func New(cfg config.APIConfig, sessions domain.SessionRepository, logger *zerolog.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.RPS > 0 {
		burst := cfg.RateLimit.Burst
		if burst <= 0 {
			burst = 5
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), burst)
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		sessions:   sessions,
		limiter:    limiter,
		logger:     logger,
		retry:      RetryPolicy{MaxRetries: 1, InitialDelay: 200 * time.Millisecond},
	}
}

// UseRedisCache configures optional caching for GET endpoints.
func (c *Client) UseRedisCache(redisClient *redis.Client, ttl time.Duration) {
	c.redis = redisClient
	c.cacheTTL = ttl
}

// BuildHeaders returns the headers attached to every outbound request:
// Content-Type always, Authorization only when a token is stored.
func (c *Client) BuildHeaders(ctx context.Context) http.Header {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	if c.sessions != nil {
		session, err := c.sessions.GetSession(ctx)
		if err == nil && session != nil && session.Token != "" {
			headers.Set("Authorization", "Bearer "+session.Token)
		}
	}

	return headers
}

func (c *Client) readCache(ctx context.Context, area, key string, out any) bool {
	if c.redis == nil || c.cacheTTL <= 0 {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	metrics.IncCacheHit(area)
	return true
}

func (c *Client) writeCache(ctx context.Context, key string, val any) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key, data, c.cacheTTL).Err()
}

// cacheScope namespaces cache keys by the current bearer token. Endpoints
// like /contracts/tenant return data scoped to the token, so entries cached
// under one session must never be served to another.
func (c *Client) cacheScope(ctx context.Context) string {
	if c.sessions != nil {
		session, err := c.sessions.GetSession(ctx)
		if err == nil && session != nil && session.Token != "" {
			sum := sha256.Sum256([]byte(session.Token))
			return hex.EncodeToString(sum[:8])
		}
	}
	return "anon"
}

func cacheKey(scope, path string) string {
	return "phongtro:cache:" + scope + ":" + path
}

// doGet fetches path, serving from the redis cache when configured. One
// retry on transport failure; never on HTTP errors.
func (c *Client) doGet(ctx context.Context, area, path string, out any) error {
	key := cacheKey(c.cacheScope(ctx), path)
	if out != nil && c.readCache(ctx, area, key, out) {
		return nil
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		lastErr = c.doJSON(ctx, area, http.MethodGet, path, nil, out)
		if lastErr == nil {
			if out != nil {
				c.writeCache(ctx, key, out)
			}
			return nil
		}
		if !IsTransient(lastErr) || attempt >= c.retry.MaxRetries {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retry.NextDelay(attempt + 1)):
		}
	}
}

// doJSON performs one request with a JSON body and decodes a JSON response
// into out when non-nil. Mutating calls go through here exactly once.
func (c *Client) doJSON(ctx context.Context, area, method, path string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	for name, values := range c.BuildHeaders(ctx) {
		for _, v := range values {
			req.Header.Set(name, v)
		}
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.IncAPIRequest(area, "error")
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("api request failed")
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	metrics.IncAPIRequest(area, statusClass(resp.StatusCode))
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("dur", time.Since(start)).
		Str("request_id", requestID).
		Msg("api request")

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusClass(code int) string {
	switch {
	case code < 300:
		return "2xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// invalidate clears cached GET responses for the given paths after a
// mutating call, so the follow-up re-fetch reflects server truth.
func (c *Client) invalidate(ctx context.Context, paths ...string) {
	if c.redis == nil {
		return
	}
	scope := c.cacheScope(ctx)
	for _, p := range paths {
		_ = c.redis.Del(ctx, cacheKey(scope, p)).Err()
	}
}

func (c *Client) doPost(ctx context.Context, area, path string, body, out any) error {
	return c.doJSON(ctx, area, http.MethodPost, path, body, out)
}

func (c *Client) doPut(ctx context.Context, area, path string, body, out any) error {
	return c.doJSON(ctx, area, http.MethodPut, path, body, out)
}

func (c *Client) doPatch(ctx context.Context, area, path string, body, out any) error {
	return c.doJSON(ctx, area, http.MethodPatch, path, body, out)
}

func (c *Client) doDelete(ctx context.Context, area, path string) error {
	return c.doJSON(ctx, area, http.MethodDelete, path, nil, nil)
}
