package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	// Register should be safe to call multiple times
	Register()
	Register()

	assert.NotPanics(t, func() {
		IncAPIRequest("contracts", "2xx")
		IncCacheHit("rooms")
	})
}

func TestCountersServedOverHTTP(t *testing.T) {
	Register()
	IncAPIRequest("bookings", "2xx")
	IncCacheHit("contracts")

	// The CLI serves these through the same default-registry handler.
	srv := httptest.NewServer(promhttp.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "phongtro_client_api_requests_total")
	assert.Contains(t, string(body), "phongtro_client_cache_hits_total")
	assert.Contains(t, string(body), `area="bookings"`)
}
