package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	apiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phongtro_client",
			Name:      "api_requests_total",
			Help:      "Outbound marketplace API requests by area and status class.",
		},
		[]string{"area", "status"},
	)

	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phongtro_client",
			Name:      "cache_hits_total",
			Help:      "Response cache hits by area.",
		},
		[]string{"area"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(apiRequests, cacheHits)
	})
}

// IncAPIRequest increments the request counter for an area and status class
// ("2xx", "4xx", "5xx", "error").
func IncAPIRequest(area, status string) {
	apiRequests.WithLabelValues(area, status).Inc()
}

// IncCacheHit increments the cache hit counter for an area.
func IncCacheHit(area string) {
	cacheHits.WithLabelValues(area).Inc()
}
