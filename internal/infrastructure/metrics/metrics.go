package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	donationsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "donations_created_total",
			Help: "Total donations submitted, by donation type.",
		},
		[]string{"type"},
	)

	donationsCollectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "donations_collected_total",
			Help: "Total donations collected, by donation type and collector role.",
		},
		[]string{"type", "role"},
	)
)

// DonationCreated records a submitted donation.
func DonationCreated(donationType string) {
	donationsCreatedTotal.WithLabelValues(donationType).Inc()
}

// DonationCollected records a collected donation.
func DonationCollected(donationType, role string) {
	donationsCollectedTotal.WithLabelValues(donationType, role).Inc()
}

// Instrument is a gin middleware measuring request counts and latency.
// The route template is used as the path label so /donations/:id/collect stays
// a single series.
func Instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
