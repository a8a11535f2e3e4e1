package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/clubledger/backend/internal/httputil"
	"github.com/clubledger/backend/internal/ledger"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(httputil.ContextURL, url.String())
		c.Next()
	}
}

// RateLimitMiddleware limits the requests per client IP.
func RateLimitMiddleware(l *limiter.Limiter) gin.HandlerFunc {
	return limitergin.NewMiddleware(l,
		limitergin.WithLimitReachedHandler(func(c *gin.Context) {
			log.Warn().Str("request-id", requestid.Get(c)).Str("ip", c.ClientIP()).Msg("Rate limit exceeded")
			httputil.NewError(c, http.StatusTooManyRequests, "Too many requests, please try again later")
		}),
		limitergin.WithErrorHandler(func(c *gin.Context, err error) {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Rate limit check failed")
			httputil.NewError(c, http.StatusInternalServerError, "There was an error checking the rate limit")
		}),
	)
}

// metrics returns all collectors served on the metrics endpoint.
func metrics() []prometheus.Collector {
	return append([]prometheus.Collector{requestCount, requestDuration}, ledger.Collectors()...)
}

// registerPrometheusMetrics registers all Prometheus metrics
// with the default registry.
//
// If one of them cannot be registered, the ones registered before
// are unregistered again.
func registerPrometheusMetrics() error {
	collectors := metrics()
	for i, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			for _, registered := range collectors[:i] {
				prometheus.Unregister(registered)
			}
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// unregisterPrometheusMetrics unregisters all Prometheus metrics.
//
// This is needed to cleanly exit.
func unregisterPrometheusMetrics() bool {
	ok := true
	for _, c := range metrics() {
		if !prometheus.Unregister(c) {
			ok = false
		}
	}

	return ok
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}
