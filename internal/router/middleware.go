package router

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "Number of HTTP requests served, partitioned by status code, HTTP method and URL",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "Duration of HTTP requests, partitioned by status code, HTTP method and URL",
	},
	[]string{"code", "method", "url"},
)

func registerPrometheusMetrics() error {
	err := prometheus.Register(requestCount)
	if err != nil {
		return err
	}

	return prometheus.Register(requestDuration)
}

func unregisterPrometheusMetrics() {
	prometheus.Unregister(requestCount)
	prometheus.Unregister(requestDuration)
}

// MetricsMiddleware records the request count and duration for prometheus.
//
// Path parameters are replaced with their names so that metrics are
// partitioned by route, not by individual resource.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, ":"+p.Key, 1)
		}

		labels := []string{strconv.Itoa(c.Writer.Status()), c.Request.Method, url}
		requestCount.WithLabelValues(labels...).Inc()
		requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	}
}
