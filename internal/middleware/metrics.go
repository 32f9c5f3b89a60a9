package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "giftlink_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// SentimentFallbacks counts comment creations that fell back to the
	// neutral sentiment because the classifier call failed.
	SentimentFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "giftlink_sentiment_fallbacks_total",
		Help: "Total number of comments stored with the neutral fallback sentiment",
	}, []string{"reason"})

	// CommentsCreated counts persisted comments by sentiment label.
	CommentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "giftlink_comments_created_total",
		Help: "Total number of comments created by sentiment label",
	}, []string{"sentiment"})
)

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. The middleware registers collectors in the default registry, so it is
// created once per process regardless of how many servers are constructed.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.New(serviceName)
	})
	return promInstance
}

// MetricsMiddleware returns the request-level Prometheus middleware handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
