package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sahayogi_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// RequestTransitions counts help-request lifecycle transitions by outcome.
	RequestTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sahayogi_request_transitions_total",
		Help: "Total number of help request lifecycle transitions",
	}, []string{"transition", "outcome"})
)

// InitMetrics creates the Prometheus HTTP metrics collector for the service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
