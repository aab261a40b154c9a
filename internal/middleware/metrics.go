package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "campusconnect_redis_errors_total",
		Help: "Total number of Redis command errors",
	},
	[]string{"command"},
)

// ApprovalDecisions counts processed approval decisions by item type and outcome.
var ApprovalDecisions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "campusconnect_approval_decisions_total",
		Help: "Total number of approval decisions processed",
	},
	[]string{"item_type", "action"},
)

// ApprovalEmails counts approval emails by dispatch result.
var ApprovalEmails = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "campusconnect_approval_emails_total",
		Help: "Total number of approval emails dispatched",
	},
	[]string{"result"},
)

// RateLimitRejections counts requests rejected by the decision rate limiter.
var RateLimitRejections = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "campusconnect_ratelimit_rejections_total",
		Help: "Total number of requests rejected by the decision rate limiter",
	},
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
