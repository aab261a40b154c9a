package middleware

import (
	"log/slog"
	"strings"

	"campusconnect/internal/models"
	"campusconnect/internal/ratelimit"

	"github.com/gofiber/fiber/v2"
)

// forwardedForKey extracts the rate-limit key for a request: the first
// comma-separated entry of X-Forwarded-For, or "unknown" when absent.
// The decision endpoint is unauthenticated, so the forwarded address is the
// only caller identity available.
func forwardedForKey(c *fiber.Ctx) string {
	fwd := c.Get("X-Forwarded-For")
	if fwd == "" {
		return "unknown"
	}
	first, _, _ := strings.Cut(fwd, ",")
	first = strings.TrimSpace(first)
	if first == "" {
		return "unknown"
	}
	return first
}

// DecisionRateLimit returns a Fiber middleware that throttles approval
// decisions through the given limiter. Limiter errors fail open: a broken
// Redis must not lock faculty reviewers out of deciding.
func DecisionRateLimit(limiter ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := forwardedForKey(c)

		allowed, err := limiter.Allow(c.UserContext(), key)
		if err != nil {
			Logger.WarnContext(c.UserContext(), "rate limiter unavailable, failing open",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			return c.Next()
		}

		if !allowed {
			RateLimitRejections.Inc()
			return models.RespondWithError(c, fiber.StatusTooManyRequests,
				models.NewRateLimitedError())
		}
		return c.Next()
	}
}
