// Package observability provides metrics and tracing for the application.
package observability

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain metrics. Registered once at package load via promauto.
var (
	// FeedQueries counts feed reads by feed kind (global, group, profile, following).
	FeedQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_feed_queries_total",
		Help: "Feed reads served, labeled by feed kind",
	}, []string{"feed"})

	// LikeToggles counts like flips by resulting state.
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_like_toggles_total",
		Help: "Like toggle operations, labeled by resulting state",
	}, []string{"state"})

	// FollowChanges counts follow/unfollow edge mutations.
	FollowChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_follow_changes_total",
		Help: "Follow edge mutations, labeled by action",
	}, []string{"action"})

	// CacheRequests counts feed cache lookups by outcome.
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_cache_requests_total",
		Help: "Feed cache lookups, labeled by outcome (hit or miss)",
	}, []string{"outcome"})

	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_redis_errors_total",
		Help: "Redis command failures, labeled by command",
	}, []string{"command"})
)

// InitMetrics creates the Prometheus HTTP middleware for Fiber.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}
