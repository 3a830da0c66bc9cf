package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tumpangan"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	SearchCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "search_cache_total", Help: "Search cache lookups by result"},
		[]string{"result"}, // hit, miss, error
	)
	CacheInvalidatedKeys = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "search_cache_invalidated_keys_total", Help: "Search cache keys removed by invalidation"},
	)
	CacheBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{Namespace: namespace, Name: "cache_breaker_state", Help: "Cache circuit breaker state (0 closed, 1 open, 2 half-open)"},
	)

	BookingIntentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "booking_intents_total", Help: "Booking intents published"},
	)
	AdmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "booking_admissions_total", Help: "Booking intents processed by the admission consumer"},
		[]string{"outcome"}, // admitted, duplicate, invalid, ride_missing, error
	)
	DecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "booking_decisions_total", Help: "Driver decisions committed"},
		[]string{"decision"},
	)
	AdmissionBacklog = promauto.NewGauge(
		prometheus.GaugeOpts{Namespace: namespace, Name: "booking_admission_backlog", Help: "Booking intents not yet delivered to the admission consumer"},
	)
	CascadeRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "booking_cascade_rejections_total", Help: "Pending requests rejected because the ride filled up"},
	)

	OTPIssuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "otp_issued_total", Help: "One-time codes issued"},
	)
	OTPRedemptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "otp_redemptions_total", Help: "One-time code redemption attempts by result"},
		[]string{"result"}, // confirmed, invalid, conflict, error
	)

	NotificationsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "notifications_published_total", Help: "Notifications published by type"},
		[]string{"type"},
	)
	NotificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "notification_publish_failures_total", Help: "Notifications dropped after retries by type"},
		[]string{"type"},
	)
)
