package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	TaskCompletions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "taskcash",
			Subsystem: "tasks",
			Name:      "completions_total",
			Help:      "Total number of rewarded task completions.",
		},
	)

	ReferralBonuses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "taskcash",
			Subsystem: "referrals",
			Name:      "bonuses_total",
			Help:      "Total number of referral milestone bonuses awarded.",
		},
	)

	Withdrawals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taskcash",
			Subsystem: "withdrawals",
			Name:      "requests_total",
			Help:      "Total number of withdrawal requests accepted.",
		},
		[]string{"method"},
	)

	NotificationsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "taskcash",
			Subsystem: "notifications",
			Name:      "sent_total",
			Help:      "Total number of notifications delivered.",
		},
	)
)

func init() {
	Registry.MustRegister(
		TaskCompletions,
		ReferralBonuses,
		Withdrawals,
		NotificationsSent,
		collectors.NewGoCollector(),
	)
}

// Handler serves the registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
