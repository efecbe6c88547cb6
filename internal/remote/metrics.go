package remote

import "github.com/prometheus/client_golang/prometheus"

var fetchTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "transaction_fetches_total",
		Help: "How many transaction list fetches were made, partitioned by result.",
	},
	[]string{"result"},
)

var fetchDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name: "transaction_fetch_duration_seconds",
		Help: "The latency of transaction API list requests in seconds.",
	},
)

// Metrics are the Prometheus collectors of the client.
var Metrics = []prometheus.Collector{
	fetchTotal,
	fetchDuration,
}
