package gateway

import "github.com/prometheus/client_golang/prometheus"

var (
	responsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "modelgw",
			Subsystem: "gateway",
			Name:      "responses_total",
			Help:      "Responses by outcome (ok or fallback)",
		},
		[]string{"outcome"},
	)

	pullsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "modelgw",
			Subsystem: "gateway",
			Name:      "model_pulls_total",
			Help:      "On-demand model pulls by result",
		},
		[]string{"result"},
	)

	generationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "modelgw",
			Subsystem: "gateway",
			Name:      "generation_duration_seconds",
			Help:      "Duration of successful backend generate calls",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(responsesTotal, pullsTotal, generationDuration)
}
