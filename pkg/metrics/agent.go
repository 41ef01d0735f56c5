package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the agent command handler
	AgentCommandLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "agent_command_latency_seconds",
		Help:    "Latency of agent command processing",
		Buckets: prometheus.DefBuckets,
	})

	// Commands processed, labelled by resolved intent
	AgentCommandsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_commands_total",
		Help: "Total number of agent commands processed by intent",
	}, []string{"intent"})

	// Total number of product comparisons served
	ComparisonRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "comparison_requests_total",
		Help: "Total number of product comparison requests",
	})

	// Total number of recommendation requests served
	RecommendationRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_requests_total",
		Help: "Total number of recommendation requests",
	})
)

func Init() {
	prometheus.MustRegister(
		AgentCommandLatency,
		AgentCommandsTotal,
		ComparisonRequests,
		RecommendationRequests,
	)
}
