package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SuggestionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategy_suggestion_requests_total",
			Help: "Total number of suggestion generation requests",
		},
		[]string{"status"},
	)

	SuggestionsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "strategy_suggestions_generated_total",
			Help: "Total number of suggestion records persisted",
		},
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "strategy_pipeline_duration_seconds",
			Help: "Duration of suggestion pipeline runs in seconds",
		},
	)

	AgentDetections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategy_agent_detections_total",
			Help: "Total number of AI agent detections by family",
		},
		[]string{"agent_family"},
	)
)
