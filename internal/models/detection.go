package models

// AgentEvent is one analytics event submitted for AI-crawler inspection.
type AgentEvent struct {
	AnalyticsLogID *int64 `json:"analyticsLogId,omitempty"`
	UserAgent      string `json:"userAgent"`
}

// AgentDetection is a recognized AI crawler together with the content
// guidance surfaced to the tenant.
type AgentDetection struct {
	AnalyticsLogID *int64  `json:"analyticsLogId"`
	AgentName      string  `json:"agentName"`
	AgentFamily    string  `json:"agentFamily,omitempty"`
	Confidence     float64 `json:"confidence"`
	Guidance       string  `json:"guidance"`
}
