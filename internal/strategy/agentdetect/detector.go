// Package agentdetect recognizes AI crawlers from user-agent strings and
// records detections for tenant analytics.
package agentdetect

import (
	"regexp"
	"strings"

	"strategy-api/internal/models"
)

// detectionRule pairs a user-agent pattern with the agent identity and the
// content guidance surfaced to the tenant.
type detectionRule struct {
	pattern    *regexp.Regexp
	agentName  string
	family     string
	confidence float64
	guidance   string
}

// Rules are evaluated in order; the first match wins. Confidence reflects
// how specific the pattern is.
var detectionRules = []detectionRule{
	{
		pattern:    regexp.MustCompile(`(?i)perplexitybot`),
		agentName:  "PerplexityBot",
		family:     "perplexity",
		confidence: 0.95,
		guidance:   "Perplexity crawler detected. Confirm sitemap freshness and reinforce structured data.",
	},
	{
		pattern:    regexp.MustCompile(`(?i)google-extended|googlebot/\d+\.\d+ \(compatible; Googlebot`),
		agentName:  "Google-Extended",
		family:     "google",
		confidence: 0.9,
		guidance:   "Google Extended agent detected. Ensure AI summaries highlight authoritative claims.",
	},
	{
		pattern:    regexp.MustCompile(`(?i)chatgpt-user|chatgpt-credential|openai/|gptbot`),
		agentName:  "ChatGPT-User",
		family:     "openai",
		confidence: 0.88,
		guidance:   "OpenAI agent present. Prioritize concise key takeaways and FAQs.",
	},
	{
		pattern:    regexp.MustCompile(`(?i)claudebot|anthropic|claude-web`),
		agentName:  "Claude-Web",
		family:     "anthropic",
		confidence: 0.82,
		guidance:   "Anthropic crawler detected. Validate citations and freshness for factual authority.",
	},
	{
		pattern:    regexp.MustCompile(`(?i)bingbot|adidxbot|microsoft ai`),
		agentName:  "BingBot",
		family:     "microsoft",
		confidence: 0.8,
		guidance:   "Microsoft agent encountered. Align metadata and canonical tags for Copilot ingestion.",
	},
}

type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect classifies a user-agent string. It returns nil for empty input and
// for agents that look like ordinary browsers.
func (d *Detector) Detect(userAgent string) *models.AgentDetection {
	normalized := strings.ToLower(strings.TrimSpace(userAgent))
	if normalized == "" {
		return nil
	}

	for _, rule := range detectionRules {
		if rule.pattern.MatchString(userAgent) {
			return &models.AgentDetection{
				AgentName:   rule.agentName,
				AgentFamily: rule.family,
				Confidence:  rule.confidence,
				Guidance:    rule.guidance,
			}
		}
	}

	if strings.Contains(normalized, "bot") ||
		strings.Contains(normalized, "crawler") ||
		strings.Contains(normalized, "spider") {
		return &models.AgentDetection{
			AgentName:  "GenericBot",
			Confidence: 0.55,
			Guidance:   "Generic automated agent detected. Monitor traffic spikes and throttling.",
		}
	}

	return nil
}
