// Package trendscorer turns raw trend signals and a tenant's site context
// into a ranked, capped list of content opportunities. Pure computation,
// no I/O.
package trendscorer

import (
	"math"
	"sort"
	"strings"

	"strategy-api/internal/models"
)

type Scorer struct {
	config *Config
}

func New(config *Config) *Scorer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Scorer{config: config}
}

// IdentifyOpportunities evaluates raw trend signals against the site
// context and returns prioritized opportunities, descending by score.
// Signals missing topic or searchVolume are skipped, not errored. Ties keep
// input order and the result is capped at MaxOpportunities.
func (s *Scorer) IdentifyOpportunities(signals []models.TrendSignal, site *models.SiteContext) []models.Opportunity {
	contextKeywords := extractContextKeywords(site)

	scored := make([]models.Opportunity, 0, len(signals))
	for _, signal := range signals {
		if !signal.Complete() {
			continue
		}
		scored = append(scored, s.scoreSignal(signal, contextKeywords))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > s.config.MaxOpportunities {
		scored = scored[:s.config.MaxOpportunities]
	}

	return scored
}

func (s *Scorer) scoreSignal(signal models.TrendSignal, contextKeywords []string) models.Opportunity {
	searchVolume := *signal.SearchVolume
	if searchVolume < 0 {
		searchVolume = 0
	}

	growthRate := s.config.Defaults.GrowthRate
	if signal.GrowthRate != nil {
		growthRate = *signal.GrowthRate
	}
	competition := s.config.Defaults.Competition
	if signal.Competition != nil {
		competition = *signal.Competition
	}
	relevancy := s.config.Defaults.Relevancy
	if signal.Relevancy != nil {
		relevancy = *signal.Relevancy
	}

	baseScore := (float64(searchVolume) / volumeScale) *
		(1 + math.Max(minGrowthRate, growthRate)) *
		(1 - math.Min(maxCompetition, math.Max(minCompetition, competition)))

	loweredTopic := strings.ToLower(signal.Topic)
	contextBoost := 1.0
	for _, keyword := range contextKeywords {
		if strings.Contains(loweredTopic, keyword) {
			contextBoost += s.config.KeywordBoost
		}
	}

	score := baseScore * contextBoost * (1 + math.Max(0.0, relevancy))

	return models.Opportunity{
		Topic:        signal.Topic,
		Score:        round2(score),
		SearchVolume: searchVolume,
		GrowthRate:   growthRate,
		Competition:  competition,
		Relevancy:    relevancy,
		Keywords:     deriveKeywords(signal.Topic, contextKeywords),
	}
}

// extractContextKeywords merges snapshot and tone keywords, lower-cased,
// trimmed, deduplicated, with empties removed.
func extractContextKeywords(site *models.SiteContext) []string {
	if site == nil {
		return nil
	}

	merged := make([]string, 0, len(site.ContextSnapshot.Keywords)+len(site.ToneProfile.Keywords))
	merged = append(merged, site.ContextSnapshot.Keywords...)
	merged = append(merged, site.ToneProfile.Keywords...)

	seen := make(map[string]bool, len(merged))
	keywords := make([]string, 0, len(merged))
	for _, keyword := range merged {
		cleaned := strings.ToLower(strings.TrimSpace(keyword))
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		keywords = append(keywords, cleaned)
	}

	return keywords
}

// deriveKeywords tokenizes the topic into lower-cased, punctuation-stripped
// words and appends any context keyword matched into the topic. Duplicates
// are removed, first-seen order preserved.
func deriveKeywords(topic string, contextKeywords []string) []string {
	loweredTopic := strings.ToLower(topic)

	seen := make(map[string]bool)
	var keywords []string
	for _, part := range strings.Fields(loweredTopic) {
		cleaned := strings.Trim(part, ".,!?")
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		keywords = append(keywords, cleaned)
	}

	for _, keyword := range contextKeywords {
		if seen[keyword] || !strings.Contains(loweredTopic, keyword) {
			continue
		}
		seen[keyword] = true
		keywords = append(keywords, keyword)
	}

	return keywords
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
