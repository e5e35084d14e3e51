// Package assembler cross-assembles ranked opportunities against eligible
// blueprints into suggestion drafts. Pure computation, no I/O: callers
// supply the scheduling base date.
package assembler

import (
	"fmt"
	"time"

	"strategy-api/internal/models"
)

// basePriority anchors the priority ladder: the top-ranked opportunity gets
// priority 5, descending one step per rank position, floored at 0.
const basePriority = 5

// Fallbacks for angle construction when the site context is sparse.
const (
	defaultBrand    = "the brand"
	defaultTone     = "authoritative"
	defaultAudience = "core audience"
)

// Assemble emits one draft per (opportunity, blueprint) pair in
// opportunity-major order: blueprints iterate in fetch order within each
// rank position. Either input being empty yields an empty result.
func Assemble(site *models.SiteContext, blueprints []models.ContentBlueprint, opportunities []models.Opportunity, baseDate time.Time) []models.SuggestionDraft {
	if len(blueprints) == 0 || len(opportunities) == 0 {
		return nil
	}

	drafts := make([]models.SuggestionDraft, 0, len(opportunities)*len(blueprints))
	for position, opportunity := range opportunities {
		for _, blueprint := range blueprints {
			drafts = append(drafts, craftDraft(site, blueprint, opportunity, baseDate, position))
		}
	}

	return drafts
}

func craftDraft(site *models.SiteContext, blueprint models.ContentBlueprint, opportunity models.Opportunity, baseDate time.Time, position int) models.SuggestionDraft {
	priority := basePriority - position
	if priority < 0 {
		priority = 0
	}

	suggestedFor := baseDate.AddDate(0, 0, position+1).Format("2006-01-02")

	brand := site.ContextSnapshot.Brand
	if brand == "" {
		brand = defaultBrand
	}
	tone := site.ToneProfile.Style
	if tone == "" {
		tone = defaultTone
	}
	audience := site.AudienceProfile.Primary
	if audience == "" {
		audience = defaultAudience
	}

	version := blueprint.Version
	if version == 0 {
		version = 1
	}

	return models.SuggestionDraft{
		BlueprintID:   blueprint.ID,
		SiteContextID: site.ID,
		Priority:      priority,
		SuggestedFor:  suggestedFor,
		Payload: models.SuggestionPayload{
			Topic:            opportunity.Topic,
			Angle:            BuildAngle(brand, tone, opportunity.Topic, audience),
			Keywords:         opportunity.Keywords,
			Score:            opportunity.Score,
			CallToAction:     BuildCallToAction(blueprint.Name),
			BlueprintVersion: version,
		},
	}
}

// BuildAngle renders the positioning line from already-defaulted fields.
func BuildAngle(brand, tone, topic, audience string) string {
	return fmt.Sprintf("Position %s as a %s thought-leader on %s for %s.", brand, tone, topic, audience)
}

// BuildCallToAction renders the blueprint activation line.
func BuildCallToAction(blueprintName string) string {
	return fmt.Sprintf("Deploy the %s blueprint to capture emerging demand.", blueprintName)
}
