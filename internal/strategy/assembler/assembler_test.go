package assembler

import (
	"testing"
	"time"

	"strategy-api/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestSiteContext() *models.SiteContext {
	return &models.SiteContext{
		ID: 1,
		ContextSnapshot: models.ContextSnapshot{
			Brand:    "Luminate",
			Keywords: []string{"automation", "ai"},
		},
		ToneProfile:     models.ToneProfile{Style: "authoritative"},
		AudienceProfile: models.AudienceProfile{Primary: "marketing directors"},
	}
}

func createTestBlueprints() []models.ContentBlueprint {
	return []models.ContentBlueprint{
		{ID: 1, Name: "Thought Leadership Feature", Version: 3, Status: models.BlueprintStatusActive},
		{ID: 2, Name: "Comparison Guide", Version: 1, Status: models.BlueprintStatusDraft},
	}
}

func createTestOpportunities(n int) []models.Opportunity {
	opportunities := make([]models.Opportunity, 0, n)
	for i := 0; i < n; i++ {
		opportunities = append(opportunities, models.Opportunity{
			Topic:    "topic " + string(rune('a'+i)),
			Score:    float64(100 - i),
			Keywords: []string{"topic"},
		})
	}
	return opportunities
}

var baseDate = time.Date(2026, time.March, 10, 15, 4, 5, 0, time.UTC)

// ==========================
// Core Functionality Tests
// ==========================

func TestAssemble_CrossProductCount(t *testing.T) {
	drafts := Assemble(createTestSiteContext(), createTestBlueprints(), createTestOpportunities(3), baseDate)
	assert.Len(t, drafts, 6)
}

func TestAssemble_EmptyInputs(t *testing.T) {
	site := createTestSiteContext()

	assert.Empty(t, Assemble(site, nil, createTestOpportunities(2), baseDate))
	assert.Empty(t, Assemble(site, createTestBlueprints(), nil, baseDate))
}

func TestAssemble_OpportunityMajorOrdering(t *testing.T) {
	drafts := Assemble(createTestSiteContext(), createTestBlueprints(), createTestOpportunities(2), baseDate)

	assert.Len(t, drafts, 4)
	assert.Equal(t, "topic a", drafts[0].Payload.Topic)
	assert.Equal(t, int64(1), drafts[0].BlueprintID)
	assert.Equal(t, "topic a", drafts[1].Payload.Topic)
	assert.Equal(t, int64(2), drafts[1].BlueprintID)
	assert.Equal(t, "topic b", drafts[2].Payload.Topic)
	assert.Equal(t, int64(1), drafts[2].BlueprintID)
}

func TestAssemble_PriorityLadder(t *testing.T) {
	blueprints := createTestBlueprints()[:1]
	drafts := Assemble(createTestSiteContext(), blueprints, createTestOpportunities(7), baseDate)

	expected := []int{5, 4, 3, 2, 1, 0, 0}
	for i, draft := range drafts {
		assert.Equal(t, expected[i], draft.Priority, "position %d", i)
	}
}

func TestAssemble_PrioritySharedAcrossBlueprints(t *testing.T) {
	drafts := Assemble(createTestSiteContext(), createTestBlueprints(), createTestOpportunities(1), baseDate)

	assert.Len(t, drafts, 2)
	assert.Equal(t, 5, drafts[0].Priority)
	assert.Equal(t, 5, drafts[1].Priority)
}

func TestAssemble_SuggestedForAdvancesOneDayPerRank(t *testing.T) {
	blueprints := createTestBlueprints()[:1]
	drafts := Assemble(createTestSiteContext(), blueprints, createTestOpportunities(3), baseDate)

	assert.Equal(t, "2026-03-11", drafts[0].SuggestedFor)
	assert.Equal(t, "2026-03-12", drafts[1].SuggestedFor)
	assert.Equal(t, "2026-03-13", drafts[2].SuggestedFor)
}

func TestAssemble_PayloadFields(t *testing.T) {
	opportunity := models.Opportunity{
		Topic:    "AI marketing automation strategies",
		Score:    15.57,
		Keywords: []string{"ai", "marketing", "automation", "strategies"},
	}

	drafts := Assemble(createTestSiteContext(), createTestBlueprints()[:1], []models.Opportunity{opportunity}, baseDate)

	assert.Len(t, drafts, 1)
	payload := drafts[0].Payload
	assert.Equal(t, "AI marketing automation strategies", payload.Topic)
	assert.Equal(t, 15.57, payload.Score)
	assert.Equal(t, opportunity.Keywords, payload.Keywords)
	assert.Equal(t, 3, payload.BlueprintVersion)
	assert.Equal(t,
		"Position Luminate as a authoritative thought-leader on AI marketing automation strategies for marketing directors.",
		payload.Angle,
	)
	assert.Contains(t, payload.CallToAction, "Thought Leadership Feature")
}

func TestAssemble_AngleFallbacks(t *testing.T) {
	site := &models.SiteContext{ID: 9}
	blueprints := []models.ContentBlueprint{{ID: 4, Name: "Checklist"}}
	opportunity := models.Opportunity{Topic: "zero-click search"}

	drafts := Assemble(site, blueprints, []models.Opportunity{opportunity}, baseDate)

	assert.Len(t, drafts, 1)
	assert.Equal(t,
		"Position the brand as a authoritative thought-leader on zero-click search for core audience.",
		drafts[0].Payload.Angle,
	)
	assert.Equal(t, 1, drafts[0].Payload.BlueprintVersion, "version defaults to 1 when unset")
	assert.Equal(t, int64(9), drafts[0].SiteContextID)
}
