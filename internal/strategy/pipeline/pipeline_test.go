package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	apperrors "strategy-api/internal/common/errors"
	"strategy-api/internal/common/logger"
	"strategy-api/internal/models"
	"strategy-api/internal/strategy/trendscorer"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Collaborator Fakes
// ==========================

type fakeContextReader struct {
	site  *models.SiteContext
	err   error
	calls int
}

func (f *fakeContextReader) Get(_ context.Context, _ int64) (*models.SiteContext, error) {
	f.calls++
	return f.site, f.err
}

type fakeBlueprintReader struct {
	blueprints []models.ContentBlueprint
	err        error
	calls      int
	gotIDs     []int64
}

func (f *fakeBlueprintReader) ListEligible(_ context.Context, blueprintIDs []int64) ([]models.ContentBlueprint, error) {
	f.calls++
	f.gotIDs = blueprintIDs
	return f.blueprints, f.err
}

type fakeSuggestionStore struct {
	err    error
	calls  int
	drafts []models.SuggestionDraft
}

func (f *fakeSuggestionStore) InsertBatch(_ context.Context, drafts []models.SuggestionDraft) ([]models.SuggestionRecord, error) {
	f.calls++
	f.drafts = drafts
	if f.err != nil {
		return nil, f.err
	}

	records := make([]models.SuggestionRecord, 0, len(drafts))
	for i, draft := range drafts {
		records = append(records, models.SuggestionRecord{
			ID:            int64(i + 1),
			BlueprintID:   draft.BlueprintID,
			SiteContextID: draft.SiteContextID,
			Priority:      draft.Priority,
			Status:        models.SuggestionStatusQueued,
			SuggestedFor:  draft.SuggestedFor,
			Payload:       draft.Payload,
			CreatedAt:     "2026-03-10T12:00:00Z",
		})
	}
	return records, nil
}

// ==========================
// Test Helper Functions
// ==========================

func createTestSiteContext() *models.SiteContext {
	return &models.SiteContext{
		ID:     1,
		UserID: 10,
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
	}
}

func createTestSignal() models.TrendSignal {
	volume := 4200
	growth := 0.35
	competition := 0.15
	relevancy := 0.9
	return models.TrendSignal{
		Topic:        "AI marketing automation strategies",
		SearchVolume: &volume,
		GrowthRate:   &growth,
		Competition:  &competition,
		Relevancy:    &relevancy,
	}
}

func newTestPipeline(t *testing.T, contexts *fakeContextReader, blueprints *fakeBlueprintReader, store *fakeSuggestionStore) *Pipeline {
	p := New(contexts, blueprints, store, trendscorer.New(nil), nil, logger.NewTestLogger(t))
	p.now = func() time.Time {
		return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
	return p
}

// ==========================
// Core Functionality Tests
// ==========================

func TestGenerate_SiteContextNotFound(t *testing.T) {
	contexts := &fakeContextReader{site: nil}
	blueprints := &fakeBlueprintReader{blueprints: createTestBlueprints()}
	store := &fakeSuggestionStore{}

	p := newTestPipeline(t, contexts, blueprints, store)
	records, err := p.Generate(context.Background(), 99, []models.TrendSignal{createTestSignal()}, nil)

	assert.Nil(t, records)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeSiteContextNotFound))
	assert.Equal(t, 0, blueprints.calls, "no blueprint read after missing site context")
	assert.Equal(t, 0, store.calls, "no write after missing site context")
}

func TestGenerate_NoBlueprintsAvailable(t *testing.T) {
	contexts := &fakeContextReader{site: createTestSiteContext()}
	blueprints := &fakeBlueprintReader{blueprints: nil}
	store := &fakeSuggestionStore{}

	p := newTestPipeline(t, contexts, blueprints, store)
	records, err := p.Generate(context.Background(), 1, []models.TrendSignal{createTestSignal()}, nil)

	assert.Nil(t, records)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNoBlueprintsAvailable))
	assert.Equal(t, 0, store.calls, "no write without eligible blueprints")
}

func TestGenerate_EmptyOpportunitiesIsSuccess(t *testing.T) {
	contexts := &fakeContextReader{site: createTestSiteContext()}
	blueprints := &fakeBlueprintReader{blueprints: createTestBlueprints()}
	store := &fakeSuggestionStore{}

	// Every signal fails the required-field check.
	signals := []models.TrendSignal{
		{Topic: "no volume"},
		{SearchVolume: intPtr(1000)},
	}

	p := newTestPipeline(t, contexts, blueprints, store)
	records, err := p.Generate(context.Background(), 1, signals, nil)

	assert.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.Equal(t, 0, store.calls, "empty scoring result must not reach the store")
}

func TestGenerate_PersistFailure(t *testing.T) {
	contexts := &fakeContextReader{site: createTestSiteContext()}
	blueprints := &fakeBlueprintReader{blueprints: createTestBlueprints()}
	store := &fakeSuggestionStore{err: errors.New("connection reset")}

	p := newTestPipeline(t, contexts, blueprints, store)
	records, err := p.Generate(context.Background(), 1, []models.TrendSignal{createTestSignal()}, nil)

	assert.Nil(t, records)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeSuggestionPersistError))
}

func TestGenerate_PassesBlueprintFilter(t *testing.T) {
	contexts := &fakeContextReader{site: createTestSiteContext()}
	blueprints := &fakeBlueprintReader{blueprints: createTestBlueprints()}
	store := &fakeSuggestionStore{}

	p := newTestPipeline(t, contexts, blueprints, store)
	_, err := p.Generate(context.Background(), 1, []models.TrendSignal{createTestSignal()}, []int64{1, 7})

	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 7}, blueprints.gotIDs)
}

func TestGenerate_EndToEnd(t *testing.T) {
	contexts := &fakeContextReader{site: createTestSiteContext()}
	blueprints := &fakeBlueprintReader{blueprints: createTestBlueprints()}
	store := &fakeSuggestionStore{}

	p := newTestPipeline(t, contexts, blueprints, store)
	records, err := p.Generate(context.Background(), 1, []models.TrendSignal{createTestSignal()}, nil)

	assert.NoError(t, err)
	assert.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, int64(1), record.BlueprintID)
	assert.Equal(t, int64(1), record.SiteContextID)
	assert.Equal(t, 5, record.Priority)
	assert.Equal(t, models.SuggestionStatusQueued, record.Status)
	assert.Equal(t, "2026-03-11", record.SuggestedFor)
	assert.Equal(t, "AI marketing automation strategies", record.Payload.Topic)
	assert.Equal(t, 3, record.Payload.BlueprintVersion)
	assert.Greater(t, record.Payload.Score, 0.0)
	assert.Contains(t, record.Payload.CallToAction, "Thought Leadership Feature")
}

func TestGenerate_SuggestionCountIsCrossProduct(t *testing.T) {
	contexts := &fakeContextReader{site: createTestSiteContext()}
	blueprints := &fakeBlueprintReader{blueprints: []models.ContentBlueprint{
		{ID: 1, Name: "Feature", Version: 1, Status: models.BlueprintStatusActive},
		{ID: 2, Name: "Guide", Version: 2, Status: models.BlueprintStatusDraft},
		{ID: 3, Name: "Checklist", Version: 1, Status: models.BlueprintStatusActive},
	}}
	store := &fakeSuggestionStore{}

	signals := make([]models.TrendSignal, 0, 2)
	for i, volume := range []int{4200, 1800} {
		signals = append(signals, models.TrendSignal{
			Topic:        fmt.Sprintf("topic %d", i),
			SearchVolume: intPtr(volume),
		})
	}

	p := newTestPipeline(t, contexts, blueprints, store)
	records, err := p.Generate(context.Background(), 1, signals, nil)

	assert.NoError(t, err)
	assert.Len(t, records, 6, "2 opportunities x 3 blueprints")
	assert.Len(t, store.drafts, 6)
}

func intPtr(v int) *int { return &v }
