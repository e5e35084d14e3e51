// Package pipeline orchestrates the trend-to-content suggestion flow:
// collaborator reads, scoring, assembly, and persistence. All I/O and error
// translation for the flow lives here.
package pipeline

import (
	"context"
	"fmt"
	"time"

	apperrors "strategy-api/internal/common/errors"
	"strategy-api/internal/common/logger"
	"strategy-api/internal/common/metrics"
	"strategy-api/internal/common/observability"
	"strategy-api/internal/models"
	"strategy-api/internal/strategy/assembler"
	"strategy-api/internal/strategy/trendscorer"
)

// SiteContextReader loads a tenant's site context. A (nil, nil) return
// means the context does not exist.
type SiteContextReader interface {
	Get(ctx context.Context, siteContextID int64) (*models.SiteContext, error)
}

// BlueprintReader lists blueprints eligible for suggestion generation
// (status active or draft), optionally restricted to the given ids.
type BlueprintReader interface {
	ListEligible(ctx context.Context, blueprintIDs []int64) ([]models.ContentBlueprint, error)
}

// SuggestionStore persists assembled drafts. The batch is atomic: either
// every draft is written or none are.
type SuggestionStore interface {
	InsertBatch(ctx context.Context, drafts []models.SuggestionDraft) ([]models.SuggestionRecord, error)
}

type Pipeline struct {
	contexts    SiteContextReader
	blueprints  BlueprintReader
	suggestions SuggestionStore
	scorer      *trendscorer.Scorer
	obs         *observability.Observability
	logger      logger.Logger
	now         func() time.Time
}

func New(contexts SiteContextReader, blueprints BlueprintReader, suggestions SuggestionStore, scorer *trendscorer.Scorer, obs *observability.Observability, log logger.Logger) *Pipeline {
	return &Pipeline{
		contexts:    contexts,
		blueprints:  blueprints,
		suggestions: suggestions,
		scorer:      scorer,
		obs:         obs,
		logger:      log.WithFields(map[string]interface{}{"component": "suggestion-pipeline"}),
		now:         time.Now,
	}
}

// Generate runs the full pipeline for one request. Scoring that produces no
// opportunities is a successful empty result; a missing site context or an
// empty eligible blueprint set is a domain error raised before any write.
func (p *Pipeline) Generate(ctx context.Context, siteContextID int64, signals []models.TrendSignal, blueprintIDs []int64) ([]models.SuggestionRecord, error) {
	start := p.now()
	records, err := p.generate(ctx, siteContextID, signals, blueprintIDs)
	p.record(ctx, p.now().Sub(start), err)
	return records, err
}

func (p *Pipeline) generate(ctx context.Context, siteContextID int64, signals []models.TrendSignal, blueprintIDs []int64) ([]models.SuggestionRecord, error) {
	p.logger.Info("generating suggestions", map[string]interface{}{
		"siteContextId": siteContextID,
		"signalCount":   len(signals),
		"blueprintIds":  blueprintIDs,
	})

	site, err := p.contexts.Get(ctx, siteContextID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, apperrors.NewSiteContextNotFoundError(siteContextID)
	}

	eligible, err := p.blueprints.ListEligible(ctx, blueprintIDs)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, apperrors.NewNoBlueprintsAvailableError(
			fmt.Sprintf("siteContextId: %d, requested blueprintIds: %v", siteContextID, blueprintIDs),
		)
	}

	opportunities := p.scorer.IdentifyOpportunities(signals, site)
	if len(opportunities) == 0 {
		p.logger.Info("no opportunities identified", map[string]interface{}{
			"siteContextId": siteContextID,
		})
		return []models.SuggestionRecord{}, nil
	}

	drafts := assembler.Assemble(site, eligible, opportunities, p.now())

	records, err := p.suggestions.InsertBatch(ctx, drafts)
	if err != nil {
		return nil, apperrors.NewSuggestionPersistError(err)
	}

	metrics.SuggestionsGenerated.Add(float64(len(records)))
	p.logger.Info("suggestions persisted", map[string]interface{}{
		"siteContextId":   siteContextID,
		"opportunities":   len(opportunities),
		"blueprints":      len(eligible),
		"suggestionCount": len(records),
	})

	return records, nil
}

func (p *Pipeline) record(ctx context.Context, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	metrics.PipelineDuration.Observe(duration.Seconds())
	if p.obs != nil {
		p.obs.RecordPipelineRun(ctx, status)
		p.obs.RecordPipelineDuration(ctx, duration, status)
	}
}
