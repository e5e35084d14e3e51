package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"strategy-api/internal/models"
)

// SuggestionStore persists generated content suggestions.
type SuggestionStore struct {
	db *sql.DB
}

func NewSuggestionStore(db *sql.DB) *SuggestionStore {
	return &SuggestionStore{db: db}
}

// InsertBatch writes all drafts inside one transaction. Either every
// suggestion of a pipeline run is persisted or none is.
func (s *SuggestionStore) InsertBatch(ctx context.Context, drafts []models.SuggestionDraft) ([]models.SuggestionRecord, error) {
	if len(drafts) == 0 {
		return []models.SuggestionRecord{}, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin suggestion batch: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cms_content_suggestions (
			blueprint_id, site_context_id, suggestion_payload,
			priority, status, suggested_for
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`)
	if err != nil {
		return nil, fmt.Errorf("prepare suggestion insert: %w", err)
	}
	defer stmt.Close()

	records := make([]models.SuggestionRecord, 0, len(drafts))
	for _, draft := range drafts {
		payload, err := json.Marshal(draft.Payload)
		if err != nil {
			return nil, fmt.Errorf("encode suggestion payload: %w", err)
		}

		var (
			id        int64
			createdAt time.Time
		)
		err = stmt.QueryRowContext(ctx,
			draft.BlueprintID,
			draft.SiteContextID,
			payload,
			draft.Priority,
			models.SuggestionStatusQueued,
			draft.SuggestedFor,
		).Scan(&id, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("insert suggestion: %w", err)
		}

		records = append(records, models.SuggestionRecord{
			ID:            id,
			BlueprintID:   draft.BlueprintID,
			SiteContextID: draft.SiteContextID,
			Priority:      draft.Priority,
			Status:        models.SuggestionStatusQueued,
			SuggestedFor:  draft.SuggestedFor,
			Payload:       draft.Payload,
			CreatedAt:     createdAt.UTC().Format(time.RFC3339),
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit suggestion batch: %w", err)
	}

	return records, nil
}
