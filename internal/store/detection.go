package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"strategy-api/internal/models"
)

// DetectionStore records recognized AI-agent visits.
type DetectionStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewDetectionStore(db *sql.DB) *DetectionStore {
	return &DetectionStore{db: db, now: time.Now}
}

// Insert writes one detection row. agent_family is nullable; the generic
// fallback detection carries no family.
func (s *DetectionStore) Insert(ctx context.Context, detection models.AgentDetection) error {
	var family sql.NullString
	if detection.AgentFamily != "" {
		family = sql.NullString{String: detection.AgentFamily, Valid: true}
	}

	var analyticsLogID sql.NullInt64
	if detection.AnalyticsLogID != nil {
		analyticsLogID = sql.NullInt64{Int64: *detection.AnalyticsLogID, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cms_agent_detections (
			analytics_log_id, agent_name, agent_family,
			confidence, detection_reason, detected_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		analyticsLogID,
		detection.AgentName,
		family,
		detection.Confidence,
		detection.Guidance,
		s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert agent detection: %w", err)
	}
	return nil
}
