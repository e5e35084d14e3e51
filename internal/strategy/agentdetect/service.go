package agentdetect

import (
	"context"

	apperrors "strategy-api/internal/common/errors"
	"strategy-api/internal/common/logger"
	"strategy-api/internal/common/metrics"
	"strategy-api/internal/models"
)

// DetectionStore persists recognized agent detections.
type DetectionStore interface {
	Insert(ctx context.Context, detection models.AgentDetection) error
}

// Service inspects analytics events and records every recognized AI crawler.
type Service struct {
	detector *Detector
	store    DetectionStore
	logger   logger.Logger
}

func NewService(store DetectionStore, log logger.Logger) *Service {
	return &Service{
		detector: NewDetector(),
		store:    store,
		logger:   log.WithFields(map[string]interface{}{"component": "agent-detection"}),
	}
}

// Detect classifies each event's user agent and persists the matches.
// Events that do not look like AI agents are skipped silently. A store
// failure aborts the batch.
func (s *Service) Detect(ctx context.Context, events []models.AgentEvent) ([]models.AgentDetection, error) {
	detections := make([]models.AgentDetection, 0, len(events))

	for _, event := range events {
		detection := s.detector.Detect(event.UserAgent)
		if detection == nil {
			continue
		}
		detection.AnalyticsLogID = event.AnalyticsLogID

		if err := s.store.Insert(ctx, *detection); err != nil {
			s.logger.WithError(err).Error("Failed to persist agent detection", nil)
			return nil, apperrors.NewDetectionPersistError(err)
		}

		metrics.AgentDetections.WithLabelValues(familyLabel(detection.AgentFamily)).Inc()
		detections = append(detections, *detection)
	}

	s.logger.Info("Agent detection batch processed", map[string]interface{}{
		"events":     len(events),
		"detections": len(detections),
	})

	return detections, nil
}

func familyLabel(family string) string {
	if family == "" {
		return "generic"
	}
	return family
}
