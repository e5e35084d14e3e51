// Package api exposes the strategy service over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "strategy-api/internal/common/errors"
	"strategy-api/internal/common/logger"
	"strategy-api/internal/common/metrics"
	"strategy-api/internal/models"
)

// SuggestionGenerator runs the trend-to-suggestion pipeline.
type SuggestionGenerator interface {
	Generate(ctx context.Context, siteContextID int64, signals []models.TrendSignal, blueprintIDs []int64) ([]models.SuggestionRecord, error)
}

// AgentDetector inspects analytics events for AI crawlers.
type AgentDetector interface {
	Detect(ctx context.Context, events []models.AgentEvent) ([]models.AgentDetection, error)
}

// Pinger reports backing-store reachability for health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server wires the HTTP surface: suggestion generation, agent detection,
// health probes and Prometheus metrics.
type Server struct {
	generator SuggestionGenerator
	detector  AgentDetector
	db        Pinger
	errors    *apperrors.ErrorHandler
	logger    logger.Logger
}

func NewServer(generator SuggestionGenerator, detector AgentDetector, db Pinger, log logger.Logger) *Server {
	return &Server{
		generator: generator,
		detector:  detector,
		db:        db,
		errors:    apperrors.NewErrorHandler(log),
		logger:    log.WithFields(map[string]interface{}{"component": "http-api"}),
	}
}

// Router builds the request router with access logging and timing headers
// applied to every route.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(ResponseTimeMiddleware)
	r.Use(AccessLogMiddleware(s.logger))

	r.HandleFunc("/strategy/suggestions", s.handleSuggestions).Methods(http.MethodPost)
	r.HandleFunc("/strategy/agent-detections", s.handleAgentDetections).Methods(http.MethodPost)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/live", s.handleLive).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": "not_found"})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]interface{}{"error": "method_not_allowed"})
	})

	return r
}

type suggestionRequest struct {
	SiteContextID int64                `json:"siteContextId"`
	TrendSignals  []models.TrendSignal `json:"trendSignals"`
	BlueprintIDs  []int64              `json:"blueprintIds"`
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		metrics.SuggestionRequests.WithLabelValues("invalid").Inc()
		s.errors.WriteHTTPError(w, "suggestion_failed", apperrors.NewInvalidInputError(err.Error()))
		return
	}

	if err := suggestionRequestSchema.ValidateBytes(body); err != nil {
		metrics.SuggestionRequests.WithLabelValues("invalid").Inc()
		s.errors.WriteHTTPError(w, "suggestion_failed", apperrors.NewInvalidInputError(err.Error()))
		return
	}

	var req suggestionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		metrics.SuggestionRequests.WithLabelValues("invalid").Inc()
		s.errors.WriteHTTPError(w, "suggestion_failed", apperrors.NewInvalidInputError("request body must be valid JSON"))
		return
	}

	suggestions, err := s.generator.Generate(r.Context(), req.SiteContextID, req.TrendSignals, req.BlueprintIDs)
	if err != nil {
		metrics.SuggestionRequests.WithLabelValues("failed").Inc()
		s.errors.WriteHTTPError(w, "suggestion_failed", err)
		return
	}

	metrics.SuggestionRequests.WithLabelValues("created").Inc()
	writeJSON(w, http.StatusCreated, map[string]interface{}{"suggestions": suggestions})
}

type detectionRequest struct {
	Events []models.AgentEvent `json:"events"`
}

func (s *Server) handleAgentDetections(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		s.errors.WriteHTTPError(w, "detection_failed", apperrors.NewInvalidInputError(err.Error()))
		return
	}

	if err := detectionRequestSchema.ValidateBytes(body); err != nil {
		s.errors.WriteHTTPError(w, "detection_failed", apperrors.NewInvalidInputError(err.Error()))
		return
	}

	var req detectionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errors.WriteHTTPError(w, "detection_failed", apperrors.NewInvalidInputError("request body must be valid JSON"))
		return
	}

	detections, err := s.detector.Detect(r.Context(), req.Events)
	if err != nil {
		s.errors.WriteHTTPError(w, "detection_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"detections": detections})
}

// handleHealth reports degraded rather than failing when the database is
// unreachable, so orchestrators keep routing probe traffic.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if err := s.db.Ping(r.Context()); err != nil {
		status = "degraded"
		s.logger.WithError(err).Warn("Health check database ping failed", nil)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  status,
		"service": "strategy-api",
	})
}

func (s *Server) handleLive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "live"})
}
