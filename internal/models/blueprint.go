package models

import "encoding/json"

// Blueprint lifecycle statuses. Only active and draft blueprints are
// eligible for suggestion generation.
const (
	BlueprintStatusDraft    = "draft"
	BlueprintStatusActive   = "active"
	BlueprintStatusArchived = "archived"
)

// ContentBlueprint is a reusable content-production workflow template.
type ContentBlueprint struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	Version            int             `json:"version"`
	Status             string          `json:"status"`
	WorkflowDefinition json.RawMessage `json:"workflowDefinition,omitempty"`
}
