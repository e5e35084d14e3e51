package models

// SuggestionStatusQueued is the status assigned to every freshly persisted
// suggestion. Later transitions belong to the content-delivery service.
const SuggestionStatusQueued = "queued"

// SuggestionPayload is the templated content brief attached to a suggestion.
// Field names follow the stored JSON contract consumed by the admin client.
type SuggestionPayload struct {
	Topic            string   `json:"topic"`
	Angle            string   `json:"angle"`
	Keywords         []string `json:"keywords"`
	Score            float64  `json:"score"`
	CallToAction     string   `json:"call_to_action"`
	BlueprintVersion int      `json:"blueprint_version"`
}

// SuggestionDraft pairs one opportunity with one blueprint. Drafts exist
// only between assembly and persistence.
type SuggestionDraft struct {
	BlueprintID   int64             `json:"blueprintId"`
	SiteContextID int64             `json:"siteContextId"`
	Priority      int               `json:"priority"`
	SuggestedFor  string            `json:"suggestedFor"` // YYYY-MM-DD
	Payload       SuggestionPayload `json:"payload"`
}

// SuggestionRecord is a persisted suggestion as returned to the caller.
type SuggestionRecord struct {
	ID            int64             `json:"id"`
	BlueprintID   int64             `json:"blueprintId"`
	SiteContextID int64             `json:"siteContextId"`
	Priority      int               `json:"priority"`
	Status        string            `json:"status"`
	SuggestedFor  string            `json:"suggestedFor"`
	Payload       SuggestionPayload `json:"payload"`
	CreatedAt     string            `json:"createdAt"` // ISO 8601
}
