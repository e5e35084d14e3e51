package models

// SiteContext is a tenant's brand/tone/audience profile. It is read-only to
// the suggestion pipeline; the context-management service owns mutation.
type SiteContext struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	ContextSnapshot ContextSnapshot `json:"contextSnapshot"`
	ToneProfile     ToneProfile     `json:"toneProfile"`
	AudienceProfile AudienceProfile `json:"audienceProfile"`
}

type ContextSnapshot struct {
	Brand    string   `json:"brand,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

type ToneProfile struct {
	Style    string   `json:"style,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

type AudienceProfile struct {
	Primary string `json:"primary,omitempty"`
}
