package models

// TrendSignal is a raw market-interest data point submitted by the caller.
// SearchVolume and the rate fields are pointers so an absent field can be
// told apart from an explicit zero: signals without topic or searchVolume
// are dropped, while the other fields fall back to scoring defaults.
type TrendSignal struct {
	Topic        string   `json:"topic"`
	SearchVolume *int     `json:"searchVolume"`
	GrowthRate   *float64 `json:"growthRate,omitempty"`
	Competition  *float64 `json:"competition,omitempty"`
	Relevancy    *float64 `json:"relevancy,omitempty"`
}

// Complete reports whether the signal carries the fields scoring requires.
func (s TrendSignal) Complete() bool {
	return s.Topic != "" && s.SearchVolume != nil
}

// Opportunity is a scored, ranked trend signal after context-aware boosting.
// Opportunities are transient: they live for one pipeline invocation and are
// never persisted directly.
type Opportunity struct {
	Topic        string   `json:"topic"`
	Score        float64  `json:"score"`
	SearchVolume int      `json:"searchVolume"`
	GrowthRate   float64  `json:"growthRate"`
	Competition  float64  `json:"competition"`
	Relevancy    float64  `json:"relevancy"`
	Keywords     []string `json:"keywords"`
}
