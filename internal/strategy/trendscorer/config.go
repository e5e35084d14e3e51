package trendscorer

// SignalDefaults are the fill-in values applied to sparse trend signals.
// Declared here, in one place, so scoring behavior is configured rather
// than scattered through the arithmetic.
type SignalDefaults struct {
	GrowthRate  float64
	Competition float64
	Relevancy   float64
}

type Config struct {
	MaxOpportunities int
	KeywordBoost     float64
	Defaults         SignalDefaults
}

// Clamp bounds for incoming signal fields. Growth below -0.9 would zero or
// invert the score; competition is capped below 1.0 for the same reason.
const (
	minGrowthRate  = -0.9
	maxCompetition = 0.9
	minCompetition = 0.0
	volumeScale    = 1000.0
)

func DefaultConfig() *Config {
	return &Config{
		MaxOpportunities: 5,
		KeywordBoost:     0.35,
		Defaults: SignalDefaults{
			GrowthRate:  0.0,
			Competition: 0.3,
			Relevancy:   0.5,
		},
	}
}
