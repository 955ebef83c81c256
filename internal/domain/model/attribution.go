package model

import "github.com/Woolfer0097/AlfaHackathon/internal/domain/valueobject"

// Contribution is a single signed per-feature amount in the model's native
// scale, as produced by the model adapter.
type Contribution struct {
	FeatureKey string
	Value      float64
}

// AttributionResult is the raw attribution output of the model adapter:
// BaseValue plus the sum of all contributions reconstructs the raw
// (pre-bound) prediction.
type AttributionResult struct {
	BaseValue     float64
	Contributions []Contribution
}

// RawPrediction returns base value plus the sum of contributions.
func (r AttributionResult) RawPrediction() float64 {
	total := r.BaseValue
	for _, c := range r.Contributions {
		total += c.Value
	}
	return total
}

// FeatureAttribution is a display-ready attribution entry: the contribution
// enriched with the raw feature value and its human-readable description.
// Features lacking a description are still included with HasDescription
// false so the dashboard can surface a missing-description state.
type FeatureAttribution struct {
	FeatureKey     string
	RawValue       string
	Contribution   float64
	Direction      valueobject.Direction
	Description    string
	HasDescription bool
}

// Explanation is the full explainability bundle for one client: a short
// deterministic narrative plus attributions ordered by descending absolute
// contribution.
type Explanation struct {
	Text      string
	BaseValue float64
	Features  []FeatureAttribution
}
