package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/valueobject"
)

// topFactorCount is how many features the narrative names.
const topFactorCount = 3

// ExplanationBuilder turns raw model attributions into the display-ready
// explanation bundle: attributions ranked by impact plus a short
// deterministic narrative. The same vector and model version always produce
// the same ordering and text, since both drive the dashboard's bar chart.
type ExplanationBuilder struct{}

// NewExplanationBuilder creates an ExplanationBuilder.
func NewExplanationBuilder() *ExplanationBuilder {
	return &ExplanationBuilder{}
}

// Build enriches contributions with raw values and descriptions, sorts them
// by descending absolute contribution (ties broken by feature key so the
// order is fully deterministic), and renders the narrative. Features without
// a description are kept and flagged, never dropped.
func (b *ExplanationBuilder) Build(
	attribution model.AttributionResult,
	vector model.FeatureVector,
	descriptions map[string]string,
) model.Explanation {
	features := make([]model.FeatureAttribution, 0, len(attribution.Contributions))
	for _, c := range attribution.Contributions {
		fa := model.FeatureAttribution{
			FeatureKey:   c.FeatureKey,
			Contribution: c.Value,
			Direction:    valueobject.DirectionFromContribution(c.Value),
		}
		if v, ok := vector.Get(c.FeatureKey); ok {
			fa.RawValue = v.Display()
		}
		if desc, ok := descriptions[c.FeatureKey]; ok && desc != "" {
			fa.Description = desc
			fa.HasDescription = true
		}
		features = append(features, fa)
	}

	sort.SliceStable(features, func(i, j int) bool {
		ai, aj := math.Abs(features[i].Contribution), math.Abs(features[j].Contribution)
		if ai != aj {
			return ai > aj
		}
		return features[i].FeatureKey < features[j].FeatureKey
	})

	return model.Explanation{
		Text:      narrative(features),
		BaseValue: attribution.BaseValue,
		Features:  features,
	}
}

// narrative renders the fixed text template over the top contributors.
func narrative(features []model.FeatureAttribution) string {
	if len(features) == 0 {
		return "The estimate equals the model base value; no individual feature moved it."
	}

	n := topFactorCount
	if len(features) < n {
		n = len(features)
	}

	parts := make([]string, 0, n)
	for _, f := range features[:n] {
		label := f.FeatureKey
		if f.HasDescription {
			label = f.Description
		}
		verb := "increased"
		if f.Direction.Equal(valueobject.DirectionNegative) {
			verb = "decreased"
		}
		parts = append(parts, fmt.Sprintf("%s %s the estimate", label, verb))
	}

	return fmt.Sprintf("The strongest factors behind this income estimate: %s.", strings.Join(parts, "; "))
}
