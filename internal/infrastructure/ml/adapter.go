package ml

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
)

// Adapter wraps the loaded regression artifact behind port.IncomeModel. The
// artifact and manifest are loaded once at startup and never mutated, so a
// single Adapter is shared by all concurrent requests without locking.
type Adapter struct {
	manifest *model.Manifest
	model    *artifact
}

// Load reads the manifest and model artifact from disk. Errors wrap
// model.ErrModelUnavailable: the process should refuse readiness for scoring
// while still serving liveness.
func Load(manifestPath, modelPath string, logger *slog.Logger) (*Adapter, error) {
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrModelUnavailable, err)
	}

	art, err := loadArtifact(modelPath, len(manifest.FeatureCols))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrModelUnavailable, err)
	}

	if art.ModelVersion != "" && art.ModelVersion != manifest.ModelVersion {
		return nil, fmt.Errorf("%w: artifact version %q does not match manifest version %q",
			model.ErrModelUnavailable, art.ModelVersion, manifest.ModelVersion)
	}

	// The manifest's declared base must agree with the artifact's bias plus
	// root expected values, or attributions would not telescope to the
	// prediction. A zero declared base means the manifest omits it.
	if manifest.BaseValue != 0 {
		base := art.Bias
		for ti := range art.Trees {
			base += art.Trees[ti].Nodes[0].Value
		}
		if math.Abs(base-manifest.BaseValue) > 1e-6 {
			return nil, fmt.Errorf("%w: artifact base %v does not match manifest base_value %v",
				model.ErrModelUnavailable, base, manifest.BaseValue)
		}
	}

	logger.Info("model artifact loaded",
		slog.String("model_version", manifest.ModelVersion),
		slog.Int("features", len(manifest.FeatureCols)),
		slog.Int("trees", len(art.Trees)),
	)

	return &Adapter{manifest: manifest, model: art}, nil
}

// Version returns the model version from the manifest.
func (a *Adapter) Version() string { return a.manifest.ModelVersion }

// Manifest returns the loaded manifest.
func (a *Adapter) Manifest() *model.Manifest { return a.manifest }

// Predict returns the raw prediction in the model's native scale: bias plus
// the selected leaf of every tree.
func (a *Adapter) Predict(v model.FeatureVector) (float64, error) {
	if v.Len() != len(a.manifest.FeatureCols) {
		return 0, fmt.Errorf("%w: vector has %d features, model expects %d",
			model.ErrPredictionFailed, v.Len(), len(a.manifest.FeatureCols))
	}

	total := a.model.Bias
	for ti := range a.model.Trees {
		leaf, err := a.walk(&a.model.Trees[ti], v)
		if err != nil {
			return 0, fmt.Errorf("%w: tree %d: %v", model.ErrPredictionFailed, ti, err)
		}
		total += leaf.Value
	}
	return total, nil
}

// Attribute decomposes the raw prediction into per-feature contributions
// using path attribution: at every internal node the change in expected
// value between the node and the chosen child is credited to the node's
// split feature. Base value plus the contribution sum therefore
// reconstructs the raw prediction exactly. Contributions are returned in
// manifest feature order, one entry per feature.
func (a *Adapter) Attribute(v model.FeatureVector) (model.AttributionResult, error) {
	if v.Len() != len(a.manifest.FeatureCols) {
		return model.AttributionResult{}, fmt.Errorf("%w: vector has %d features, model expects %d",
			model.ErrPredictionFailed, v.Len(), len(a.manifest.FeatureCols))
	}

	perFeature := make([]float64, len(a.manifest.FeatureCols))
	base := a.model.Bias

	for ti := range a.model.Trees {
		t := &a.model.Trees[ti]
		base += t.Nodes[0].Value

		idx := 0
		for !t.Nodes[idx].isLeaf() {
			n := t.Nodes[idx]
			next, err := a.descend(n, v)
			if err != nil {
				return model.AttributionResult{}, fmt.Errorf("%w: tree %d: %v", model.ErrPredictionFailed, ti, err)
			}
			perFeature[n.Feature] += t.Nodes[next].Value - n.Value
			idx = next
		}
	}

	contributions := make([]model.Contribution, len(perFeature))
	for i, c := range perFeature {
		contributions[i] = model.Contribution{
			FeatureKey: a.manifest.FeatureCols[i],
			Value:      c,
		}
	}

	return model.AttributionResult{BaseValue: base, Contributions: contributions}, nil
}

// walk follows a single tree down to the selected leaf.
func (a *Adapter) walk(t *tree, v model.FeatureVector) (node, error) {
	idx := 0
	for !t.Nodes[idx].isLeaf() {
		next, err := a.descend(t.Nodes[idx], v)
		if err != nil {
			return node{}, err
		}
		idx = next
	}
	return t.Nodes[idx], nil
}

// descend picks the child for one split. Missing values follow the split's
// trained default branch.
func (a *Adapter) descend(n node, v model.FeatureVector) (int, error) {
	fv := v.At(n.Feature)

	if fv.IsMissing() {
		if n.DefaultLeft {
			return n.Left, nil
		}
		return n.Right, nil
	}

	if len(n.Categories) > 0 {
		if fv.Kind != model.FeatureCategorical {
			return 0, fmt.Errorf("categorical split on numeric feature %q", v.KeyAt(n.Feature))
		}
		for _, c := range n.Categories {
			if fv.Cat == c {
				return n.Left, nil
			}
		}
		return n.Right, nil
	}

	if fv.Kind != model.FeatureNumeric {
		return 0, fmt.Errorf("numeric split on categorical feature %q", v.KeyAt(n.Feature))
	}
	if fv.Num < n.Threshold {
		return n.Left, nil
	}
	return n.Right, nil
}
