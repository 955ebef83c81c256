package model

import (
	"fmt"
	"math"
)

// BoundPolicyType enumerates how the uncertainty interval is derived from
// the point estimate.
type BoundPolicyType string

const (
	BoundMultiplicative BoundPolicyType = "multiplicative"
	BoundAdditive       BoundPolicyType = "additive"
)

// BoundPolicy is the fixed, model-version-specific rule for deriving an
// uncertainty interval around a point estimate. It is calibrated at training
// time and shipped in the manifest, never recomputed per request.
type BoundPolicy struct {
	Type  BoundPolicyType `json:"type"`
	Lower float64         `json:"lower"`
	Upper float64         `json:"upper"`
}

// Validate checks that the policy cannot produce an inverted interval.
func (p BoundPolicy) Validate() error {
	switch p.Type {
	case BoundMultiplicative:
		if p.Lower <= 0 || p.Lower > 1 {
			return fmt.Errorf("bound policy: lower multiplier %v out of (0,1]", p.Lower)
		}
		if p.Upper < 1 {
			return fmt.Errorf("bound policy: upper multiplier %v below 1", p.Upper)
		}
	case BoundAdditive:
		if p.Lower < 0 || p.Upper < 0 {
			return fmt.Errorf("bound policy: additive offsets must be non-negative")
		}
	default:
		return fmt.Errorf("bound policy: unknown type %q", p.Type)
	}
	return nil
}

// TargetTransform names the transform applied to the training target. The
// inverse is applied to both predictions and attribution reconstruction.
type TargetTransform string

const (
	TransformNone TargetTransform = "none"
	TransformLog  TargetTransform = "log"
)

// Manifest is the model metadata file: feature order and types, the base
// value used for attribution reconstruction, the target transform, and the
// bound policy. It is externally versioned; the engine only consumes it.
type Manifest struct {
	ModelVersion    string          `json:"model_version"`
	FeatureCols     []string        `json:"feature_cols"`
	CatFeatures     []string        `json:"cat_features"`
	IDCol           string          `json:"id_col"`
	BaseValue       float64         `json:"base_value"`
	TargetTransform TargetTransform `json:"target_transform"`
	Bounds          BoundPolicy     `json:"bounds"`

	catSet map[string]struct{}
}

// Validate checks internal consistency of the manifest.
func (m *Manifest) Validate() error {
	if m.ModelVersion == "" {
		return fmt.Errorf("manifest: model_version is required")
	}
	if len(m.FeatureCols) == 0 {
		return fmt.Errorf("manifest: feature_cols is empty")
	}
	seen := make(map[string]struct{}, len(m.FeatureCols))
	for _, col := range m.FeatureCols {
		if _, dup := seen[col]; dup {
			return fmt.Errorf("manifest: duplicate feature %q", col)
		}
		seen[col] = struct{}{}
	}
	m.catSet = make(map[string]struct{}, len(m.CatFeatures))
	for _, cat := range m.CatFeatures {
		if _, ok := seen[cat]; !ok {
			return fmt.Errorf("manifest: categorical feature %q not in feature_cols", cat)
		}
		m.catSet[cat] = struct{}{}
	}
	switch m.TargetTransform {
	case TransformNone, TransformLog:
	case "":
		m.TargetTransform = TransformNone
	default:
		return fmt.Errorf("manifest: unknown target_transform %q", m.TargetTransform)
	}
	return m.Bounds.Validate()
}

// InverseTransform maps a raw model-scale value back to currency units.
func (m *Manifest) InverseTransform(raw float64) float64 {
	if m.TargetTransform == TransformLog {
		return math.Exp(raw)
	}
	return raw
}

// IsCategorical reports whether a feature key is categorical-encoded.
// The lookup set is built by Validate; before validation it falls back to a
// linear scan.
func (m *Manifest) IsCategorical(key string) bool {
	if m.catSet != nil {
		_, ok := m.catSet[key]
		return ok
	}
	for _, c := range m.CatFeatures {
		if c == key {
			return true
		}
	}
	return false
}
