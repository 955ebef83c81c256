package model

import (
	"fmt"
	"math"
)

// FeatureKind distinguishes numeric from categorical-encoded features.
type FeatureKind int

const (
	FeatureNumeric FeatureKind = iota
	FeatureCategorical
)

// FeatureValue is a single resolved feature value. Missing numeric values
// carry NaN; missing categorical values carry the empty string. The model
// adapter routes both down the tree's default branch.
type FeatureValue struct {
	Kind FeatureKind
	Num  float64
	Cat  string
}

// NumericValue builds a numeric FeatureValue.
func NumericValue(v float64) FeatureValue {
	return FeatureValue{Kind: FeatureNumeric, Num: v}
}

// MissingNumeric builds a missing numeric FeatureValue.
func MissingNumeric() FeatureValue {
	return FeatureValue{Kind: FeatureNumeric, Num: math.NaN()}
}

// CategoricalValue builds a categorical FeatureValue. Missing categoricals
// are represented as the empty string.
func CategoricalValue(v string) FeatureValue {
	return FeatureValue{Kind: FeatureCategorical, Cat: v}
}

// IsMissing reports whether the value is absent.
func (v FeatureValue) IsMissing() bool {
	if v.Kind == FeatureCategorical {
		return v.Cat == ""
	}
	return math.IsNaN(v.Num)
}

// Display returns the value formatted for explanation output.
func (v FeatureValue) Display() string {
	if v.IsMissing() {
		return ""
	}
	if v.Kind == FeatureCategorical {
		return v.Cat
	}
	if v.Num == math.Trunc(v.Num) && math.Abs(v.Num) < 1e15 {
		return fmt.Sprintf("%d", int64(v.Num))
	}
	return fmt.Sprintf("%g", v.Num)
}

// FeatureRow is a client's raw stored feature row keyed by feature name.
type FeatureRow map[string]FeatureValue

// FeatureVector is an ordered feature vector whose length and order match
// the manifest's declared feature list exactly.
type FeatureVector struct {
	keys  []string
	vals  []FeatureValue
	index map[string]int
}

// NewFeatureVector builds a vector from parallel key/value slices.
func NewFeatureVector(keys []string, vals []FeatureValue) (FeatureVector, error) {
	if len(keys) != len(vals) {
		return FeatureVector{}, fmt.Errorf("feature vector: %d keys but %d values", len(keys), len(vals))
	}
	index := make(map[string]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}
	return FeatureVector{keys: keys, vals: vals, index: index}, nil
}

// Len returns the number of features.
func (fv FeatureVector) Len() int { return len(fv.keys) }

// Keys returns the ordered feature keys.
func (fv FeatureVector) Keys() []string { return fv.keys }

// At returns the value at position i.
func (fv FeatureVector) At(i int) FeatureValue { return fv.vals[i] }

// KeyAt returns the feature key at position i.
func (fv FeatureVector) KeyAt(i int) string { return fv.keys[i] }

// Get returns the value for a feature key.
func (fv FeatureVector) Get(key string) (FeatureValue, bool) {
	i, ok := fv.index[key]
	if !ok {
		return FeatureValue{}, false
	}
	return fv.vals[i], true
}
