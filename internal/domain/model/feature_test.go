package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
)

func TestFeatureValueMissing(t *testing.T) {
	assert.True(t, model.MissingNumeric().IsMissing())
	assert.True(t, model.CategoricalValue("").IsMissing())
	assert.False(t, model.NumericValue(0).IsMissing())
	assert.False(t, model.CategoricalValue("Moscow").IsMissing())
}

func TestFeatureValueDisplay(t *testing.T) {
	assert.Equal(t, "42", model.NumericValue(42).Display())
	assert.Equal(t, "42.5", model.NumericValue(42.5).Display())
	assert.Equal(t, "Moscow", model.CategoricalValue("Moscow").Display())
	assert.Equal(t, "", model.MissingNumeric().Display())
}

func TestNewFeatureVector(t *testing.T) {
	v, err := model.NewFeatureVector(
		[]string{"age", "city"},
		[]model.FeatureValue{model.NumericValue(35), model.CategoricalValue("Kazan")},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, v.Len())
	assert.Equal(t, "age", v.KeyAt(0))
	assert.Equal(t, 35.0, v.At(0).Num)

	city, ok := v.Get("city")
	require.True(t, ok)
	assert.Equal(t, "Kazan", city.Cat)

	_, ok = v.Get("income")
	assert.False(t, ok)
}

func TestNewFeatureVectorLengthMismatch(t *testing.T) {
	_, err := model.NewFeatureVector([]string{"age"}, nil)
	assert.Error(t, err)
}

func TestPredictionLogBackfill(t *testing.T) {
	entry := model.NewPredictionLogEntry(42, 95_000, "2025-06-01", "req-1", "dashboard")
	require.Nil(t, entry.ActualIncome)

	entry.Backfill(100_000)

	require.NotNil(t, entry.ActualIncome)
	require.NotNil(t, entry.PredictionError)
	assert.Equal(t, 100_000.0, *entry.ActualIncome)
	assert.InDelta(t, 5_000.0, *entry.PredictionError, 1e-9)
}

func TestIncomeEstimateValidate(t *testing.T) {
	ok := model.IncomeEstimate{PredictedIncome: 100, LowerBound: 80, UpperBound: 120}
	assert.NoError(t, ok.Validate())

	inverted := model.IncomeEstimate{PredictedIncome: 100, LowerBound: 120, UpperBound: 80}
	assert.Error(t, inverted.Validate())
}
