package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Woolfer0097/AlfaHackathon/internal/application/usecase"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/service"
)

func attributingModel(t *testing.T) *mockIncomeModel {
	t.Helper()
	return &mockIncomeModel{
		manifest:     testManifest(t),
		modelVersion: "2025-06-01",
		attributeFn: func(model.FeatureVector) (model.AttributionResult, error) {
			return model.AttributionResult{
				BaseValue: 11.0,
				Contributions: []model.Contribution{
					{FeatureKey: "incomeValue", Value: 0.3},
					{FeatureKey: "age", Value: -0.05},
					{FeatureKey: "adminarea", Value: 0.1},
				},
			}, nil
		},
	}
}

func TestExplainPredictionHappyPath(t *testing.T) {
	features := &mockFeatureRepository{rows: map[int64]model.FeatureRow{42: fullRow()}}
	descriptions := &mockDescriptionRepository{descriptions: map[string]string{
		"incomeValue": "Declared monthly income",
	}}

	uc := usecase.NewExplainPrediction(
		newResolver(t, features, descriptions),
		attributingModel(t),
		service.NewExplanationBuilder(),
		discardLogger(),
	)

	resp, err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 11.0, resp.BaseValue)
	require.Len(t, resp.Features, 3)

	// Ranked by absolute contribution.
	assert.Equal(t, "incomeValue", resp.Features[0].FeatureName)
	assert.Equal(t, "positive", resp.Features[0].Direction)
	assert.True(t, resp.Features[0].HasDescription)
	assert.Equal(t, "adminarea", resp.Features[1].FeatureName)
	assert.Equal(t, "age", resp.Features[2].FeatureName)
	assert.Equal(t, "negative", resp.Features[2].Direction)
	assert.False(t, resp.Features[2].HasDescription)

	assert.Contains(t, resp.TextExplanation, "Declared monthly income increased the estimate")
}

func TestExplainPredictionDescriptionsUnavailable(t *testing.T) {
	features := &mockFeatureRepository{rows: map[int64]model.FeatureRow{42: fullRow()}}
	descriptions := &mockDescriptionRepository{err: fmt.Errorf("connection refused")}

	uc := usecase.NewExplainPrediction(
		newResolver(t, features, descriptions),
		attributingModel(t),
		service.NewExplanationBuilder(),
		discardLogger(),
	)

	resp, err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)

	// The explanation still renders, just without descriptions.
	require.Len(t, resp.Features, 3)
	for _, f := range resp.Features {
		assert.False(t, f.HasDescription)
	}
}

func TestExplainPredictionUnknownClient(t *testing.T) {
	uc := usecase.NewExplainPrediction(
		newResolver(t, &mockFeatureRepository{rows: map[int64]model.FeatureRow{}}, nil),
		attributingModel(t),
		service.NewExplanationBuilder(),
		discardLogger(),
	)

	_, err := uc.Execute(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrClientNotFound)
}

func TestExplainPredictionModelUnavailable(t *testing.T) {
	features := &mockFeatureRepository{rows: map[int64]model.FeatureRow{42: fullRow()}}
	incomeModel := &mockIncomeModel{
		manifest: testManifest(t),
		attributeFn: func(model.FeatureVector) (model.AttributionResult, error) {
			return model.AttributionResult{}, fmt.Errorf("%w: artifact not loaded", model.ErrModelUnavailable)
		},
	}

	uc := usecase.NewExplainPrediction(
		newResolver(t, features, nil),
		incomeModel,
		service.NewExplanationBuilder(),
		discardLogger(),
	)

	_, err := uc.Execute(context.Background(), 42)
	assert.ErrorIs(t, err, model.ErrModelUnavailable)
}
