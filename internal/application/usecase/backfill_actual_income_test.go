package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Woolfer0097/AlfaHackathon/internal/application/usecase"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
)

func TestBackfillActualIncome(t *testing.T) {
	features := &mockFeatureRepository{rows: map[int64]model.FeatureRow{42: fullRow()}}
	logs := &mockPredictionLogRepository{backfilled: 3}

	uc := usecase.NewBackfillActualIncome(newResolver(t, features, nil), logs, discardLogger())

	resp, err := uc.Execute(context.Background(), 42, 105_000)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ClientID)
	assert.Equal(t, int64(3), resp.RowsUpdated)
	assert.Equal(t, 105_000.0, logs.lastBackfill)
}

func TestBackfillActualIncomeNoPredictions(t *testing.T) {
	features := &mockFeatureRepository{rows: map[int64]model.FeatureRow{42: fullRow()}}
	logs := &mockPredictionLogRepository{backfilled: 0}

	uc := usecase.NewBackfillActualIncome(newResolver(t, features, nil), logs, discardLogger())

	resp, err := uc.Execute(context.Background(), 42, 105_000)
	require.NoError(t, err)
	assert.Zero(t, resp.RowsUpdated)
}

func TestBackfillActualIncomeUnknownClient(t *testing.T) {
	features := &mockFeatureRepository{rows: map[int64]model.FeatureRow{}}
	logs := &mockPredictionLogRepository{}

	uc := usecase.NewBackfillActualIncome(newResolver(t, features, nil), logs, discardLogger())

	_, err := uc.Execute(context.Background(), 999, 105_000)
	assert.ErrorIs(t, err, model.ErrClientNotFound)
}

func TestBackfillActualIncomeStoreFailure(t *testing.T) {
	features := &mockFeatureRepository{rows: map[int64]model.FeatureRow{42: fullRow()}}
	logs := &mockPredictionLogRepository{backfillErr: fmt.Errorf("connection refused")}

	uc := usecase.NewBackfillActualIncome(newResolver(t, features, nil), logs, discardLogger())

	_, err := uc.Execute(context.Background(), 42, 105_000)
	assert.ErrorContains(t, err, "backfill actual income")
}

func TestGetClientProfile(t *testing.T) {
	features := &mockFeatureRepository{rows: map[int64]model.FeatureRow{42: fullRow()}}

	uc := newProfileUC(t, features)

	resp, err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 35, resp.Age)
	assert.Equal(t, "Tatarstan", resp.Region)
	assert.Equal(t, "Standard", resp.Segment)
	require.NotNil(t, resp.IncomeValue)
	assert.Equal(t, 120_000.0, *resp.IncomeValue)
}

func TestGetClientProfileUnknownClient(t *testing.T) {
	uc := newProfileUC(t, &mockFeatureRepository{rows: map[int64]model.FeatureRow{}})

	_, err := uc.Execute(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrClientNotFound)
}
