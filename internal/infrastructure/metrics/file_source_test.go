package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/internal/infrastructure/metrics"
)

const metricsJSON = `{
  "wmae_validation": 0.2134,
  "training_records": 310000,
  "validation_records": 62000,
  "experiments": [
    {"name": "baseline", "wmae": 0.2512, "date": "2025-05-10"},
    {"name": "tuned depth", "wmae": 0.2134, "mae": 18450.2, "date": "2025-05-28"}
  ],
  "segment_errors": [
    {"segment": "Basic", "wmae": 0.31},
    {"segment": "VIP", "wmae": 0.12, "mae": 40210.5}
  ]
}`

func TestSnapshotReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")
	require.NoError(t, os.WriteFile(path, []byte(metricsJSON), 0o644))

	snap, err := metrics.NewFileSource(path).Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0.2134, snap.WMAEValidation)
	assert.Equal(t, int64(310_000), snap.TrainingRecords)
	assert.Equal(t, int64(62_000), snap.ValidationRecords)

	require.Len(t, snap.Experiments, 2)
	assert.Equal(t, "baseline", snap.Experiments[0].Name)
	assert.Nil(t, snap.Experiments[0].MAE)
	require.NotNil(t, snap.Experiments[1].MAE)
	assert.Equal(t, 18450.2, *snap.Experiments[1].MAE)

	require.Len(t, snap.SegmentErrors, 2)
	assert.Equal(t, "VIP", snap.SegmentErrors[1].Segment)
}

func TestSnapshotMissingFile(t *testing.T) {
	source := metrics.NewFileSource(filepath.Join(t.TempDir(), "absent.json"))

	_, err := source.Snapshot(context.Background())
	assert.ErrorIs(t, err, model.ErrMetricsUnavailable)
}

func TestSnapshotMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := metrics.NewFileSource(path).Snapshot(context.Background())
	assert.ErrorIs(t, err, model.ErrMetricsUnavailable)
}

func TestSnapshotPicksUpRewrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"wmae_validation": 0.30}`), 0o644))

	source := metrics.NewFileSource(path)
	snap, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.30, snap.WMAEValidation)

	require.NoError(t, os.WriteFile(path, []byte(`{"wmae_validation": 0.21}`), 0o644))
	snap, err = source.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.21, snap.WMAEValidation)
}
