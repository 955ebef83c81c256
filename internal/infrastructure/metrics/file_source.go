package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/port"
)

// FileSource implements port.MetricsSource over the metrics JSON file the
// training pipeline writes next to the model artifact. The file is re-read
// per call so a redeployed model's metrics show up without a restart.
type FileSource struct {
	path string
}

// NewFileSource creates a metrics source reading the given file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

type metricsFile struct {
	WMAEValidation    float64 `json:"wmae_validation"`
	TrainingRecords   int64   `json:"training_records"`
	ValidationRecords int64   `json:"validation_records"`
	Experiments       []struct {
		Name string   `json:"name"`
		WMAE float64  `json:"wmae"`
		MAE  *float64 `json:"mae,omitempty"`
		Date string   `json:"date,omitempty"`
	} `json:"experiments"`
	SegmentErrors []struct {
		Segment string   `json:"segment"`
		WMAE    float64  `json:"wmae"`
		MAE     *float64 `json:"mae,omitempty"`
	} `json:"segment_errors"`
}

// Snapshot reads the metrics file. A missing or malformed file wraps
// model.ErrMetricsUnavailable so the monitoring view degrades instead of
// crashing.
func (s *FileSource) Snapshot(_ context.Context) (port.MetricsSnapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return port.MetricsSnapshot{}, fmt.Errorf("%w: read %s: %v", model.ErrMetricsUnavailable, s.path, err)
	}

	var mf metricsFile
	if err := json.Unmarshal(raw, &mf); err != nil {
		return port.MetricsSnapshot{}, fmt.Errorf("%w: decode %s: %v", model.ErrMetricsUnavailable, s.path, err)
	}

	snap := port.MetricsSnapshot{
		WMAEValidation:    mf.WMAEValidation,
		TrainingRecords:   mf.TrainingRecords,
		ValidationRecords: mf.ValidationRecords,
	}
	for _, e := range mf.Experiments {
		snap.Experiments = append(snap.Experiments, model.Experiment{
			Name: e.Name, WMAE: e.WMAE, MAE: e.MAE, Date: e.Date,
		})
	}
	for _, se := range mf.SegmentErrors {
		snap.SegmentErrors = append(snap.SegmentErrors, model.SegmentError{
			Segment: se.Segment, WMAE: se.WMAE, MAE: se.MAE,
		})
	}

	return snap, nil
}
