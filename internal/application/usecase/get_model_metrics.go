package usecase

import (
	"context"
	"log/slog"

	"github.com/Woolfer0097/AlfaHackathon/internal/application/dto"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/port"
)

// GetModelMetrics is the use case for the model monitoring view.
type GetModelMetrics struct {
	source port.MetricsSource
	logs   port.PredictionLogRepository
	runs   port.TrainingRunRepository
	logger *slog.Logger
}

// NewGetModelMetrics creates a new GetModelMetrics use case.
func NewGetModelMetrics(
	source port.MetricsSource,
	logs port.PredictionLogRepository,
	runs port.TrainingRunRepository,
	logger *slog.Logger,
) *GetModelMetrics {
	return &GetModelMetrics{
		source: source,
		logs:   logs,
		runs:   runs,
		logger: logger,
	}
}

// Execute aggregates the training-time metrics file, the served-prediction
// count, and the training-run history with its trend. The metrics file is the
// backbone of the view and its absence fails the request; the count and the
// history are supplementary and degrade to zero values with a warning.
func (uc *GetModelMetrics) Execute(ctx context.Context) (dto.ModelMetricsResponse, error) {
	snap, err := uc.source.Snapshot(ctx)
	if err != nil {
		return dto.ModelMetricsResponse{}, err
	}

	metrics := model.ModelMetrics{
		WMAEValidation:    snap.WMAEValidation,
		TrainingRecords:   snap.TrainingRecords,
		ValidationRecords: snap.ValidationRecords,
		Experiments:       snap.Experiments,
		SegmentErrors:     snap.SegmentErrors,
	}

	count, err := uc.logs.CountAll(ctx)
	if err != nil {
		uc.logger.Warn("prediction count unavailable", slog.String("error", err.Error()))
	} else {
		metrics.PredictionsCount = count
	}

	runs, err := uc.runs.History(ctx)
	if err != nil {
		uc.logger.Warn("training-run history unavailable", slog.String("error", err.Error()))
	} else {
		metrics.TrainingRuns = runs
		metrics.Trend = model.ComputeTrend(runs)
	}

	return dto.FromModelMetrics(metrics), nil
}
