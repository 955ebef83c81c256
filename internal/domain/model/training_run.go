package model

import "time"

// TrainingRun is one entry in the append-only training history. The engine
// only reads these; new runs are appended by the training pipeline.
type TrainingRun struct {
	ModelVersion string
	TrainedAt    time.Time
	TrainSamples int64
	ValidSamples int64
	RMSE         float64
	MAE          float64
	R2           float64
}
