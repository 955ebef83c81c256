package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// PredictionLogEntry is one scoring event in the append-only audit log.
// Repeated scoring of the same client appends new rows on purpose. The only
// later mutation is back-filling ActualIncome, which also sets
// PredictionError.
type PredictionLogEntry struct {
	ID              uuid.UUID
	ClientID        int64
	PredictedIncome float64
	ActualIncome    *float64
	PredictionError *float64
	ModelVersion    string
	RequestID       string
	Source          string
	PredictedAt     time.Time
}

// NewPredictionLogEntry creates a log entry for a just-served prediction.
func NewPredictionLogEntry(clientID int64, predictedIncome float64, modelVersion, requestID, source string) PredictionLogEntry {
	return PredictionLogEntry{
		ID:              uuid.New(),
		ClientID:        clientID,
		PredictedIncome: predictedIncome,
		ModelVersion:    modelVersion,
		RequestID:       requestID,
		Source:          source,
		PredictedAt:     time.Now().UTC(),
	}
}

// Backfill records the observed income and computes the absolute error.
func (e *PredictionLogEntry) Backfill(actual float64) {
	err := math.Abs(e.PredictedIncome - actual)
	e.ActualIncome = &actual
	e.PredictionError = &err
}
