package port

import (
	"context"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/pkg/events"
)

// FeatureRepository is the read-only port over stored client feature rows.
type FeatureRepository interface {
	// FeatureRow loads the raw feature row for a client. Returns
	// model.ErrClientNotFound when no row exists.
	FeatureRow(ctx context.Context, clientID int64) (model.FeatureRow, error)
}

// DescriptionRepository loads human-readable feature descriptions.
type DescriptionRepository interface {
	// Descriptions returns the full feature_key -> description mapping.
	// Absence of a description for a feature is a display degradation, not
	// an error.
	Descriptions(ctx context.Context) (map[string]string, error)
}

// PredictionLogRepository is the append-only port over the prediction log.
type PredictionLogRepository interface {
	// Append persists a new log entry. Appends never update in place.
	Append(ctx context.Context, entry model.PredictionLogEntry) error

	// CountAll returns the total number of predictions served.
	CountAll(ctx context.Context) (int64, error)

	// BackfillActual records the observed income on all log rows of a client
	// and computes the absolute prediction error. Returns the number of rows
	// updated.
	BackfillActual(ctx context.Context, clientID int64, actual float64) (int64, error)
}

// TrainingRunRepository reads the append-only training-run history.
type TrainingRunRepository interface {
	// History returns all training runs ordered chronologically.
	History(ctx context.Context) ([]model.TrainingRun, error)
}

// IncomeModel wraps the pretrained regression artifact. The loaded artifact
// is immutable after load and safe for concurrent read-only invocation.
type IncomeModel interface {
	// Version returns the artifact's model version.
	Version() string

	// Manifest returns the model metadata the artifact was trained against.
	Manifest() *model.Manifest

	// Predict returns the raw prediction in the model's native scale
	// (pre-bound, pre-inverse-transform).
	Predict(v model.FeatureVector) (float64, error)

	// Attribute returns the base value and ordered per-feature contributions
	// whose sum reconstructs the raw prediction.
	Attribute(v model.FeatureVector) (model.AttributionResult, error)
}

// MetricsSnapshot is the content of the externally produced metrics file.
type MetricsSnapshot struct {
	WMAEValidation    float64
	TrainingRecords   int64
	ValidationRecords int64
	Experiments       []model.Experiment
	SegmentErrors     []model.SegmentError
}

// MetricsSource reads the training-time metrics produced outside this
// service.
type MetricsSource interface {
	// Snapshot returns the current metrics file content. Returns an error
	// wrapping model.ErrMetricsUnavailable when the source is unreadable.
	Snapshot(ctx context.Context) (MetricsSnapshot, error)
}

// EventPublisher publishes domain events to the messaging infrastructure.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
