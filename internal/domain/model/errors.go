package model

import "errors"

// Typed errors for the scoring engine. They are returned up to the transport
// boundary and mapped to response codes there; none of them is used for
// normal control flow (an empty recommendation list is a valid result, not
// an error).
var (
	// ErrClientNotFound means no feature row exists for the client id.
	ErrClientNotFound = errors.New("client not found")

	// ErrSchemaMismatch means the stored feature row has drifted from the
	// model manifest (a declared feature is missing and has no default).
	ErrSchemaMismatch = errors.New("feature schema mismatch")

	// ErrModelUnavailable means the model artifact failed to load at startup.
	// Scoring endpoints refuse to serve while liveness stays up.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrPredictionFailed means inference failed at runtime. Inference is
	// deterministic, so the failure is surfaced rather than retried.
	ErrPredictionFailed = errors.New("prediction failed")

	// ErrMetricsUnavailable means the metrics source file is missing or
	// unreadable. Callers degrade the monitoring view instead of crashing.
	ErrMetricsUnavailable = errors.New("model metrics unavailable")
)
