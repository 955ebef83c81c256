package model

// Experiment is a historical training experiment as recorded in the metrics
// source file.
type Experiment struct {
	Name string
	WMAE float64
	MAE  *float64
	Date string
}

// SegmentError is the validation error for one client segment.
type SegmentError struct {
	Segment string
	WMAE    float64
	MAE     *float64
}

// MetricTrend is the percentage change between the two most recent training
// runs. Negative RMSE/MAE percentages and positive R2 percentages are
// improvements.
type MetricTrend struct {
	RMSEPct float64
	MAEPct  float64
	R2Pct   float64
}

// ModelMetrics aggregates everything the monitoring view shows.
type ModelMetrics struct {
	WMAEValidation    float64
	TrainingRecords   int64
	ValidationRecords int64
	PredictionsCount  int64
	Experiments       []Experiment
	SegmentErrors     []SegmentError
	TrainingRuns      []TrainingRun
	Trend             *MetricTrend
}

// ComputeTrend derives the trend from a chronologically ordered training-run
// history. With fewer than two runs there is no trend; the result is nil,
// never a division by zero.
func ComputeTrend(runs []TrainingRun) *MetricTrend {
	if len(runs) < 2 {
		return nil
	}

	prev := runs[len(runs)-2]
	last := runs[len(runs)-1]

	return &MetricTrend{
		RMSEPct: percentChange(prev.RMSE, last.RMSE),
		MAEPct:  percentChange(prev.MAE, last.MAE),
		R2Pct:   percentChange(prev.R2, last.R2),
	}
}

func percentChange(prev, curr float64) float64 {
	if prev == 0 {
		return 0
	}
	return (curr - prev) / prev * 100
}
