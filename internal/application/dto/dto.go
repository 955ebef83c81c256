package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
)

// IncomeEstimateResponse is the JSON contract for a bounded income estimate.
type IncomeEstimateResponse struct {
	PredictedIncome float64  `json:"predicted_income"`
	LowerBound      float64  `json:"lower_bound"`
	UpperBound      float64  `json:"upper_bound"`
	BaseIncome      *float64 `json:"base_income,omitempty"`
	ModelVersion    string   `json:"model_version"`
}

// FromEstimate maps the domain estimate to its response DTO.
func FromEstimate(e model.IncomeEstimate) IncomeEstimateResponse {
	return IncomeEstimateResponse{
		PredictedIncome: e.PredictedIncome,
		LowerBound:      e.LowerBound,
		UpperBound:      e.UpperBound,
		BaseIncome:      e.BaseIncome,
		ModelVersion:    e.ModelVersion,
	}
}

// FeatureAttributionResponse is one explained feature contribution.
type FeatureAttributionResponse struct {
	FeatureName    string  `json:"feature_name"`
	Value          string  `json:"value"`
	Contribution   float64 `json:"contribution"`
	Direction      string  `json:"direction"`
	Description    string  `json:"description,omitempty"`
	HasDescription bool    `json:"has_description"`
}

// ExplanationResponse is the JSON contract for the explainability bundle.
type ExplanationResponse struct {
	TextExplanation string                       `json:"text_explanation"`
	BaseValue       float64                      `json:"base_value"`
	Features        []FeatureAttributionResponse `json:"features"`
}

// FromExplanation maps the domain explanation to its response DTO.
func FromExplanation(e model.Explanation) ExplanationResponse {
	features := make([]FeatureAttributionResponse, 0, len(e.Features))
	for _, f := range e.Features {
		features = append(features, FeatureAttributionResponse{
			FeatureName:    f.FeatureKey,
			Value:          f.RawValue,
			Contribution:   f.Contribution,
			Direction:      f.Direction.String(),
			Description:    f.Description,
			HasDescription: f.HasDescription,
		})
	}
	return ExplanationResponse{
		TextExplanation: e.Text,
		BaseValue:       e.BaseValue,
		Features:        features,
	}
}

// RecommendationResponse is one product offer.
type RecommendationResponse struct {
	ID          int              `json:"id"`
	ProductName string           `json:"product_name"`
	ProductType string           `json:"product_type"`
	Limit       *decimal.Decimal `json:"limit,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	Reason      string           `json:"reason"`
	Description string           `json:"description,omitempty"`
}

// FromRecommendations maps domain recommendations to response DTOs,
// preserving order.
func FromRecommendations(recs []model.Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendationResponse{
			ID:          r.ID,
			ProductName: r.ProductName,
			ProductType: r.ProductType.String(),
			Limit:       r.Limit,
			Rate:        r.Rate,
			Reason:      r.Reason,
			Description: r.Description,
		})
	}
	return out
}

// ClientProfileResponse is the dashboard's client detail view.
type ClientProfileResponse struct {
	ID          int64    `json:"id"`
	Age         int      `json:"age"`
	City        string   `json:"city"`
	Region      string   `json:"region"`
	Segment     string   `json:"segment"`
	Products    []string `json:"products"`
	RiskScore   float64  `json:"risk_score"`
	IncomeValue *float64 `json:"income_value,omitempty"`
}

// FromProfile maps the domain profile to its response DTO.
func FromProfile(p model.ClientProfile) ClientProfileResponse {
	products := make([]string, 0, len(p.Products))
	for _, held := range p.Products {
		products = append(products, held.String())
	}
	return ClientProfileResponse{
		ID:          p.ID,
		Age:         p.Age,
		City:        p.City,
		Region:      p.Region,
		Segment:     p.Segment.String(),
		Products:    products,
		RiskScore:   p.RiskScore,
		IncomeValue: p.IncomeValue,
	}
}

// ExperimentResponse is one historical experiment entry.
type ExperimentResponse struct {
	Name string   `json:"name"`
	WMAE float64  `json:"wmae"`
	MAE  *float64 `json:"mae,omitempty"`
	Date string   `json:"date,omitempty"`
}

// SegmentErrorResponse is the validation error for one client segment.
type SegmentErrorResponse struct {
	Segment string   `json:"segment"`
	WMAE    float64  `json:"wmae"`
	MAE     *float64 `json:"mae,omitempty"`
}

// TrainingRunResponse is one training-run history entry.
type TrainingRunResponse struct {
	ModelVersion string  `json:"model_version"`
	TrainedAt    string  `json:"trained_at"`
	TrainSamples int64   `json:"train_samples"`
	ValidSamples int64   `json:"valid_samples"`
	RMSE         float64 `json:"rmse"`
	MAE          float64 `json:"mae"`
	R2           float64 `json:"r2"`
}

// MetricTrendResponse is the percent change between the two latest runs.
type MetricTrendResponse struct {
	RMSEPct float64 `json:"rmse_pct"`
	MAEPct  float64 `json:"mae_pct"`
	R2Pct   float64 `json:"r2_pct"`
}

// ModelMetricsResponse is the monitoring view contract.
type ModelMetricsResponse struct {
	WMAEValidation    float64                `json:"wmae_validation"`
	TrainingRecords   int64                  `json:"training_records"`
	ValidationRecords int64                  `json:"validation_records"`
	PredictionsCount  int64                  `json:"predictions_count"`
	Experiments       []ExperimentResponse   `json:"experiments"`
	SegmentErrors     []SegmentErrorResponse `json:"segment_errors"`
	TrainingRuns      []TrainingRunResponse  `json:"training_runs"`
	Trend             *MetricTrendResponse   `json:"trend,omitempty"`
}

// FromModelMetrics maps the aggregated metrics to the response DTO.
func FromModelMetrics(m model.ModelMetrics) ModelMetricsResponse {
	resp := ModelMetricsResponse{
		WMAEValidation:    m.WMAEValidation,
		TrainingRecords:   m.TrainingRecords,
		ValidationRecords: m.ValidationRecords,
		PredictionsCount:  m.PredictionsCount,
		Experiments:       make([]ExperimentResponse, 0, len(m.Experiments)),
		SegmentErrors:     make([]SegmentErrorResponse, 0, len(m.SegmentErrors)),
		TrainingRuns:      make([]TrainingRunResponse, 0, len(m.TrainingRuns)),
	}
	for _, e := range m.Experiments {
		resp.Experiments = append(resp.Experiments, ExperimentResponse{
			Name: e.Name, WMAE: e.WMAE, MAE: e.MAE, Date: e.Date,
		})
	}
	for _, se := range m.SegmentErrors {
		resp.SegmentErrors = append(resp.SegmentErrors, SegmentErrorResponse{
			Segment: se.Segment, WMAE: se.WMAE, MAE: se.MAE,
		})
	}
	for _, run := range m.TrainingRuns {
		resp.TrainingRuns = append(resp.TrainingRuns, TrainingRunResponse{
			ModelVersion: run.ModelVersion,
			TrainedAt:    run.TrainedAt.Format("2006-01-02T15:04:05Z07:00"),
			TrainSamples: run.TrainSamples,
			ValidSamples: run.ValidSamples,
			RMSE:         run.RMSE,
			MAE:          run.MAE,
			R2:           run.R2,
		})
	}
	if m.Trend != nil {
		resp.Trend = &MetricTrendResponse{
			RMSEPct: m.Trend.RMSEPct,
			MAEPct:  m.Trend.MAEPct,
			R2Pct:   m.Trend.R2Pct,
		}
	}
	return resp
}

// BackfillResponse reports how many prediction-log rows were back-filled.
type BackfillResponse struct {
	ClientID    int64 `json:"client_id"`
	RowsUpdated int64 `json:"rows_updated"`
}
