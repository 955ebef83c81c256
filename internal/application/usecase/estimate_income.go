package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Woolfer0097/AlfaHackathon/internal/application/dto"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/event"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/port"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/service"
)

// EstimateIncome is the use case for serving a bounded income prediction.
type EstimateIncome struct {
	resolver  *service.FeatureResolver
	model     port.IncomeModel
	logs      port.PredictionLogRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewEstimateIncome creates a new EstimateIncome use case.
func NewEstimateIncome(
	resolver *service.FeatureResolver,
	incomeModel port.IncomeModel,
	logs port.PredictionLogRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *EstimateIncome {
	return &EstimateIncome{
		resolver:  resolver,
		model:     incomeModel,
		logs:      logs,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute loads the client's features, runs the model, derives the bounded
// estimate, appends the audit log entry, and publishes the scoring event.
// The log append is part of the contract and its failure fails the request;
// event publishing is best-effort.
func (uc *EstimateIncome) Execute(ctx context.Context, clientID int64, requestID, source string) (dto.IncomeEstimateResponse, error) {
	// 1. Load the raw row once; the vector and the declared income both come
	// from it.
	row, err := uc.resolver.Row(ctx, clientID)
	if err != nil {
		return dto.IncomeEstimateResponse{}, err
	}

	vector, err := uc.resolver.Vectorize(clientID, row)
	if err != nil {
		return dto.IncomeEstimateResponse{}, err
	}

	// 2. Run the model and map the raw prediction back to currency units.
	raw, err := uc.model.Predict(vector)
	if err != nil {
		return dto.IncomeEstimateResponse{}, err
	}
	manifest := uc.model.Manifest()
	predicted := manifest.InverseTransform(raw)
	lower, upper := service.ApplyBounds(manifest.Bounds, predicted)

	estimate := model.IncomeEstimate{
		PredictedIncome: predicted,
		LowerBound:      lower,
		UpperBound:      upper,
		BaseIncome:      declaredIncome(row),
		ModelVersion:    uc.model.Version(),
	}
	if err := estimate.Validate(); err != nil {
		return dto.IncomeEstimateResponse{}, fmt.Errorf("%w: %v", model.ErrPredictionFailed, err)
	}

	// 3. Append the audit log entry. Repeated scoring appends new rows.
	entry := model.NewPredictionLogEntry(clientID, predicted, estimate.ModelVersion, requestID, source)
	if err := uc.logs.Append(ctx, entry); err != nil {
		return dto.IncomeEstimateResponse{}, fmt.Errorf("append prediction log: %w", err)
	}

	// 4. Publish the domain event. A broker outage must not fail scoring.
	evt := event.NewIncomeEstimated(clientID, predicted, lower, upper, estimate.ModelVersion, time.Now().UTC())
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.Warn("failed to publish income estimated event",
			slog.Int64("client_id", clientID),
			slog.String("error", err.Error()),
		)
	}

	return dto.FromEstimate(estimate), nil
}

// declaredIncome extracts the client's self-declared income from the row, if
// present and not missing.
func declaredIncome(row model.FeatureRow) *float64 {
	v, ok := row["incomeValue"]
	if !ok || v.Kind != model.FeatureNumeric || v.IsMissing() {
		return nil
	}
	income := v.Num
	return &income
}
