package usecase

import (
	"context"
	"log/slog"

	"github.com/Woolfer0097/AlfaHackathon/internal/application/dto"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/port"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/service"
)

// ExplainPrediction is the use case for the per-feature attribution view.
type ExplainPrediction struct {
	resolver *service.FeatureResolver
	model    port.IncomeModel
	builder  *service.ExplanationBuilder
	logger   *slog.Logger
}

// NewExplainPrediction creates a new ExplainPrediction use case.
func NewExplainPrediction(
	resolver *service.FeatureResolver,
	incomeModel port.IncomeModel,
	builder *service.ExplanationBuilder,
	logger *slog.Logger,
) *ExplainPrediction {
	return &ExplainPrediction{
		resolver: resolver,
		model:    incomeModel,
		builder:  builder,
		logger:   logger,
	}
}

// Execute attributes the client's prediction to individual features and
// renders the explanation bundle. Missing descriptions degrade the display;
// they never fail the request.
func (uc *ExplainPrediction) Execute(ctx context.Context, clientID int64) (dto.ExplanationResponse, error) {
	vector, err := uc.resolver.Resolve(ctx, clientID)
	if err != nil {
		return dto.ExplanationResponse{}, err
	}

	attribution, err := uc.model.Attribute(vector)
	if err != nil {
		return dto.ExplanationResponse{}, err
	}

	descriptions, err := uc.resolver.Descriptions(ctx)
	if err != nil {
		uc.logger.Warn("feature descriptions unavailable, explaining without them",
			slog.String("error", err.Error()),
		)
		descriptions = map[string]string{}
	}

	explanation := uc.builder.Build(attribution, vector, descriptions)
	return dto.FromExplanation(explanation), nil
}
