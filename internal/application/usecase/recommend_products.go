package usecase

import (
	"context"
	"log/slog"

	"github.com/Woolfer0097/AlfaHackathon/internal/application/dto"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/port"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/service"
)

// RecommendProducts is the use case for rule-based product offers.
type RecommendProducts struct {
	resolver *service.FeatureResolver
	model    port.IncomeModel
	profiles *service.ProfileBuilder
	engine   *service.RecommendationEngine
	logger   *slog.Logger
}

// NewRecommendProducts creates a new RecommendProducts use case.
func NewRecommendProducts(
	resolver *service.FeatureResolver,
	incomeModel port.IncomeModel,
	profiles *service.ProfileBuilder,
	engine *service.RecommendationEngine,
	logger *slog.Logger,
) *RecommendProducts {
	return &RecommendProducts{
		resolver: resolver,
		model:    incomeModel,
		profiles: profiles,
		engine:   engine,
		logger:   logger,
	}
}

// Execute derives product offers for the client. Recommendations fail only
// when the client is unknown: if the model cannot score the row, the rules
// fall back to the client's declared income so the dashboard still gets
// offers.
func (uc *RecommendProducts) Execute(ctx context.Context, clientID int64) ([]dto.RecommendationResponse, error) {
	row, err := uc.resolver.Row(ctx, clientID)
	if err != nil {
		return nil, err
	}

	profile := uc.profiles.Build(clientID, row)

	income := 0.0
	if profile.IncomeValue != nil {
		income = *profile.IncomeValue
	}
	if predicted, err := uc.predict(clientID, row); err != nil {
		uc.logger.Warn("scoring failed, recommending on declared income",
			slog.Int64("client_id", clientID),
			slog.String("error", err.Error()),
		)
	} else {
		income = predicted
	}

	recs := uc.engine.Recommend(service.RecommendationInput{
		Profile:         profile,
		PredictedIncome: income,
	})
	return dto.FromRecommendations(recs), nil
}

// predict scores the already-loaded row without a second repository hit.
func (uc *RecommendProducts) predict(clientID int64, row model.FeatureRow) (float64, error) {
	vector, err := uc.resolver.Vectorize(clientID, row)
	if err != nil {
		return 0, err
	}
	raw, err := uc.model.Predict(vector)
	if err != nil {
		return 0, err
	}
	return uc.model.Manifest().InverseTransform(raw), nil
}
