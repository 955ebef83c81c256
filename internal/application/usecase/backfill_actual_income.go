package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Woolfer0097/AlfaHackathon/internal/application/dto"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/port"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/service"
)

// BackfillActualIncome is the use case for recording a client's observed
// income against earlier predictions.
type BackfillActualIncome struct {
	resolver *service.FeatureResolver
	logs     port.PredictionLogRepository
	logger   *slog.Logger
}

// NewBackfillActualIncome creates a new BackfillActualIncome use case.
func NewBackfillActualIncome(
	resolver *service.FeatureResolver,
	logs port.PredictionLogRepository,
	logger *slog.Logger,
) *BackfillActualIncome {
	return &BackfillActualIncome{
		resolver: resolver,
		logs:     logs,
		logger:   logger,
	}
}

// Execute stores the observed income on every logged prediction of the client
// and computes the absolute error per row. Backfilling a client with no
// logged predictions is a no-op with zero rows updated, not an error; an
// unknown client is.
func (uc *BackfillActualIncome) Execute(ctx context.Context, clientID int64, actual float64) (dto.BackfillResponse, error) {
	if _, err := uc.resolver.Row(ctx, clientID); err != nil {
		return dto.BackfillResponse{}, err
	}

	updated, err := uc.logs.BackfillActual(ctx, clientID, actual)
	if err != nil {
		return dto.BackfillResponse{}, fmt.Errorf("backfill actual income: %w", err)
	}

	uc.logger.Info("actual income backfilled",
		slog.Int64("client_id", clientID),
		slog.Int64("rows_updated", updated),
	)
	return dto.BackfillResponse{ClientID: clientID, RowsUpdated: updated}, nil
}
