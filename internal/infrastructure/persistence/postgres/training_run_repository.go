package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
)

// TrainingRunRepository implements port.TrainingRunRepository over the
// append-only training_runs table. The engine only reads this history; the
// training pipeline appends to it.
type TrainingRunRepository struct {
	pool *pgxpool.Pool
}

// NewTrainingRunRepository creates a PostgreSQL-backed training-run reader.
func NewTrainingRunRepository(pool *pgxpool.Pool) *TrainingRunRepository {
	return &TrainingRunRepository{pool: pool}
}

// History returns all training runs in chronological order.
func (r *TrainingRunRepository) History(ctx context.Context) ([]model.TrainingRun, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT model_version, trained_at, train_samples, valid_samples, rmse, mae, r2
		FROM training_runs
		ORDER BY trained_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query training runs: %w", err)
	}
	defer rows.Close()

	var runs []model.TrainingRun
	for rows.Next() {
		var run model.TrainingRun
		if err := rows.Scan(
			&run.ModelVersion, &run.TrainedAt,
			&run.TrainSamples, &run.ValidSamples,
			&run.RMSE, &run.MAE, &run.R2,
		); err != nil {
			return nil, fmt.Errorf("scan training run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read training runs: %w", err)
	}

	return runs, nil
}
