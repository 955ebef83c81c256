package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
)

// PredictionLogRepository implements port.PredictionLogRepository over the
// append-only prediction_logs table. Concurrency safety for appends comes
// from the database itself; there is no in-process locking.
type PredictionLogRepository struct {
	pool *pgxpool.Pool
}

// NewPredictionLogRepository creates a PostgreSQL-backed prediction log.
func NewPredictionLogRepository(pool *pgxpool.Pool) *PredictionLogRepository {
	return &PredictionLogRepository{pool: pool}
}

// Append inserts a new log row. Rows are never updated in place by this
// method; every scoring event produces a fresh row.
func (r *PredictionLogRepository) Append(ctx context.Context, entry model.PredictionLogEntry) error {
	query := `
		INSERT INTO prediction_logs (
			id, client_id, predicted_income, actual_income, prediction_error,
			model_version, request_id, source, prediction_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.ClientID,
		entry.PredictedIncome,
		entry.ActualIncome,
		entry.PredictionError,
		entry.ModelVersion,
		entry.RequestID,
		entry.Source,
		entry.PredictedAt,
	)
	if err != nil {
		return fmt.Errorf("append prediction log: %w", err)
	}

	return nil
}

// CountAll returns the total number of predictions served.
func (r *PredictionLogRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM prediction_logs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count prediction logs: %w", err)
	}
	return count, nil
}

// BackfillActual records the observed income on every log row of a client
// and computes the absolute prediction error in the same statement.
func (r *PredictionLogRepository) BackfillActual(ctx context.Context, clientID int64, actual float64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE prediction_logs
		SET actual_income = $2,
			prediction_error = ABS(predicted_income - $2)
		WHERE client_id = $1
	`, clientID, actual)
	if err != nil {
		return 0, fmt.Errorf("backfill actual income: %w", err)
	}

	return tag.RowsAffected(), nil
}
