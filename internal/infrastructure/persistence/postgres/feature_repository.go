package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
)

// FeatureRepository implements port.FeatureRepository over the
// client_features table. The table's columns are the manifest's feature
// list; this repository is read-only and owns no schema.
type FeatureRepository struct {
	pool     *pgxpool.Pool
	manifest *model.Manifest
}

// NewFeatureRepository creates a PostgreSQL-backed feature repository.
func NewFeatureRepository(pool *pgxpool.Pool, manifest *model.Manifest) *FeatureRepository {
	return &FeatureRepository{pool: pool, manifest: manifest}
}

// FeatureRow loads a client's raw feature row keyed by column name.
// NULL columns become missing values (NaN / empty string); columns outside
// the manifest are ignored.
func (r *FeatureRepository) FeatureRow(ctx context.Context, clientID int64) (model.FeatureRow, error) {
	// Without a manifest there is no id column to key on; refusing here keeps
	// a degraded startup from sending malformed identifiers to the database.
	if r.manifest == nil || r.manifest.IDCol == "" {
		return nil, fmt.Errorf("%w: no feature manifest loaded", model.ErrModelUnavailable)
	}

	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT * FROM client_features WHERE %s = $1`, pgx.Identifier{r.manifest.IDCol}.Sanitize()),
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("query client features: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("read client features: %w", err)
		}
		return nil, fmt.Errorf("%w: client %d", model.ErrClientNotFound, clientID)
	}

	values, err := rows.Values()
	if err != nil {
		return nil, fmt.Errorf("scan client features: %w", err)
	}

	row := make(model.FeatureRow, len(values))
	for i, fd := range rows.FieldDescriptions() {
		col := fd.Name
		if col == r.manifest.IDCol {
			continue
		}
		row[col] = toFeatureValue(values[i], r.manifest.IsCategorical(col))
	}

	return row, nil
}

// toFeatureValue converts a scanned database value into a FeatureValue of
// the manifest-declared kind.
func toFeatureValue(v any, categorical bool) model.FeatureValue {
	if categorical {
		if v == nil {
			return model.CategoricalValue("")
		}
		if s, ok := v.(string); ok {
			return model.CategoricalValue(s)
		}
		return model.CategoricalValue(fmt.Sprintf("%v", v))
	}

	switch n := v.(type) {
	case nil:
		return model.MissingNumeric()
	case float64:
		return model.NumericValue(n)
	case float32:
		return model.NumericValue(float64(n))
	case int64:
		return model.NumericValue(float64(n))
	case int32:
		return model.NumericValue(float64(n))
	case int16:
		return model.NumericValue(float64(n))
	case bool:
		if n {
			return model.NumericValue(1)
		}
		return model.NumericValue(0)
	default:
		return model.MissingNumeric()
	}
}
