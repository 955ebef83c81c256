package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DescriptionRepository implements port.DescriptionRepository over the
// feature_descriptions table.
type DescriptionRepository struct {
	pool *pgxpool.Pool
}

// NewDescriptionRepository creates a PostgreSQL-backed description repository.
func NewDescriptionRepository(pool *pgxpool.Pool) *DescriptionRepository {
	return &DescriptionRepository{pool: pool}
}

// Descriptions returns the full feature_name -> description map. Rows with
// a NULL description are skipped; absence is a display degradation.
func (r *DescriptionRepository) Descriptions(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT feature_name, description FROM feature_descriptions`)
	if err != nil {
		return nil, fmt.Errorf("query feature descriptions: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var (
			name string
			desc *string
		)
		if err := rows.Scan(&name, &desc); err != nil {
			return nil, fmt.Errorf("scan feature description: %w", err)
		}
		if desc != nil && *desc != "" {
			out[name] = *desc
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read feature descriptions: %w", err)
	}

	return out, nil
}
