package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/port"
)

// FeatureResolver turns a stored client feature row into a model-ready
// feature vector ordered exactly per the manifest, and serves the cached
// feature-description map. It is read-only; schema drift is caught here as a
// validated boundary check rather than deep inside scoring.
type FeatureResolver struct {
	features     port.FeatureRepository
	descriptions port.DescriptionRepository
	manifest     *model.Manifest
	logger       *slog.Logger

	descMu  sync.Mutex
	descMap map[string]string
}

// NewFeatureResolver creates a FeatureResolver bound to a manifest.
func NewFeatureResolver(
	features port.FeatureRepository,
	descriptions port.DescriptionRepository,
	manifest *model.Manifest,
	logger *slog.Logger,
) *FeatureResolver {
	return &FeatureResolver{
		features:     features,
		descriptions: descriptions,
		manifest:     manifest,
		logger:       logger,
	}
}

// Resolve loads the client's feature row and builds the ordered vector.
func (r *FeatureResolver) Resolve(ctx context.Context, clientID int64) (model.FeatureVector, error) {
	row, err := r.features.FeatureRow(ctx, clientID)
	if err != nil {
		return model.FeatureVector{}, err
	}
	return r.Vectorize(clientID, row)
}

// Vectorize builds the ordered vector from an already-loaded row. A manifest
// feature missing from the row entirely is a schema mismatch; a NULL value
// is a missing value and flows to the model's default branch.
func (r *FeatureResolver) Vectorize(clientID int64, row model.FeatureRow) (model.FeatureVector, error) {
	vals := make([]model.FeatureValue, 0, len(r.manifest.FeatureCols))
	var missing []string
	for _, key := range r.manifest.FeatureCols {
		v, ok := row[key]
		if !ok {
			missing = append(missing, key)
			continue
		}
		vals = append(vals, v)
	}

	if len(missing) > 0 {
		r.logger.Warn("feature row drifted from manifest",
			slog.Int64("client_id", clientID),
			slog.Int("missing_count", len(missing)),
		)
		return model.FeatureVector{}, fmt.Errorf("%w: row for client %d lacks features [%s]",
			model.ErrSchemaMismatch, clientID, strings.Join(missing, ", "))
	}

	return model.NewFeatureVector(r.manifest.FeatureCols, vals)
}

// Row loads the raw feature row without vectorizing it. Used by the profile
// builder and the risk scorer, which key on named attributes rather than the
// ordered vector.
func (r *FeatureResolver) Row(ctx context.Context, clientID int64) (model.FeatureRow, error) {
	return r.features.FeatureRow(ctx, clientID)
}

// Descriptions returns the feature_key -> description map, loaded once and
// cached for the process lifetime. A failed load is not cached, so a
// transient store error does not poison later requests. Description changes
// require a restart; hot reloading is a non-goal.
func (r *FeatureResolver) Descriptions(ctx context.Context) (map[string]string, error) {
	r.descMu.Lock()
	defer r.descMu.Unlock()

	if r.descMap != nil {
		return r.descMap, nil
	}

	m, err := r.descriptions.Descriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feature descriptions: %w", err)
	}
	if m == nil {
		m = make(map[string]string)
	}
	r.descMap = m
	r.logger.Info("feature descriptions loaded", slog.Int("count", len(m)))
	return r.descMap, nil
}
