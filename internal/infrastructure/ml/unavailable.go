package ml

import (
	"fmt"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
)

// Unavailable is the IncomeModel served when the artifact failed to load at
// startup. Every scoring call reports model.ErrModelUnavailable while the
// process keeps serving liveness and read-only endpoints. Meta carries the
// manifest when it loaded even though the artifact did not, so feature
// lookups and the profile endpoint keep working.
type Unavailable struct {
	Reason error
	Meta   *model.Manifest
}

// Version returns an empty version; no artifact is loaded.
func (u Unavailable) Version() string { return "" }

// Manifest returns the separately loaded manifest, or an empty one when the
// manifest itself was unreadable.
func (u Unavailable) Manifest() *model.Manifest {
	if u.Meta != nil {
		return u.Meta
	}
	return &model.Manifest{}
}

// Predict always fails with ErrModelUnavailable.
func (u Unavailable) Predict(model.FeatureVector) (float64, error) {
	return 0, fmt.Errorf("%w: %v", model.ErrModelUnavailable, u.Reason)
}

// Attribute always fails with ErrModelUnavailable.
func (u Unavailable) Attribute(model.FeatureVector) (model.AttributionResult, error) {
	return model.AttributionResult{}, fmt.Errorf("%w: %v", model.ErrModelUnavailable, u.Reason)
}
