package service

import (
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
)

// ApplyBounds derives the uncertainty interval around a point estimate using
// the manifest's fixed bound policy. The policy is calibrated at training
// time; nothing here recomputes it from live data.
func ApplyBounds(policy model.BoundPolicy, predicted float64) (lower, upper float64) {
	switch policy.Type {
	case model.BoundAdditive:
		lower = predicted - policy.Lower
		upper = predicted + policy.Upper
	default: // multiplicative
		lower = predicted * policy.Lower
		upper = predicted * policy.Upper
	}

	if lower > predicted {
		lower = predicted
	}
	if upper < predicted {
		upper = predicted
	}
	return lower, upper
}
