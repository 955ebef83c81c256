package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/service"
)

func TestApplyBoundsMultiplicative(t *testing.T) {
	policy := model.BoundPolicy{Type: model.BoundMultiplicative, Lower: 0.8, Upper: 1.2}

	lower, upper := service.ApplyBounds(policy, 100_000)

	assert.InDelta(t, 80_000, lower, 1e-9)
	assert.InDelta(t, 120_000, upper, 1e-9)
}

func TestApplyBoundsAdditive(t *testing.T) {
	policy := model.BoundPolicy{Type: model.BoundAdditive, Lower: 5_000, Upper: 10_000}

	lower, upper := service.ApplyBounds(policy, 100_000)

	assert.InDelta(t, 95_000, lower, 1e-9)
	assert.InDelta(t, 110_000, upper, 1e-9)
}

func TestApplyBoundsNeverInverts(t *testing.T) {
	// A negative point estimate flips multiplicative bounds; the interval
	// must still contain the estimate.
	policy := model.BoundPolicy{Type: model.BoundMultiplicative, Lower: 0.8, Upper: 1.2}

	lower, upper := service.ApplyBounds(policy, -10_000)

	assert.LessOrEqual(t, lower, -10_000.0)
	assert.GreaterOrEqual(t, upper, -10_000.0)
}
