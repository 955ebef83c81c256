package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/service"
)

func numRow(vals map[string]float64) model.FeatureRow {
	row := make(model.FeatureRow, len(vals))
	for k, v := range vals {
		row[k] = model.NumericValue(v)
	}
	return row
}

func TestRiskScorerEmptyRowDefaultsToMedium(t *testing.T) {
	scorer := service.NewRiskScorer()

	out := scorer.Score(model.FeatureRow{})

	// income 0.5*0.30 + age 0.5*0.10 + overdue 0.3*0.25 +
	// loans 0.5*0.15 + bureau 0.5*0.10 + card 0.3*0.10
	assert.InDelta(t, 0.43, out.Score, 1e-9)
	assert.Len(t, out.Factors, 6)
}

func TestRiskScorerLowRiskClient(t *testing.T) {
	scorer := service.NewRiskScorer()

	out := scorer.Score(numRow(map[string]float64{
		"incomeValue":                   250_000,
		"age":                           35,
		"hdb_bki_total_max_overdue_sum": 0,
		"loan_cnt":                      1,
		"other_credits_count":           0,
		"bki_total_products":            2,
		"hdb_bki_total_cc_max_overdue":  0,
	}))

	assert.InDelta(t, 0.305, out.Score, 1e-9)
}

func TestRiskScorerHighRiskClient(t *testing.T) {
	scorer := service.NewRiskScorer()

	out := scorer.Score(numRow(map[string]float64{
		"incomeValue":                   25_000,
		"age":                           20,
		"hdb_bki_total_max_overdue_sum": 150_000,
		"loan_cnt":                      5,
		"other_credits_count":           2,
		"bki_total_products":            8,
		"hdb_bki_total_cc_max_overdue":  60_000,
	}))

	assert.InDelta(t, 0.77, out.Score, 1e-9)
}

func TestRiskScorerClampsAndRounds(t *testing.T) {
	scorer := service.NewRiskScorer()

	out := scorer.Score(numRow(map[string]float64{"incomeValue": 45_000}))

	assert.GreaterOrEqual(t, out.Score, 0.0)
	assert.LessOrEqual(t, out.Score, 1.0)
	// Three decimal places.
	assert.Equal(t, out.Score, float64(int(out.Score*1000))/1000)
}

func TestRiskScorerIgnoresMissingValues(t *testing.T) {
	scorer := service.NewRiskScorer()

	row := model.FeatureRow{
		"incomeValue": model.MissingNumeric(),
	}
	out := scorer.Score(row)

	// A NULL income is treated as unknown, not as zero.
	assert.InDelta(t, 0.43, out.Score, 1e-9)
}

func TestRiskScorerOverdueFallbackColumns(t *testing.T) {
	scorer := service.NewRiskScorer()

	primary := scorer.Score(numRow(map[string]float64{"hdb_bki_total_max_overdue_sum": 60_000}))
	fallback := scorer.Score(numRow(map[string]float64{"ovrd_sum": 60_000}))

	assert.Equal(t, primary.Score, fallback.Score)
}
