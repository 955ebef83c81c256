package service

import (
	"math"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
)

// RiskFactor is one weighted component of the risk score.
type RiskFactor struct {
	Name   string
	Risk   float64
	Weight float64
}

// RiskOutput contains the result of risk scoring.
type RiskOutput struct {
	Score   float64 // 0.0 (low risk) .. 1.0 (high risk), rounded to 3 decimals
	Factors []RiskFactor
}

// RiskScorer is a domain service that calculates a client risk score from a
// weighted set of rule-based factors: income level, age, overdue history,
// open loans, bureau products, and card overdue amounts.
type RiskScorer struct{}

// NewRiskScorer creates a new RiskScorer instance.
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{}
}

// Score evaluates a client's risk from the raw feature row. Every factor
// defaults to medium risk when its inputs are absent, so a sparse row still
// yields a usable score.
func (s *RiskScorer) Score(row model.FeatureRow) RiskOutput {
	factors := []RiskFactor{
		{Name: "income", Risk: incomeRisk(row), Weight: 0.30},
		{Name: "age", Risk: ageRisk(row), Weight: 0.10},
		{Name: "overdue", Risk: overdueRisk(row), Weight: 0.25},
		{Name: "loans", Risk: loanRisk(row), Weight: 0.15},
		{Name: "bureau", Risk: bureauRisk(row), Weight: 0.10},
		{Name: "card_overdue", Risk: cardOverdueRisk(row), Weight: 0.10},
	}

	var weightedSum, totalWeight float64
	for _, f := range factors {
		weightedSum += f.Risk * f.Weight
		totalWeight += f.Weight
	}

	score := weightedSum / totalWeight
	score = math.Max(0, math.Min(1, score))
	score = math.Round(score*1000) / 1000

	return RiskOutput{Score: score, Factors: factors}
}

// numeric returns the first present numeric value among the given keys.
func numeric(row model.FeatureRow, keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := row[key]; ok && v.Kind == model.FeatureNumeric && !v.IsMissing() {
			return v.Num, true
		}
	}
	return 0, false
}

func incomeRisk(row model.FeatureRow) float64 {
	income, ok := numeric(row, "incomeValue")
	if !ok {
		return 0.5
	}
	switch {
	case income < 30_000:
		return 0.8
	case income < 50_000:
		return 0.7
	case income < 100_000:
		return 0.5
	case income < 200_000:
		return 0.3
	default:
		return 0.2
	}
}

func ageRisk(row model.FeatureRow) float64 {
	age, ok := numeric(row, "age")
	if !ok {
		return 0.5
	}
	switch {
	case age < 22:
		return 0.6
	case age < 30:
		return 0.5
	case age < 60:
		return 0.4
	default:
		return 0.5
	}
}

func overdueRisk(row model.FeatureRow) float64 {
	overdue, ok := numeric(row, "hdb_bki_total_max_overdue_sum", "ovrd_sum", "hdb_ovrd_sum")
	if !ok || overdue <= 0 {
		return 0.3
	}
	switch {
	case overdue > 100_000:
		return 0.9
	case overdue > 50_000:
		return 0.8
	case overdue > 20_000:
		return 0.6
	case overdue > 5_000:
		return 0.5
	default:
		return 0.4
	}
}

func loanRisk(row model.FeatureRow) float64 {
	loans, _ := numeric(row, "loan_cnt")
	other, _ := numeric(row, "other_credits_count")
	total := loans + other

	switch {
	case total == 0:
		return 0.5
	case total == 1:
		return 0.4
	case total <= 3:
		return 0.5
	case total <= 5:
		return 0.6
	default:
		return 0.7
	}
}

func bureauRisk(row model.FeatureRow) float64 {
	products, ok := numeric(row, "bki_total_products", "hdb_bki_total_products")
	if !ok || products == 0 {
		return 0.5
	}
	switch {
	case products <= 2:
		return 0.4
	case products <= 5:
		return 0.5
	default:
		return 0.6
	}
}

func cardOverdueRisk(row model.FeatureRow) float64 {
	overdue, ok := numeric(row, "hdb_bki_total_cc_max_overdue", "hdb_bki_active_cc_max_overdue")
	if !ok || overdue <= 0 {
		return 0.3
	}
	switch {
	case overdue > 50_000:
		return 0.8
	case overdue > 20_000:
		return 0.7
	case overdue > 5_000:
		return 0.6
	default:
		return 0.5
	}
}
