package service

import (
	"github.com/shopspring/decimal"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/valueobject"
)

// RecommendationInput is the observable client state the rules key on.
type RecommendationInput struct {
	Profile         model.ClientProfile
	PredictedIncome float64
}

// recommendationRule is one eligibility rule: a predicate plus an offer
// builder. Rules are independent and evaluated in declared priority order;
// each contributes at most one recommendation.
type recommendationRule struct {
	name    string
	matches func(in RecommendationInput) bool
	build   func(in RecommendationInput) model.Recommendation
}

// RecommendationEngine derives product offers from client attributes, the
// predicted income, and the risk score. It is a pure function of its input:
// same client state, same output, no side effects. An empty result means no
// rule matched and is a valid outcome, not an error.
type RecommendationEngine struct {
	rules []recommendationRule
}

// NewRecommendationEngine creates the engine with the fixed rule order.
func NewRecommendationEngine() *RecommendationEngine {
	return &RecommendationEngine{rules: productRules()}
}

// Recommend evaluates every rule top to bottom and preserves rule order in
// the output; matches are never re-sorted by predicted value.
func (e *RecommendationEngine) Recommend(in RecommendationInput) []model.Recommendation {
	recs := make([]model.Recommendation, 0, len(e.rules))
	for i, rule := range e.rules {
		if rule.matches(in) {
			rec := rule.build(in)
			rec.ID = i + 1
			recs = append(recs, rec)
		}
	}
	return recs
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func productRules() []recommendationRule {
	return []recommendationRule{
		{
			name: "premium_credit_card",
			matches: func(in RecommendationInput) bool {
				return in.PredictedIncome >= 150_000 &&
					in.Profile.RiskScore < 0.35 &&
					!in.Profile.HasProduct(valueobject.ProductTypeCreditCard)
			},
			build: func(in RecommendationInput) model.Recommendation {
				return model.Recommendation{
					ProductName: "Premium credit card",
					ProductType: valueobject.ProductTypeCreditCard,
					Limit:       decimalPtr(decimal.NewFromInt(500_000)),
					Rate:        decimalPtr(decimal.NewFromFloat(12.5)),
					Reason:      "High predicted income and low risk score",
					Description: "Premium card with 5% cashback and a grace period",
				}
			},
		},
		{
			name: "standard_credit_card",
			matches: func(in RecommendationInput) bool {
				return in.PredictedIncome >= 50_000 && in.PredictedIncome < 150_000 &&
					in.Profile.RiskScore < 0.6 &&
					!in.Profile.HasProduct(valueobject.ProductTypeCreditCard)
			},
			build: func(in RecommendationInput) model.Recommendation {
				return model.Recommendation{
					ProductName: "Standard credit card",
					ProductType: valueobject.ProductTypeCreditCard,
					Limit:       decimalPtr(decimal.NewFromInt(200_000)),
					Rate:        decimalPtr(decimal.NewFromFloat(18.0)),
					Reason:      "Predicted income fits the standard card band",
					Description: "Credit card with baseline terms",
				}
			},
		},
		{
			name: "cash_loan",
			matches: func(in RecommendationInput) bool {
				return in.PredictedIncome >= 60_000 &&
					in.Profile.RiskScore < 0.5 &&
					!in.Profile.HasProduct(valueobject.ProductTypeCredit)
			},
			build: func(in RecommendationInput) model.Recommendation {
				limit := decimal.NewFromFloat(in.PredictedIncome).Mul(decimal.NewFromInt(12)).Round(0)
				return model.Recommendation{
					ProductName: "Cash loan",
					ProductType: valueobject.ProductTypeCredit,
					Limit:       decimalPtr(limit),
					Rate:        decimalPtr(decimal.NewFromFloat(14.9)),
					Reason:      "Moderate risk score with sustainable predicted income",
					Description: "General-purpose loan sized to twelve months of income",
				}
			},
		},
		{
			name: "savings_deposit",
			matches: func(in RecommendationInput) bool {
				return in.PredictedIncome >= 80_000 && in.Profile.RiskScore < 0.45
			},
			build: func(in RecommendationInput) model.Recommendation {
				return model.Recommendation{
					ProductName: "Savings deposit",
					ProductType: valueobject.ProductTypeDeposit,
					Rate:        decimalPtr(decimal.NewFromFloat(6.5)),
					Reason:      "Income surplus suggests savings capacity",
					Description: "Flexible deposit with monthly interest payout",
				}
			},
		},
		{
			name: "investment_deposit",
			matches: func(in RecommendationInput) bool {
				premiumOrVIP := in.Profile.Segment.Equal(valueobject.SegmentPremium) ||
					in.Profile.Segment.Equal(valueobject.SegmentVIP)
				return premiumOrVIP && in.PredictedIncome >= 200_000
			},
			build: func(in RecommendationInput) model.Recommendation {
				return model.Recommendation{
					ProductName: "Investment deposit",
					ProductType: valueobject.ProductTypeDeposit,
					Rate:        decimalPtr(decimal.NewFromFloat(8.5)),
					Reason:      "Premium segment with high predicted income",
					Description: "Long-term deposit with an elevated rate",
				}
			},
		},
		{
			name: "life_insurance",
			matches: func(in RecommendationInput) bool {
				premiumOrVIP := in.Profile.Segment.Equal(valueobject.SegmentPremium) ||
					in.Profile.Segment.Equal(valueobject.SegmentVIP)
				return premiumOrVIP && in.Profile.Age >= 30 &&
					!in.Profile.HasProduct(valueobject.ProductTypeInsurance)
			},
			build: func(in RecommendationInput) model.Recommendation {
				return model.Recommendation{
					ProductName: "Life insurance",
					ProductType: valueobject.ProductTypeInsurance,
					Reason:      "Recommended for premium-segment clients in this age band",
					Description: "Comprehensive life and health coverage",
				}
			},
		},
	}
}
