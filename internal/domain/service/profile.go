package service

import (
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/valueobject"
)

// ProfileBuilder assembles the dashboard-facing client profile from the raw
// feature row: named attributes, held products, derived segment, and the
// rule-based risk score.
type ProfileBuilder struct {
	risk *RiskScorer
}

// NewProfileBuilder creates a ProfileBuilder using the given risk scorer.
func NewProfileBuilder(risk *RiskScorer) *ProfileBuilder {
	return &ProfileBuilder{risk: risk}
}

// Build derives a ClientProfile from the feature row. Attribute absence
// degrades the profile (zero values) rather than failing: the row's presence
// was already established by the resolver.
func (b *ProfileBuilder) Build(clientID int64, row model.FeatureRow) model.ClientProfile {
	profile := model.ClientProfile{
		ID:       clientID,
		Products: heldProducts(row),
	}

	if age, ok := numeric(row, "age"); ok {
		profile.Age = int(age)
	}
	if v, ok := row["city_smart_name"]; ok && v.Kind == model.FeatureCategorical {
		profile.City = v.Cat
	}
	if v, ok := row["adminarea"]; ok && v.Kind == model.FeatureCategorical {
		profile.Region = v.Cat
	}
	if income, ok := numeric(row, "incomeValue"); ok {
		profile.IncomeValue = &income
	}

	profile.Segment = valueobject.SegmentFromIncome(profile.IncomeValue)
	profile.RiskScore = b.risk.Score(row).Score

	return profile
}

// heldProducts maps the row's product flags onto the closed product set.
func heldProducts(row model.FeatureRow) []valueobject.ProductType {
	products := make([]valueobject.ProductType, 0, 2)
	if flag, ok := numeric(row, "acard"); ok && flag > 0 {
		products = append(products, valueobject.ProductTypeCreditCard)
	}
	if flag, ok := numeric(row, "pil"); ok && flag > 0 {
		products = append(products, valueobject.ProductTypeCredit)
	}
	if cnt, ok := numeric(row, "avg_loan_cnt_with_insurance"); ok && cnt > 0 {
		products = append(products, valueobject.ProductTypeInsurance)
	}
	return products
}
