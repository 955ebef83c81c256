package model

import "github.com/Woolfer0097/AlfaHackathon/internal/domain/valueobject"

// ClientProfile is the dashboard-facing view of a client assembled from the
// stored feature row: observable attributes the recommendation rules key on.
type ClientProfile struct {
	ID          int64
	Age         int
	City        string
	Region      string
	Segment     valueobject.Segment
	Products    []valueobject.ProductType
	RiskScore   float64
	IncomeValue *float64
}

// HasProduct reports whether the client already holds a product of the given
// type.
func (p ClientProfile) HasProduct(t valueobject.ProductType) bool {
	for _, held := range p.Products {
		if held.Equal(t) {
			return true
		}
	}
	return false
}
