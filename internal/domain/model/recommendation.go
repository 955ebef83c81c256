package model

import (
	"github.com/shopspring/decimal"

	"github.com/Woolfer0097/AlfaHackathon/internal/domain/valueobject"
)

// Recommendation is a single product offer derived from the client's current
// state. Recommendations are recomputed per request and never persisted.
type Recommendation struct {
	ID          int
	ProductName string
	ProductType valueobject.ProductType
	Limit       *decimal.Decimal
	Rate        *decimal.Decimal
	Reason      string
	Description string
}
