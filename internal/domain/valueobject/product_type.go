package valueobject

import "fmt"

// ProductType is an immutable value object for the closed set of product
// categories the bank offers through the dashboard.
type ProductType struct {
	value string
}

var (
	ProductTypeCredit     = ProductType{value: "credit"}
	ProductTypeCreditCard = ProductType{value: "credit_card"}
	ProductTypeDeposit    = ProductType{value: "deposit"}
	ProductTypeInsurance  = ProductType{value: "insurance"}
)

// ProductTypeFromString reconstructs a ProductType from its string form.
func ProductTypeFromString(s string) (ProductType, error) {
	switch s {
	case "credit":
		return ProductTypeCredit, nil
	case "credit_card":
		return ProductTypeCreditCard, nil
	case "deposit":
		return ProductTypeDeposit, nil
	case "insurance":
		return ProductTypeInsurance, nil
	default:
		return ProductType{}, fmt.Errorf("invalid product type: %s", s)
	}
}

// String returns the string representation.
func (p ProductType) String() string { return p.value }

// IsZero returns true if the ProductType has not been set.
func (p ProductType) IsZero() bool { return p.value == "" }

// Equal checks equality with another ProductType.
func (p ProductType) Equal(other ProductType) bool { return p.value == other.value }
