package model

import "fmt"

// IncomeEstimate is a bounded income prediction in currency units.
type IncomeEstimate struct {
	PredictedIncome float64
	LowerBound      float64
	UpperBound      float64
	BaseIncome      *float64
	ModelVersion    string
}

// Validate enforces the interval invariant lower <= predicted <= upper.
func (e IncomeEstimate) Validate() error {
	if e.LowerBound > e.PredictedIncome || e.PredictedIncome > e.UpperBound {
		return fmt.Errorf("income estimate: bounds inverted (%.2f <= %.2f <= %.2f does not hold)",
			e.LowerBound, e.PredictedIncome, e.UpperBound)
	}
	return nil
}
