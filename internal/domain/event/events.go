package event

import (
	"strconv"
	"time"

	"github.com/Woolfer0097/AlfaHackathon/pkg/events"
)

// IncomeEstimated is emitted after every successful scoring request.
type IncomeEstimated struct {
	events.BaseEvent
	ClientID        int64     `json:"client_id"`
	PredictedIncome float64   `json:"predicted_income"`
	LowerBound      float64   `json:"lower_bound"`
	UpperBound      float64   `json:"upper_bound"`
	ModelVersion    string    `json:"model_version"`
	PredictedAt     time.Time `json:"predicted_at"`
}

// NewIncomeEstimated creates an IncomeEstimated event for a client.
func NewIncomeEstimated(clientID int64, predicted, lower, upper float64, modelVersion string, predictedAt time.Time) IncomeEstimated {
	return IncomeEstimated{
		BaseEvent:       events.NewBaseEvent("IncomeEstimated", strconv.FormatInt(clientID, 10), "Client"),
		ClientID:        clientID,
		PredictedIncome: predicted,
		LowerBound:      lower,
		UpperBound:      upper,
		ModelVersion:    modelVersion,
		PredictedAt:     predictedAt,
	}
}
