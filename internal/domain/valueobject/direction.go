package valueobject

// Direction is the sign of a feature contribution.
type Direction struct {
	value string
}

var (
	DirectionPositive = Direction{value: "positive"}
	DirectionNegative = Direction{value: "negative"}
)

// DirectionFromContribution derives the direction from a signed contribution.
// Zero is treated as positive, matching the attribution convention.
func DirectionFromContribution(contribution float64) Direction {
	if contribution < 0 {
		return DirectionNegative
	}
	return DirectionPositive
}

// String returns the string representation.
func (d Direction) String() string { return d.value }

// Equal checks equality with another Direction.
func (d Direction) Equal(other Direction) bool { return d.value == other.value }
