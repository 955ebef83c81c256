package valueobject

import "fmt"

// Segment is an immutable value object for the client sub-population used in
// recommendations and per-segment monitoring breakdowns.
type Segment struct {
	value string
}

var (
	SegmentBasic    = Segment{value: "Basic"}
	SegmentStandard = Segment{value: "Standard"}
	SegmentPremium  = Segment{value: "Premium"}
	SegmentVIP      = Segment{value: "VIP"}
)

// SegmentFromString reconstructs a Segment from its string representation.
func SegmentFromString(s string) (Segment, error) {
	switch s {
	case "Basic":
		return SegmentBasic, nil
	case "Standard":
		return SegmentStandard, nil
	case "Premium":
		return SegmentPremium, nil
	case "VIP":
		return SegmentVIP, nil
	default:
		return Segment{}, fmt.Errorf("invalid segment: %s", s)
	}
}

// SegmentFromIncome derives the segment from a monthly income amount.
// Unknown income maps to Standard.
func SegmentFromIncome(income *float64) Segment {
	if income == nil {
		return SegmentStandard
	}
	switch {
	case *income >= 500_000:
		return SegmentVIP
	case *income >= 200_000:
		return SegmentPremium
	case *income >= 50_000:
		return SegmentStandard
	default:
		return SegmentBasic
	}
}

// String returns the string representation.
func (s Segment) String() string { return s.value }

// IsZero returns true if the Segment has not been set.
func (s Segment) IsZero() bool { return s.value == "" }

// Equal checks equality with another Segment.
func (s Segment) Equal(other Segment) bool { return s.value == other.value }
