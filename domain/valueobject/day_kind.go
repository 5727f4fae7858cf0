package valueobject

// DayKind classifies a local calendar day by its DST behavior
type DayKind int

const (
	// DayKindNormal is a 24-hour day with no transition
	DayKindNormal DayKind = iota

	// DayKindSpringForward is a 23-hour day (one wall-clock hour skipped)
	DayKindSpringForward

	// DayKindFallBack is a 25-hour day (one wall-clock hour repeated)
	DayKindFallBack
)

// Delta returns the hour adjustment relative to a 24-hour day
func (k DayKind) Delta() int {
	switch k {
	case DayKindSpringForward:
		return -1
	case DayKindFallBack:
		return 1
	default:
		return 0
	}
}

func (k DayKind) String() string {
	switch k {
	case DayKindSpringForward:
		return "spring-forward"
	case DayKindFallBack:
		return "fall-back"
	default:
		return "normal"
	}
}
