package instrument

import "fmt"

// PeriodType enumerates frequency period codes as they appear on the wire.
type PeriodType int

const (
	PeriodUnknown    PeriodType = 0
	PeriodDay        PeriodType = 1
	PeriodWeek       PeriodType = 2
	PeriodMonth      PeriodType = 3
	PeriodYear       PeriodType = 4
	// PeriodSemiAnnual is a legacy wire code; batching treats it as an alias
	// of PeriodMonth (see batch.NormalizeFrequency).
	PeriodSemiAnnual PeriodType = 5
)

// String returns the wire-level name of the period type.
func (p PeriodType) String() string {
	switch p {
	case PeriodDay:
		return "DAY"
	case PeriodWeek:
		return "WEEK"
	case PeriodMonth:
		return "MONTH"
	case PeriodYear:
		return "YEAR"
	case PeriodSemiAnnual:
		return "SEMI_ANNUAL"
	default:
		return "UNKNOWN"
	}
}

// ParsePeriodType converts a wire-level name to a PeriodType.
func ParsePeriodType(s string) (PeriodType, error) {
	switch s {
	case "DAY":
		return PeriodDay, nil
	case "WEEK":
		return PeriodWeek, nil
	case "MONTH":
		return PeriodMonth, nil
	case "YEAR":
		return PeriodYear, nil
	case "SEMI_ANNUAL":
		return PeriodSemiAnnual, nil
	default:
		return PeriodUnknown, fmt.Errorf("ParsePeriodType: unknown period type %q", s)
	}
}

// Frequency is a payment or reset frequency: a period type with a count.
type Frequency struct {
	Type   PeriodType
	Amount int
}
