package instrument

import (
	"errors"
	"time"
)

var (
	// ErrEmptyLeg is returned when a leg record carries neither variant.
	ErrEmptyLeg = errors.New("leg has neither fixed nor floating variant")
	// ErrAmbiguousLeg is returned when a leg record carries both variants.
	ErrAmbiguousLeg = errors.New("leg has both fixed and floating variants")
)

// LegType distinguishes floating vs fixed.
type LegType string

const (
	LegFloating LegType = "FLOATING"
	LegFixed    LegType = "FIXED"
)

// FixedLeg carries the terms of a fixed swap leg as received on the wire.
type FixedLeg struct {
	Currency              Currency
	CouponFrequency       Frequency
	NotionalAmount        float64
	FixedRate             float64
	SettlementDays        int
	BusinessDayConvention BusinessDayConvention
	DayCount              DayCount
	Calendar              CalendarID
}

// FloatingLeg carries the terms of a floating swap leg as received on the wire.
type FloatingLeg struct {
	Currency              Currency
	CouponFrequency       Frequency
	ResetFrequency        Frequency
	NotionalAmount        float64
	RateIndex             RateIndex
	Spread                float64
	SettlementDays        int
	BusinessDayConvention BusinessDayConvention
	DayCount              DayCount
	Calendar              CalendarID
}

// Leg is the fixed-or-floating tagged union. Exactly one variant is set on a
// well-formed record.
type Leg struct {
	Fixed    *FixedLeg
	Floating *FloatingLeg
}

// Type reports which variant the leg carries. A malformed leg (neither or
// both variants set) reports the empty string; use Validate to surface that
// as an error.
func (l Leg) Type() LegType {
	switch {
	case l.Fixed != nil && l.Floating == nil:
		return LegFixed
	case l.Floating != nil && l.Fixed == nil:
		return LegFloating
	default:
		return ""
	}
}

// Validate checks that exactly one variant is set.
func (l Leg) Validate() error {
	if l.Fixed == nil && l.Floating == nil {
		return ErrEmptyLeg
	}
	if l.Fixed != nil && l.Floating != nil {
		return ErrAmbiguousLeg
	}
	return nil
}

// Metadata carries the audit identity of a swap record.
type Metadata struct {
	ID             string
	InstrumentType InstrumentType
}

// Swap is one interest-rate-swap record at the input boundary.
//
// Dates are civil dates at UTC midnight.
type Swap struct {
	EffectiveDate time.Time
	MaturityDate  time.Time
	PayLeg        Leg
	ReceiveLeg    Leg
	Currency      Currency
	BankHolidays  CalendarID
	Metadata      Metadata
}
