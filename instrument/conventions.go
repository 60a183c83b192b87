package instrument

import "fmt"

// Currency is an ISO-4217 currency code.
type Currency string

const (
	EUR Currency = "EUR"
	JPY Currency = "JPY"
	KRW Currency = "KRW"
	USD Currency = "USD"
)

// ParseCurrency converts a wire-level code to a Currency.
func ParseCurrency(s string) (Currency, error) {
	switch c := Currency(s); c {
	case EUR, JPY, KRW, USD:
		return c, nil
	default:
		return "", fmt.Errorf("ParseCurrency: unknown currency %q", s)
	}
}

// CalendarID identifies a bank holiday calendar.
type CalendarID string

const (
	CalendarJapan  CalendarID = "JAPAN"
	CalendarKorea  CalendarID = "KOREA"
	CalendarTarget CalendarID = "TARGET"
	CalendarUS     CalendarID = "US"
)

// ParseCalendarID converts a wire-level name to a CalendarID.
func ParseCalendarID(s string) (CalendarID, error) {
	switch c := CalendarID(s); c {
	case CalendarJapan, CalendarKorea, CalendarTarget, CalendarUS:
		return c, nil
	default:
		return "", fmt.Errorf("ParseCalendarID: unknown calendar %q", s)
	}
}

// DayCount enum.
type DayCount string

const (
	Act360  DayCount = "ACT/360"
	Act365  DayCount = "ACT/365"
	Act365F DayCount = "ACT/365F"
	Dc30360 DayCount = "30/360"
)

// ParseDayCount converts a wire-level name to a DayCount.
func ParseDayCount(s string) (DayCount, error) {
	switch d := DayCount(s); d {
	case Act360, Act365, Act365F, Dc30360:
		return d, nil
	default:
		return "", fmt.Errorf("ParseDayCount: unknown day count %q", s)
	}
}

// BusinessDayConvention roll convention.
type BusinessDayConvention string

const (
	Following         BusinessDayConvention = "FOLLOWING"
	ModifiedFollowing BusinessDayConvention = "MODIFIED_FOLLOWING"
	Preceding         BusinessDayConvention = "PRECEDING"
	NoAdjustment      BusinessDayConvention = "NONE"
)

// ParseBusinessDayConvention converts a wire-level name to a
// BusinessDayConvention.
func ParseBusinessDayConvention(s string) (BusinessDayConvention, error) {
	switch b := BusinessDayConvention(s); b {
	case Following, ModifiedFollowing, Preceding, NoAdjustment:
		return b, nil
	default:
		return "", fmt.Errorf("ParseBusinessDayConvention: unknown business day convention %q", s)
	}
}

// InstrumentType tags the product a swap record represents.
type InstrumentType string

const (
	InstrumentIRS       InstrumentType = "IRS"
	InstrumentBasisSwap InstrumentType = "BASIS_SWAP"
)

// ParseInstrumentType converts a wire-level name to an InstrumentType.
func ParseInstrumentType(s string) (InstrumentType, error) {
	switch t := InstrumentType(s); t {
	case InstrumentIRS, InstrumentBasisSwap:
		return t, nil
	default:
		return "", fmt.Errorf("ParseInstrumentType: unknown instrument type %q", s)
	}
}
