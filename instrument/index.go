package instrument

import "fmt"

// RateIndexType enumerates supported floating benchmarks.
type RateIndexType string

const (
	ESTR    RateIndexType = "ESTR"
	EURIBOR RateIndexType = "EURIBOR"
	LIBOR3M RateIndexType = "LIBOR_3M"
	LIBOR6M RateIndexType = "LIBOR_6M"
	LIBOR1Y RateIndexType = "LIBOR_1Y"
	SOFR    RateIndexType = "SOFR"
	TONAR   RateIndexType = "TONAR"
	CD91D   RateIndexType = "CD91D"
)

// ParseRateIndexType converts a wire-level name to a RateIndexType.
func ParseRateIndexType(s string) (RateIndexType, error) {
	switch t := RateIndexType(s); t {
	case ESTR, EURIBOR, LIBOR3M, LIBOR6M, LIBOR1Y, SOFR, TONAR, CD91D:
		return t, nil
	default:
		return "", fmt.Errorf("ParseRateIndexType: unknown rate index type %q", s)
	}
}

// RateIndex identifies a floating-rate benchmark as carried on a leg record.
//
// Name and Source are free-form curve lookup hints (e.g. "USD_LIBOR_3M",
// "BBG"); Type drives batching compatibility.
type RateIndex struct {
	Type   RateIndexType
	Name   string
	Source string
}
