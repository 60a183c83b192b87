package batch

import (
	"fmt"

	"github.com/meenmo/swapbatch/instrument"
)

// NormalizeFrequency maps a wire frequency code to its canonical
// (type, multiplier) pair for batching. SEMI_ANNUAL is an alias of MONTH with
// multiplier 1, so the two codes compare equal; every other code passes
// through unchanged with multiplier 1.
func NormalizeFrequency(t instrument.PeriodType) (instrument.PeriodType, int) {
	if t == instrument.PeriodSemiAnnual {
		return instrument.PeriodMonth, 1
	}
	return t, 1
}

// keySlot is one position in a leg feature vector. The zero value is the
// explicit "absent" marker used to keep fixed-leg and floating-leg features
// in disjoint but aligned positions of the combined vector.
type keySlot struct {
	val any
	set bool
}

func slot(v any) keySlot { return keySlot{val: v, set: true} }

// Per-version key widths. Fixed and floating parts always sum to the same
// combined width per leg (11 for V1, 7 for V2).
func keyWidths(v KeyingVersion) (fixed, float int) {
	if v == KeyingV2 {
		return 3, 4
	}
	return 4, 7
}

func fixedLegKey(leg *instrument.FixedLeg, v KeyingVersion) []keySlot {
	if v == KeyingV2 {
		freqType, _ := NormalizeFrequency(leg.CouponFrequency.Type)
		return []keySlot{
			slot(int(freqType)),
			slot(string(leg.DayCount)),
			slot(string(leg.BusinessDayConvention)),
		}
	}
	return []keySlot{
		slot(int(leg.CouponFrequency.Type)),
		slot(leg.CouponFrequency.Amount),
		slot(string(leg.DayCount)),
		slot(string(leg.BusinessDayConvention)),
	}
}

func floatingLegKey(leg *instrument.FloatingLeg, v KeyingVersion) []keySlot {
	if v == KeyingV2 {
		couponType, _ := NormalizeFrequency(leg.CouponFrequency.Type)
		resetType, _ := NormalizeFrequency(leg.ResetFrequency.Type)
		return []keySlot{
			slot(int(couponType)),
			slot(int(resetType)),
			slot(string(leg.DayCount)),
			slot(string(leg.BusinessDayConvention)),
		}
	}
	return []keySlot{
		slot(int(leg.CouponFrequency.Type)),
		slot(leg.CouponFrequency.Amount),
		slot(int(leg.ResetFrequency.Type)),
		slot(leg.ResetFrequency.Amount),
		slot(string(leg.DayCount)),
		slot(string(leg.BusinessDayConvention)),
		slot(string(leg.RateIndex.Type)),
	}
}

// legKey returns the fixed-slot and floating-slot parts of one leg's feature
// vector. For a fixed leg the floating part is all absent, and vice versa.
func legKey(l instrument.Leg, v KeyingVersion) (fixedPart, floatPart []keySlot, err error) {
	if err := l.Validate(); err != nil {
		return nil, nil, err
	}
	fixedWidth, floatWidth := keyWidths(v)
	switch l.Type() {
	case instrument.LegFixed:
		return fixedLegKey(l.Fixed, v), make([]keySlot, floatWidth), nil
	case instrument.LegFloating:
		return make([]keySlot, fixedWidth), floatingLegKey(l.Floating, v), nil
	default:
		return nil, nil, fmt.Errorf("legKey: unsupported leg type %q", l.Type())
	}
}

// canonicalKey computes the combined ordered feature vector for a swap's two
// legs and whether the legs must be flipped into canonical order.
//
// Canonical convention: for plain vanilla swaps the fixed leg is treated as
// "pay". The flip fires only on the fixed-vs-float asymmetry (pay floating,
// receive fixed); fixed-fixed and float-float swaps are never flipped.
func canonicalKey(payLeg, receiveLeg instrument.Leg, v KeyingVersion) (flip bool, key []keySlot, err error) {
	if !v.valid() {
		return false, nil, fmt.Errorf("canonicalKey: %w: %d", ErrUnknownVersion, v)
	}
	payFixed, payFloat, err := legKey(payLeg, v)
	if err != nil {
		return false, nil, fmt.Errorf("canonicalKey: pay leg: %w", err)
	}
	recFixed, recFloat, err := legKey(receiveLeg, v)
	if err != nil {
		return false, nil, fmt.Errorf("canonicalKey: receive leg: %w", err)
	}

	payKey := append(payFixed, payFloat...)
	recKey := append(recFixed, recFloat...)

	flip = !payFixed[0].set && recFixed[0].set
	if flip {
		return true, append(recKey, payKey...), nil
	}
	return false, append(payKey, recKey...), nil
}
