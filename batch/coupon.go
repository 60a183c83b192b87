package batch

import (
	"fmt"

	"github.com/meenmo/swapbatch/instrument"
)

// FrequencySpec is a frequency inside a leg descriptor. Under V1 the single
// Amounts entry is the raw wire amount shared by every swap in the bucket
// (the amount is part of the structural key). Under V2 the type is
// normalized and Amounts grows by one multiplier-scaled entry per merged
// swap.
type FrequencySpec struct {
	Type    instrument.PeriodType
	Amounts []int
}

// IndexSpec is a floating-rate benchmark inside a leg descriptor. Names and
// Sources are parallel sequences, one entry per swap in the bucket.
type IndexSpec struct {
	Type    instrument.RateIndexType
	Names   []string
	Sources []string
}

// FixedCouponSpecs is the materialized descriptor of a fixed leg. Sequence
// fields hold one entry per swap folded into the bucket, in encounter order.
// Under V1, Currencies keeps only the first swap's currency.
type FixedCouponSpecs struct {
	Currencies            []instrument.Currency
	CouponFrequency       FrequencySpec
	NotionalAmounts       []float64
	FixedRates            []float64
	SettlementDays        []int
	BusinessDayConvention instrument.BusinessDayConvention
	DayCount              instrument.DayCount
	Calendar              instrument.CalendarID
}

// FloatCouponSpecs is the materialized descriptor of a floating leg.
type FloatCouponSpecs struct {
	Currencies            []instrument.Currency
	CouponFrequency       FrequencySpec
	ResetFrequency        FrequencySpec
	NotionalAmounts       []float64
	RateIndex             IndexSpec
	Spreads               []float64
	SettlementDays        []int
	BusinessDayConvention instrument.BusinessDayConvention
	DayCount              instrument.DayCount
	Calendar              instrument.CalendarID
}

// LegSpecs is the fixed-or-floating descriptor union held by a Batch.
type LegSpecs struct {
	Fixed *FixedCouponSpecs
	Float *FloatCouponSpecs
}

// Type reports which variant the descriptor carries.
func (l LegSpecs) Type() instrument.LegType {
	switch {
	case l.Fixed != nil:
		return instrument.LegFixed
	case l.Float != nil:
		return instrument.LegFloating
	default:
		return ""
	}
}

// NotionalAmounts returns the descriptor's notional sequence regardless of
// variant.
func (l LegSpecs) NotionalAmounts() []float64 {
	switch {
	case l.Fixed != nil:
		return l.Fixed.NotionalAmounts
	case l.Float != nil:
		return l.Float.NotionalAmounts
	default:
		return nil
	}
}

// negateNotionals flips the sign of every notional entry in place. The sign
// convention encodes pay/receive direction, so swapping leg roles must
// negate to preserve economic meaning.
func (l LegSpecs) negateNotionals() {
	notionals := l.NotionalAmounts()
	for i := range notionals {
		notionals[i] = -notionals[i]
	}
}

func materializeFrequency(f instrument.Frequency, v KeyingVersion) FrequencySpec {
	if v == KeyingV2 {
		freqType, multiplier := NormalizeFrequency(f.Type)
		return FrequencySpec{Type: freqType, Amounts: []int{multiplier * f.Amount}}
	}
	return FrequencySpec{Type: f.Type, Amounts: []int{f.Amount}}
}

// MaterializeLeg converts one leg record into a leg descriptor with scalar
// fields wrapped as single-element sequences, ready for accumulation.
func MaterializeLeg(leg instrument.Leg, v KeyingVersion) (LegSpecs, error) {
	if !v.valid() {
		return LegSpecs{}, fmt.Errorf("MaterializeLeg: %w: %d", ErrUnknownVersion, v)
	}
	if err := leg.Validate(); err != nil {
		return LegSpecs{}, fmt.Errorf("MaterializeLeg: %w", err)
	}

	if leg.Type() == instrument.LegFixed {
		l := leg.Fixed
		return LegSpecs{Fixed: &FixedCouponSpecs{
			Currencies:            []instrument.Currency{l.Currency},
			CouponFrequency:       materializeFrequency(l.CouponFrequency, v),
			NotionalAmounts:       []float64{l.NotionalAmount},
			FixedRates:            []float64{l.FixedRate},
			SettlementDays:        []int{l.SettlementDays},
			BusinessDayConvention: l.BusinessDayConvention,
			DayCount:              l.DayCount,
			Calendar:              l.Calendar,
		}}, nil
	}

	l := leg.Floating
	return LegSpecs{Float: &FloatCouponSpecs{
		Currencies:      []instrument.Currency{l.Currency},
		CouponFrequency: materializeFrequency(l.CouponFrequency, v),
		ResetFrequency:  materializeFrequency(l.ResetFrequency, v),
		NotionalAmounts: []float64{l.NotionalAmount},
		RateIndex: IndexSpec{
			Type:    l.RateIndex.Type,
			Names:   []string{l.RateIndex.Name},
			Sources: []string{l.RateIndex.Source},
		},
		Spreads:               []float64{l.Spread},
		SettlementDays:        []int{l.SettlementDays},
		BusinessDayConvention: l.BusinessDayConvention,
		DayCount:              l.DayCount,
		Calendar:              l.Calendar,
	}}, nil
}
