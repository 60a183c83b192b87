package batch_test

import (
	"errors"
	"testing"

	"github.com/meenmo/swapbatch/batch"
	"github.com/meenmo/swapbatch/instrument"
)

func TestMaterializeLeg_FixedRoundTrip(t *testing.T) {
	t.Parallel()

	leg := usdFixedLeg(1_000_000, 0.031)
	for _, v := range versions {
		specs, err := batch.MaterializeLeg(leg, v)
		if err != nil {
			t.Fatalf("%s: MaterializeLeg error: %v", v, err)
		}
		f := specs.Fixed
		if f == nil {
			t.Fatalf("%s: expected fixed descriptor", v)
		}
		if len(f.NotionalAmounts) != 1 || f.NotionalAmounts[0] != 1_000_000 {
			t.Fatalf("%s: notional: got %v want [1000000]", v, f.NotionalAmounts)
		}
		if len(f.FixedRates) != 1 || f.FixedRates[0] != 0.031 {
			t.Fatalf("%s: rate: got %v want [0.031]", v, f.FixedRates)
		}
		if len(f.SettlementDays) != 1 || f.SettlementDays[0] != 2 {
			t.Fatalf("%s: settlement days: got %v want [2]", v, f.SettlementDays)
		}
		if f.DayCount != instrument.Act360 || f.BusinessDayConvention != instrument.ModifiedFollowing {
			t.Fatalf("%s: conventions not carried over", v)
		}
		if f.Calendar != instrument.CalendarUS {
			t.Fatalf("%s: calendar not carried over", v)
		}
	}
}

func TestMaterializeLeg_FloatRoundTrip(t *testing.T) {
	t.Parallel()

	leg := usdLiborLeg(2_000_000, 0.0015)
	for _, v := range versions {
		specs, err := batch.MaterializeLeg(leg, v)
		if err != nil {
			t.Fatalf("%s: MaterializeLeg error: %v", v, err)
		}
		f := specs.Float
		if f == nil {
			t.Fatalf("%s: expected floating descriptor", v)
		}
		if len(f.NotionalAmounts) != 1 || f.NotionalAmounts[0] != 2_000_000 {
			t.Fatalf("%s: notional: got %v want [2000000]", v, f.NotionalAmounts)
		}
		if len(f.Spreads) != 1 || f.Spreads[0] != 0.0015 {
			t.Fatalf("%s: spread: got %v want [0.0015]", v, f.Spreads)
		}
		if f.RateIndex.Type != instrument.LIBOR3M {
			t.Fatalf("%s: index type: got %s want %s", v, f.RateIndex.Type, instrument.LIBOR3M)
		}
		if len(f.RateIndex.Names) != 1 || f.RateIndex.Names[0] != "USD_LIBOR_3M" {
			t.Fatalf("%s: index names: got %v", v, f.RateIndex.Names)
		}
		if len(f.RateIndex.Sources) != 1 || f.RateIndex.Sources[0] != "BBG" {
			t.Fatalf("%s: index sources: got %v", v, f.RateIndex.Sources)
		}
	}
}

func TestMaterializeLeg_FrequencyByVersion(t *testing.T) {
	t.Parallel()

	leg := usdFixedLeg(1, 0.03)
	leg.Fixed.CouponFrequency = instrument.Frequency{Type: instrument.PeriodSemiAnnual, Amount: 6}

	v1, err := batch.MaterializeLeg(leg, batch.KeyingV1)
	if err != nil {
		t.Fatalf("v1: MaterializeLeg error: %v", err)
	}
	if v1.Fixed.CouponFrequency.Type != instrument.PeriodSemiAnnual {
		t.Fatalf("v1 keeps the raw frequency type, got %s", v1.Fixed.CouponFrequency.Type)
	}
	if len(v1.Fixed.CouponFrequency.Amounts) != 1 || v1.Fixed.CouponFrequency.Amounts[0] != 6 {
		t.Fatalf("v1 keeps the raw amount, got %v", v1.Fixed.CouponFrequency.Amounts)
	}

	v2, err := batch.MaterializeLeg(leg, batch.KeyingV2)
	if err != nil {
		t.Fatalf("v2: MaterializeLeg error: %v", err)
	}
	if v2.Fixed.CouponFrequency.Type != instrument.PeriodMonth {
		t.Fatalf("v2 normalizes the frequency type, got %s", v2.Fixed.CouponFrequency.Type)
	}
	if len(v2.Fixed.CouponFrequency.Amounts) != 1 || v2.Fixed.CouponFrequency.Amounts[0] != 6 {
		t.Fatalf("v2 multiplier-scaled amount: got %v want [6]", v2.Fixed.CouponFrequency.Amounts)
	}
}

func TestMaterializeLeg_MalformedLeg(t *testing.T) {
	t.Parallel()

	_, err := batch.MaterializeLeg(instrument.Leg{}, batch.KeyingV2)
	if !errors.Is(err, instrument.ErrEmptyLeg) {
		t.Fatalf("expected ErrEmptyLeg, got %v", err)
	}

	both := instrument.Leg{
		Fixed:    usdFixedLeg(1, 0.03).Fixed,
		Floating: usdLiborLeg(1, 0).Floating,
	}
	_, err = batch.MaterializeLeg(both, batch.KeyingV2)
	if !errors.Is(err, instrument.ErrAmbiguousLeg) {
		t.Fatalf("expected ErrAmbiguousLeg, got %v", err)
	}
}
