package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when a merge pairs a fixed-type leg with a
	// floating-type leg. Same hash implies same shape, so hitting this
	// indicates a hash collision across incompatible structures.
	ErrTypeMismatch = errors.New("cannot merge fixed and floating legs")
	// ErrIncompatibleIndex is returned when two floating legs reference
	// different rate-index types.
	ErrIncompatibleIndex = errors.New("incompatible rate index types")
)

// checkMerge verifies that other has the same shape as l without mutating
// either side.
func (l LegSpecs) checkMerge(other LegSpecs, v KeyingVersion) error {
	if !v.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownVersion, v)
	}
	switch {
	case l.Fixed != nil && other.Fixed != nil:
		return nil
	case l.Float != nil && other.Float != nil:
		if l.Float.RateIndex.Type != other.Float.RateIndex.Type {
			return fmt.Errorf("%w: %s vs %s", ErrIncompatibleIndex, l.Float.RateIndex.Type, other.Float.RateIndex.Type)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s vs %s", ErrTypeMismatch, l.Type(), other.Type())
	}
}

// Merge folds another descriptor into l, concatenating every sequence field
// in encounter order. Both descriptors must carry the same variant; the
// check is explicit rather than trusted from the hash, and a failed check
// leaves l unmodified.
func (l LegSpecs) Merge(other LegSpecs, v KeyingVersion) error {
	if err := l.checkMerge(other, v); err != nil {
		return fmt.Errorf("Merge: %w", err)
	}
	if l.Fixed != nil {
		l.Fixed.merge(other.Fixed, v)
	} else {
		l.Float.merge(other.Float, v)
	}
	return nil
}

func (c *FixedCouponSpecs) merge(o *FixedCouponSpecs, v KeyingVersion) {
	c.NotionalAmounts = append(c.NotionalAmounts, o.NotionalAmounts...)
	c.FixedRates = append(c.FixedRates, o.FixedRates...)
	c.SettlementDays = append(c.SettlementDays, o.SettlementDays...)
	if v == KeyingV2 {
		c.Currencies = append(c.Currencies, o.Currencies...)
		c.CouponFrequency.Amounts = append(c.CouponFrequency.Amounts, o.CouponFrequency.Amounts...)
	}
}

func (c *FloatCouponSpecs) merge(o *FloatCouponSpecs, v KeyingVersion) {
	c.RateIndex.merge(o.RateIndex)
	c.NotionalAmounts = append(c.NotionalAmounts, o.NotionalAmounts...)
	c.SettlementDays = append(c.SettlementDays, o.SettlementDays...)
	c.Spreads = append(c.Spreads, o.Spreads...)
	if v == KeyingV2 {
		c.Currencies = append(c.Currencies, o.Currencies...)
		c.CouponFrequency.Amounts = append(c.CouponFrequency.Amounts, o.CouponFrequency.Amounts...)
		c.ResetFrequency.Amounts = append(c.ResetFrequency.Amounts, o.ResetFrequency.Amounts...)
	}
}

// merge assumes index-type equality was already checked.
func (ix *IndexSpec) merge(o IndexSpec) {
	ix.Names = append(ix.Names, o.Names...)
	ix.Sources = append(ix.Sources, o.Sources...)
}
