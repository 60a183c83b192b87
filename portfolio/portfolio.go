// Package portfolio loads swap portfolio files into instrument records.
package portfolio

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/meenmo/swapbatch/instrument"
)

const dateLayout = "2006-01-02"

type portfolioFile struct {
	Swaps []swapEntry `yaml:"swaps"`
}

type frequencyEntry struct {
	Type   string `yaml:"type"`
	Amount int    `yaml:"amount"`
}

type indexEntry struct {
	Type   string `yaml:"type"`
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

type fixedLegEntry struct {
	Currency        string         `yaml:"currency"`
	CouponFrequency frequencyEntry `yaml:"coupon_frequency"`
	Notional        float64        `yaml:"notional"`
	FixedRate       float64        `yaml:"fixed_rate"`
	SettlementDays  int            `yaml:"settlement_days"`
	BusinessDay     string         `yaml:"business_day"`
	DayCount        string         `yaml:"day_count"`
	Calendar        string         `yaml:"calendar"`
}

type floatingLegEntry struct {
	Currency        string         `yaml:"currency"`
	CouponFrequency frequencyEntry `yaml:"coupon_frequency"`
	ResetFrequency  frequencyEntry `yaml:"reset_frequency"`
	Notional        float64        `yaml:"notional"`
	Index           indexEntry     `yaml:"index"`
	Spread          float64        `yaml:"spread"`
	SettlementDays  int            `yaml:"settlement_days"`
	BusinessDay     string         `yaml:"business_day"`
	DayCount        string         `yaml:"day_count"`
	Calendar        string         `yaml:"calendar"`
}

type legEntry struct {
	Fixed    *fixedLegEntry    `yaml:"fixed"`
	Floating *floatingLegEntry `yaml:"floating"`
}

type swapEntry struct {
	ID             string   `yaml:"id"`
	InstrumentType string   `yaml:"instrument_type"`
	Currency       string   `yaml:"currency"`
	BankHolidays   string   `yaml:"bank_holidays"`
	EffectiveDate  string   `yaml:"effective_date"`
	MaturityDate   string   `yaml:"maturity_date"`
	PayLeg         legEntry `yaml:"pay_leg"`
	ReceiveLeg     legEntry `yaml:"receive_leg"`
}

// Load reads a YAML portfolio file into swap records.
func Load(path string) ([]instrument.Swap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	swaps, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}
	return swaps, nil
}

// Parse decodes a YAML portfolio document into swap records.
func Parse(raw []byte) ([]instrument.Swap, error) {
	var f portfolioFile
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	swaps := make([]instrument.Swap, 0, len(f.Swaps))
	for i, entry := range f.Swaps {
		s, err := entry.toSwap()
		if err != nil {
			return nil, fmt.Errorf("Parse: swap %d (%s): %w", i, entry.ID, err)
		}
		swaps = append(swaps, s)
	}
	return swaps, nil
}

func (e swapEntry) toSwap() (instrument.Swap, error) {
	effective, err := time.Parse(dateLayout, e.EffectiveDate)
	if err != nil {
		return instrument.Swap{}, fmt.Errorf("effective_date: %w", err)
	}
	maturity, err := time.Parse(dateLayout, e.MaturityDate)
	if err != nil {
		return instrument.Swap{}, fmt.Errorf("maturity_date: %w", err)
	}

	payLeg, err := e.PayLeg.toLeg()
	if err != nil {
		return instrument.Swap{}, fmt.Errorf("pay_leg: %w", err)
	}
	receiveLeg, err := e.ReceiveLeg.toLeg()
	if err != nil {
		return instrument.Swap{}, fmt.Errorf("receive_leg: %w", err)
	}

	currency, err := instrument.ParseCurrency(e.Currency)
	if err != nil {
		return instrument.Swap{}, fmt.Errorf("currency: %w", err)
	}
	holidays, err := instrument.ParseCalendarID(e.BankHolidays)
	if err != nil {
		return instrument.Swap{}, fmt.Errorf("bank_holidays: %w", err)
	}
	instrumentType, err := instrument.ParseInstrumentType(e.InstrumentType)
	if err != nil {
		return instrument.Swap{}, fmt.Errorf("instrument_type: %w", err)
	}

	return instrument.Swap{
		EffectiveDate: effective,
		MaturityDate:  maturity,
		PayLeg:        payLeg,
		ReceiveLeg:    receiveLeg,
		Currency:      currency,
		BankHolidays:  holidays,
		Metadata: instrument.Metadata{
			ID:             e.ID,
			InstrumentType: instrumentType,
		},
	}, nil
}

// legConventions is the enum block shared by both leg kinds; every string is
// validated, never cast.
type legConventions struct {
	currency instrument.Currency
	bizday   instrument.BusinessDayConvention
	dayCount instrument.DayCount
	calendar instrument.CalendarID
}

func parseLegConventions(currency, bizday, dayCount, calendar string) (legConventions, error) {
	var c legConventions
	var err error
	if c.currency, err = instrument.ParseCurrency(currency); err != nil {
		return legConventions{}, fmt.Errorf("currency: %w", err)
	}
	if c.bizday, err = instrument.ParseBusinessDayConvention(bizday); err != nil {
		return legConventions{}, fmt.Errorf("business_day: %w", err)
	}
	if c.dayCount, err = instrument.ParseDayCount(dayCount); err != nil {
		return legConventions{}, fmt.Errorf("day_count: %w", err)
	}
	if c.calendar, err = instrument.ParseCalendarID(calendar); err != nil {
		return legConventions{}, fmt.Errorf("calendar: %w", err)
	}
	return c, nil
}

func (e legEntry) toLeg() (instrument.Leg, error) {
	var leg instrument.Leg
	if e.Fixed != nil {
		freq, err := e.Fixed.CouponFrequency.toFrequency()
		if err != nil {
			return instrument.Leg{}, fmt.Errorf("coupon_frequency: %w", err)
		}
		conv, err := parseLegConventions(e.Fixed.Currency, e.Fixed.BusinessDay, e.Fixed.DayCount, e.Fixed.Calendar)
		if err != nil {
			return instrument.Leg{}, err
		}
		leg.Fixed = &instrument.FixedLeg{
			Currency:              conv.currency,
			CouponFrequency:       freq,
			NotionalAmount:        e.Fixed.Notional,
			FixedRate:             e.Fixed.FixedRate,
			SettlementDays:        e.Fixed.SettlementDays,
			BusinessDayConvention: conv.bizday,
			DayCount:              conv.dayCount,
			Calendar:              conv.calendar,
		}
	}
	if e.Floating != nil {
		coupon, err := e.Floating.CouponFrequency.toFrequency()
		if err != nil {
			return instrument.Leg{}, fmt.Errorf("coupon_frequency: %w", err)
		}
		reset, err := e.Floating.ResetFrequency.toFrequency()
		if err != nil {
			return instrument.Leg{}, fmt.Errorf("reset_frequency: %w", err)
		}
		conv, err := parseLegConventions(e.Floating.Currency, e.Floating.BusinessDay, e.Floating.DayCount, e.Floating.Calendar)
		if err != nil {
			return instrument.Leg{}, err
		}
		indexType, err := instrument.ParseRateIndexType(e.Floating.Index.Type)
		if err != nil {
			return instrument.Leg{}, fmt.Errorf("index: %w", err)
		}
		leg.Floating = &instrument.FloatingLeg{
			Currency:        conv.currency,
			CouponFrequency: coupon,
			ResetFrequency:  reset,
			NotionalAmount:  e.Floating.Notional,
			RateIndex: instrument.RateIndex{
				Type:   indexType,
				Name:   e.Floating.Index.Name,
				Source: e.Floating.Index.Source,
			},
			Spread:                e.Floating.Spread,
			SettlementDays:        e.Floating.SettlementDays,
			BusinessDayConvention: conv.bizday,
			DayCount:              conv.dayCount,
			Calendar:              conv.calendar,
		}
	}
	if err := leg.Validate(); err != nil {
		return instrument.Leg{}, err
	}
	return leg, nil
}

func (e frequencyEntry) toFrequency() (instrument.Frequency, error) {
	t, err := instrument.ParsePeriodType(e.Type)
	if err != nil {
		return instrument.Frequency{}, err
	}
	return instrument.Frequency{Type: t, Amount: e.Amount}, nil
}
