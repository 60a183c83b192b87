package batch

import "github.com/meenmo/swapbatch/instrument"

// Config carries pricing-engine settings that ride along with each batch.
// It never influences bucket membership; every bucket of one batching call
// references the same Config.
type Config struct {
	// DiscountingIndex selects the curve family the pricer discounts with.
	DiscountingIndex instrument.RateIndexType

	// PastFixing is the rate applied to floating accrual periods whose
	// fixing date falls before the valuation date.
	PastFixing float64
}

// DefaultConfig provides the standard post-LIBOR discounting setup.
var DefaultConfig = Config{
	DiscountingIndex: instrument.SOFR,
}
