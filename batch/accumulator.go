package batch

import (
	"fmt"
	"time"

	"github.com/meenmo/swapbatch/instrument"
)

// BatchName is one (identifier, instrument type) metadata pair, recording
// which original swap contributed which array slot.
type BatchName struct {
	ID             string
	InstrumentType instrument.InstrumentType
}

// Batch is one bucket of structurally identical swaps. All sequence fields
// are parallel: entry i across every sequence belongs to the i-th swap
// folded into the bucket, in input encounter order.
type Batch struct {
	PayLeg        LegSpecs
	ReceiveLeg    LegSpecs
	StartDates    []time.Time
	MaturityDates []time.Time
	Names         []BatchName
	Config        *Config
}

// Size returns the number of swaps folded into the batch.
func (b *Batch) Size() int { return len(b.Names) }

// Accumulator builds batches one swap at a time. It is not safe for
// concurrent use; each batching call owns its own Accumulator.
type Accumulator struct {
	version KeyingVersion
	config  *Config
	buckets map[string]*Batch
}

// NewAccumulator returns an empty accumulator for the given keying version.
// cfg may be nil; it is stored on every created batch untouched.
func NewAccumulator(v KeyingVersion, cfg *Config) *Accumulator {
	return &Accumulator{
		version: v,
		config:  cfg,
		buckets: make(map[string]*Batch),
	}
}

// Add folds one swap into the accumulator: it assigns the swap a bucket via
// the canonical key, materializes both legs (flipping roles and negating
// notionals when the canonicalizer says so), and either starts a new bucket
// or merges into the existing one.
//
// Any error is a caller-input defect; the rejected swap leaves the
// accumulator unchanged, but the whole batching call should be abandoned.
func (a *Accumulator) Add(s instrument.Swap) error {
	h, flip, err := SwapHash(s, a.version)
	if err != nil {
		return fmt.Errorf("Add: %w", err)
	}

	pay, err := MaterializeLeg(s.PayLeg, a.version)
	if err != nil {
		return fmt.Errorf("Add: pay leg: %w", err)
	}
	rec, err := MaterializeLeg(s.ReceiveLeg, a.version)
	if err != nil {
		return fmt.Errorf("Add: receive leg: %w", err)
	}
	if flip {
		pay.negateNotionals()
		rec.negateNotionals()
		pay, rec = rec, pay
	}

	b, ok := a.buckets[h]
	if !ok {
		a.buckets[h] = &Batch{
			PayLeg:        pay,
			ReceiveLeg:    rec,
			StartDates:    []time.Time{s.EffectiveDate},
			MaturityDates: []time.Time{s.MaturityDate},
			Names:         []BatchName{{ID: s.Metadata.ID, InstrumentType: s.Metadata.InstrumentType}},
			Config:        a.config,
		}
		return nil
	}

	// Both legs are shape-checked before either merge mutates the bucket; a
	// rejected swap leaves the bucket exactly as it was.
	if err := b.PayLeg.checkMerge(pay, a.version); err != nil {
		return fmt.Errorf("Add: pay leg: %w", err)
	}
	if err := b.ReceiveLeg.checkMerge(rec, a.version); err != nil {
		return fmt.Errorf("Add: receive leg: %w", err)
	}
	if err := b.PayLeg.Merge(pay, a.version); err != nil {
		return fmt.Errorf("Add: pay leg: %w", err)
	}
	if err := b.ReceiveLeg.Merge(rec, a.version); err != nil {
		return fmt.Errorf("Add: receive leg: %w", err)
	}
	b.StartDates = append(b.StartDates, s.EffectiveDate)
	b.MaturityDates = append(b.MaturityDates, s.MaturityDate)
	b.Names = append(b.Names, BatchName{ID: s.Metadata.ID, InstrumentType: s.Metadata.InstrumentType})
	return nil
}

// Batches hands over the bucket map. The caller takes ownership; the
// accumulator should not be reused afterwards.
func (a *Accumulator) Batches() map[string]*Batch {
	return a.buckets
}

// FromSwaps batches a list of swaps under the given keying version. The
// result maps bucket identifier to batch; within a bucket, sequence entries
// preserve input encounter order.
func FromSwaps(swaps []instrument.Swap, cfg *Config, v KeyingVersion) (map[string]*Batch, error) {
	acc := NewAccumulator(v, cfg)
	for i, s := range swaps {
		if err := acc.Add(s); err != nil {
			return nil, fmt.Errorf("FromSwaps: swap %d (%s): %w", i, s.Metadata.ID, err)
		}
	}
	return acc.Batches(), nil
}

// Group partitions swaps by bucket identifier without materializing legs,
// mirroring FromSwaps bucket assignment.
func Group(swaps []instrument.Swap, v KeyingVersion) (map[string][]instrument.Swap, error) {
	grouped := make(map[string][]instrument.Swap)
	for i, s := range swaps {
		h, _, err := SwapHash(s, v)
		if err != nil {
			return nil, fmt.Errorf("Group: swap %d (%s): %w", i, s.Metadata.ID, err)
		}
		grouped[h] = append(grouped[h], s)
	}
	return grouped, nil
}
