// Package batch partitions interest-rate-swap records into buckets of
// identical structure so a vectorized pricer can evaluate each bucket in one
// pass. Bucket membership is decided by a canonical structural key (see
// key.go); per-swap numeric fields are accumulated into parallel sequences
// (see coupon.go and merge.go).
package batch

import "errors"

// ErrUnknownVersion is returned when a KeyingVersion outside the declared set
// is used.
var ErrUnknownVersion = errors.New("unknown keying version")

// KeyingVersion selects the batching strategy. The two versions group swaps
// differently and are not interchangeable: V1 bakes raw frequency amounts
// into the structural key, V2 carries them as accumulated data instead, so a
// portfolio batched under V1 can form different buckets than under V2.
type KeyingVersion int

const (
	// KeyingV1 keys legs on raw frequency type and amount. Leg currency and
	// calendar stay out of the merged data; the swap-level currency and bank
	// holiday calendar are hashed once per swap.
	KeyingV1 KeyingVersion = 1
	// KeyingV2 keys legs on normalized frequency types only; frequency
	// amounts and leg currencies become accumulated per-swap data. The
	// swap-level currency and bank holiday calendar are hashed explicitly.
	KeyingV2 KeyingVersion = 2
)

// String implements fmt.Stringer.
func (v KeyingVersion) String() string {
	switch v {
	case KeyingV1:
		return "v1"
	case KeyingV2:
		return "v2"
	default:
		return "unknown"
	}
}

func (v KeyingVersion) valid() bool {
	return v == KeyingV1 || v == KeyingV2
}
