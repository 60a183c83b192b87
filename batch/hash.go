package batch

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/meenmo/swapbatch/instrument"
)

// SwapHash computes the bucket identifier for a swap under the given keying
// version, together with the flip flag from the canonicalizer.
//
// The digest is deterministic across runs and processes: structurally equal
// swaps (same values, same order) always hash identically. It is a
// non-cryptographic bucketing key, not adversarial-safe; merge-time shape
// re-checks guard against collisions (see LegSpecs.Merge).
func SwapHash(s instrument.Swap, v KeyingVersion) (string, bool, error) {
	flip, key, err := canonicalKey(s.PayLeg, s.ReceiveLeg, v)
	if err != nil {
		return "", false, fmt.Errorf("SwapHash: %w", err)
	}
	// Swap-level fields are hashed once per swap, not per leg. A swap is
	// assumed single-currency.
	key = append(key, slot(string(s.Currency)), slot(string(s.BankHolidays)))

	digest, err := hashSlots(key)
	if err != nil {
		return "", false, fmt.Errorf("SwapHash: %w", err)
	}
	return digest, flip, nil
}

// hashSlots encodes the ordered tuple canonically (JSON array, absent slots
// as null) and digests it with MD5.
func hashSlots(slots []keySlot) (string, error) {
	vals := make([]any, len(slots))
	for i, s := range slots {
		if s.set {
			vals[i] = s.val
		}
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return "", err
	}
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:]), nil
}
