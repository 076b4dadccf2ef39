package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

type weighted[T any] struct {
	Item   T
	Weight int
}

// weightedChoice draws one item proportionally to its weight. Weights must be
// positive; a zero total falls back to the first item.
func weightedChoice[T any](rng *rand.Rand, items []weighted[T]) T {
	total := 0
	for _, it := range items {
		if it.Weight > 0 {
			total += it.Weight
		}
	}
	if total <= 0 {
		return items[0].Item
	}
	roll := rng.IntN(total)
	for _, it := range items {
		if it.Weight <= 0 {
			continue
		}
		roll -= it.Weight
		if roll < 0 {
			return it.Item
		}
	}
	return items[len(items)-1].Item
}

// randRange returns a uniform int in [low, high]. low==high is allowed.
func randRange(rng *rand.Rand, low, high int) int {
	if high <= low {
		return low
	}
	return low + rng.IntN(high-low+1)
}

// randFloatRange returns a uniform float64 in [low, high).
func randFloatRange(rng *rand.Rand, low, high float64) float64 {
	return low + rng.Float64()*(high-low)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
