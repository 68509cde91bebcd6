// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package recommend

import (
	crand "crypto/rand"
	"math/rand/v2"
	"slices"
)

// Rand is the randomness the selection pipeline needs. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// RandSource returns a generator for one request. It is called once per
// Recommend call and the result is never shared between requests.
type RandSource func() Rand

// NewRand returns a ChaCha8 generator seeded from crypto/rand.
func NewRand() Rand {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed)) //nolint:gosec // selection randomness, not security
}

// sample draws k items uniformly without replacement. items is not modified.
// The caller guarantees k <= len(items).
func sample[T any](items []T, k int, rng Rand) []T {
	pool := slices.Clone(items)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}

// Shuffle applies a uniform random permutation to items in place.
func Shuffle[T any](items []T, rng Rand) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
