// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package recommend

import (
	"sort"

	"github.com/tomtom215/serendip/internal/catalog"
)

// Rank returns a copy of pool ordered by relevance to preferred, highest
// first. Equal scores keep their pool order.
func Rank(pool []catalog.Article, preferred catalog.Topic) []catalog.Article {
	ranked := make([]catalog.Article, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceTo(preferred) > ranked[j].RelevanceTo(preferred)
	})
	return ranked
}

// HeadSize is the size of the top-decile segment of a pool of n articles:
// n/10 rounded down, but at least one article when the pool is not empty.
func HeadSize(n int) int {
	if n <= 0 {
		return 0
	}
	if head := n / 10; head > 1 {
		return head
	}
	return 1
}

// SerendipityHead returns the ranked head segment of the non-preferred pool.
// The result is deterministic for a fixed snapshot and pair.
func SerendipityHead(c *catalog.Catalog, pair TopicPair) []catalog.Article {
	ranked := Rank(c.Pool(pair.NonPreferred), pair.Preferred)
	return ranked[:HeadSize(len(ranked))]
}

// SelectSerendipitous draws k articles from the serendipity head segment.
func SelectSerendipitous(c *catalog.Catalog, pair TopicPair, k int, rng Rand) ([]catalog.Article, error) {
	return sampleHead(SerendipityHead(c, pair), k, rng)
}

// sampleHead draws k articles from an already ranked head. head is not modified.
func sampleHead(head []catalog.Article, k int, rng Rand) ([]catalog.Article, error) {
	if len(head) < k {
		return nil, insufficient(ErrInsufficientSerendipitousCandidates, len(head), k)
	}
	return sample(head, k, rng), nil
}
