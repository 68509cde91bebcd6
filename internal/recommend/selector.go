// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package recommend

import "github.com/tomtom215/serendip/internal/catalog"

// SelectPreferred draws n articles from the preferred pool after removing
// every article whose ID is in exclude.
func SelectPreferred(c *catalog.Catalog, preferred catalog.Topic, n int, exclude []catalog.Article, rng Rand) ([]catalog.Article, error) {
	skip := make(map[string]struct{}, len(exclude))
	for _, a := range exclude {
		skip[a.ID] = struct{}{}
	}

	pool := c.Pool(preferred)
	eligible := pool[:0]
	for _, a := range pool {
		if _, ok := skip[a.ID]; !ok {
			eligible = append(eligible, a)
		}
	}

	if len(eligible) < n {
		return nil, insufficient(ErrInsufficientPreferredCandidates, len(eligible), n)
	}
	return sample(eligible, n, rng), nil
}
