// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

/*
Package cache provides a generic, thread-safe LRU cache with TTL expiry.

The recommendation engine uses it to keep ranked serendipity heads per
(catalog snapshot, topic pair). Ranking a pool is deterministic for a fixed
snapshot, so the sorted head can be reused until the snapshot changes. Keys
include the snapshot ID, so entries for a replaced catalog are never hit
again and simply age out.

# Usage Example

	heads := cache.NewLRU[headKey, []catalog.Article](64, time.Hour)

	head, hit := heads.GetOrAdd(key, func() []catalog.Article {
	    return SerendipityHead(snap, pair)
	})

Cached values are shared between callers and must be treated as read-only.
*/
package cache
