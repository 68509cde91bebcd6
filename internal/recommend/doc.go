// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

// Package recommend selects serendipitous article batches.
//
// # Pipeline
//
// A request names a preferred and a non-preferred topic. The engine runs:
//
//  1. ResolveTopic: labels ("Politics"), survey codes ("1" or 1) and canonical
//     keys ("politic") all resolve to the same catalog.Topic.
//  2. SelectSerendipitous: the non-preferred pool is ranked by relevance to the
//     preferred topic (stable, descending). The head segment is the top
//     max(1, N/10) articles and k are drawn from it without replacement.
//  3. SelectPreferred: n articles drawn from the preferred pool, excluding
//     anything already chosen as serendipitous.
//  4. Assembler: merged layout shuffles both groups into Article{i}_* fields,
//     grouped layout keeps them apart as Seren_Article{i}_* and
//     Prefer_Article{i}_*.
//
// Every failure is terminal for the request. There is no partial batch.
//
// # Profiles
//
// Deployments differ in batch size and output shape. A named profile
// (see ProfileConfig) captures each one; merged (2+4, no topic fields) is the
// default.
//
// # Randomness
//
// Each call to Recommend draws a fresh generator from the engine's RandSource.
// The default source seeds ChaCha8 from crypto/rand. Tests inject a
// deterministic source with WithRandSource.
//
// # Thread Safety
//
// Engine is safe for concurrent use. Catalog snapshots are immutable and the
// active Config is swapped atomically by UpdateConfig.
package recommend
