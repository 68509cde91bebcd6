// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

/*
Package catalog holds the article catalog that recommendations are drawn from.

A Catalog is an immutable snapshot: once New returns, no article, pool or index
changes. Readers share a snapshot without locking. Reloading builds a fresh
snapshot and swaps it into a Store atomically, so in-flight requests keep the
snapshot they started with.

Catalog data comes from a Source. The tabular contract is the same for every
format:

	ArticleID | Title | Content Summary | Primary Topic | Relevance_Politic | Relevance_Sport | Relevance_Entertainment | Relevance_Digital

Supported sources:

  - CSVSource: comma separated file with a header row
  - XLSXSource: spreadsheet (first sheet unless configured)
  - JSONSource: array of objects keyed by column name
  - YAMLSource: sequence of mappings keyed by column name
  - PostgresSource: table with the same column names

BreakerSource wraps any Source with a circuit breaker so that a broken upstream
is not hammered by the reload loop.

Example:

	src, err := catalog.NewSource(catalog.SourceConfig{Path: "articles.csv"})
	if err != nil {
	    return err
	}
	store := catalog.NewStore()
	if _, err := store.Reload(ctx, src); err != nil {
	    return err
	}
	pool := store.Current().Pool(catalog.Sport)
*/
package catalog
