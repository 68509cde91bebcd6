// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package catalog

import (
	"errors"
	"fmt"
	"math"
)

// Catalog errors.
var (
	// ErrEmptyCatalog is returned when a source yields no articles.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("missing required column")

	// ErrInvalidRow is returned when a row violates the catalog contract.
	ErrInvalidRow = errors.New("invalid catalog row")

	// ErrDuplicateArticle is returned when two rows share an ArticleID.
	ErrDuplicateArticle = errors.New("duplicate article id")

	// ErrUnsupportedFormat is returned for an unknown source format.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	// ErrNotLoaded is returned when no snapshot has been stored yet.
	ErrNotLoaded = errors.New("catalog not loaded")

	// ErrReloadThrottled is returned when a reload is requested too soon
	// after the previous one.
	ErrReloadThrottled = errors.New("catalog reload throttled")
)

// Article is one catalog row. Articles are values; a snapshot never hands out
// a pointer into its own storage.
type Article struct {
	// ID is the ArticleID column.
	ID string `json:"article_id" yaml:"article_id" validate:"required"`

	// Title is the headline shown to the reader.
	Title string `json:"title" yaml:"title" validate:"required"`

	// Summary is the "Content Summary" column.
	Summary string `json:"summary" yaml:"summary"`

	// PrimaryTopic is the topic the article is classified under.
	PrimaryTopic Topic `json:"primary_topic" yaml:"primary_topic" validate:"topic"`

	// Relevance holds one precomputed score per topic. Higher is more relevant.
	Relevance map[Topic]float64 `json:"relevance" yaml:"relevance" validate:"required"`
}

// RelevanceTo returns the article's score for t.
// Snapshots guarantee every topic is present, so the zero fallback only
// applies to articles that were never validated.
func (a Article) RelevanceTo(t Topic) float64 {
	return a.Relevance[t]
}

// validate checks the per-article invariants that cannot be expressed as tags.
func (a Article) validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: empty ArticleID", ErrInvalidRow)
	}
	if !a.PrimaryTopic.Valid() {
		return fmt.Errorf("%w: article %s has unknown primary topic %q", ErrInvalidRow, a.ID, a.PrimaryTopic)
	}
	for _, t := range allTopics {
		score, ok := a.Relevance[t]
		if !ok {
			return fmt.Errorf("%w: article %s has no %s score", ErrInvalidRow, a.ID, t.RelevanceColumn())
		}
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return fmt.Errorf("%w: article %s has non-finite %s score", ErrInvalidRow, a.ID, t.RelevanceColumn())
		}
	}
	return nil
}

// clone copies the relevance map so the snapshot owns its data.
func (a Article) clone() Article {
	rel := make(map[Topic]float64, len(a.Relevance))
	for k, v := range a.Relevance {
		rel[k] = v
	}
	a.Relevance = rel
	return a
}
