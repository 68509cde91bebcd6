// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedTopic is returned when request input maps to no topic.
	ErrUnrecognizedTopic = errors.New("unrecognized topic")

	// ErrInsufficientSerendipitousCandidates is returned when the head segment
	// of the non-preferred pool is smaller than the serendipitous count.
	ErrInsufficientSerendipitousCandidates = errors.New("not enough serendipitous candidates")

	// ErrInsufficientPreferredCandidates is returned when the preferred pool,
	// after exclusions, is smaller than the preferred count.
	ErrInsufficientPreferredCandidates = errors.New("not enough preferred candidates")
)

// Request field names reported by TopicError.
const (
	FieldPreferred    = "preferred"
	FieldNonPreferred = "non_preferred"
)

// TopicError reports which request field failed to resolve and what it held.
type TopicError struct {
	Field string
	Raw   any
}

func (e *TopicError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", ErrUnrecognizedTopic, e.Raw)
	}
	return fmt.Sprintf("%s %s: %v", e.Field, ErrUnrecognizedTopic, e.Raw)
}

// Unwrap lets errors.Is match ErrUnrecognizedTopic.
func (e *TopicError) Unwrap() error { return ErrUnrecognizedTopic }

// insufficient wraps sentinel with the counts that caused it.
func insufficient(sentinel error, have, want int) error {
	return fmt.Errorf("%w: have %d, need %d", sentinel, have, want)
}
